package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ncobase/echoapi/router"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", `
app_name: demo
run_mode: debug
server:
  host: 0.0.0.0
  port: 9000
  router: mux
logger:
  level: 5
  format: text
  output: stderr
errors:
  path: ./errors.yaml
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.AppName != "demo" || !cfg.IsDebug() {
		t.Errorf("unexpected app config %+v", cfg)
	}
	if cfg.Server.Addr() != "0.0.0.0:9000" || cfg.Server.Router != router.KindMux {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Logger.Level != 5 || cfg.Logger.Format != "text" || cfg.Logger.Output != "stderr" {
		t.Errorf("unexpected logger config %+v", cfg.Logger)
	}
	if cfg.Errors.Path != "./errors.yaml" {
		t.Errorf("unexpected errors config %+v", cfg.Errors)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.AppName != "echoapi" || cfg.RunMode != "release" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Server.Addr() != "127.0.0.1:8080" || cfg.Server.Router != router.KindGin {
		t.Errorf("unexpected server defaults %+v", cfg.Server)
	}
	if cfg.Logger.Level != 4 || cfg.Logger.Format != "json" || cfg.Logger.Output != "stdout" {
		t.Errorf("unexpected logger defaults %+v", cfg.Logger)
	}

	table, err := cfg.Errors.Table()
	if err != nil {
		t.Fatalf("expected default table, got %v", err)
	}
	if !table.Has("EXTENDED_EXAMPLE") {
		t.Error("expected embedded default table")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("ECHOAPI_SERVER_PORT", "9191")
	path := writeFile(t, "config.yaml", "server:\n  port: 9000\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("expected env override 9191, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestErrorsTableFromFile(t *testing.T) {
	path := writeFile(t, "errors.yaml", "CUSTOM:\n  message: custom\n  http:\n    code: 418\n")
	table, err := (&Errors{Path: path}).Table()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	entry, err := table.Lookup("CUSTOM")
	if err != nil || entry.HTTP.Code != 418 {
		t.Errorf("unexpected entry %+v, %v", entry, err)
	}
}

package config

import (
	"github.com/spf13/viper"
)

// Output destinations
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Config configuration struct
type Config struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Default returns info level JSON logging to stdout.
func Default() *Config {
	return &Config{
		Level:  4,
		Format: "json",
		Output: OutputStdout,
	}
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	cfg := Default()
	if v.IsSet("logger.level") {
		cfg.Level = v.GetInt("logger.level")
	}
	if s := v.GetString("logger.format"); s != "" {
		cfg.Format = s
	}
	if s := v.GetString("logger.output"); s != "" {
		cfg.Output = s
	}
	cfg.OutputFile = v.GetString("logger.output_file")
	return cfg
}

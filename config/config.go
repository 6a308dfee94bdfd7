package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g. ECHOAPI_SERVER_PORT.
const EnvPrefix = "ECHOAPI"

// Config represents the configuration implementation.
type Config struct {
	AppName string
	RunMode string
	Server  *Server
	Logger  *Logger
	Errors  *Errors
	Viper   *viper.Viper
}

// LoadConfig loads the configuration from the file. With an empty path the
// usual locations are searched and a missing file leaves the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "echoapi")
	v.SetDefault("run_mode", "release")
	setServerDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.echoapi")
		v.AddConfigPath("/etc/echoapi")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Server:  getServerConfig(v),
		Logger:  getLoggerConfig(v),
		Errors:  getErrorsConfig(v),
		Viper:   v,
	}, nil
}

// IsDebug reports whether the run mode is debug.
func (c *Config) IsDebug() bool {
	return c.RunMode == "debug"
}

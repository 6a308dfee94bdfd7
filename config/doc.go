// Package config loads the application configuration with viper.
//
// Configuration is read from a file (YAML, JSON or TOML) and can be
// overridden by environment variables prefixed with ECHOAPI_:
//
//	app_name: echoapi
//	run_mode: debug
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	  router: gin        # gin | mux
//	logger:
//	  level: 4           # logrus level, 4 = info
//	  format: json       # json | text
//	  output: stdout     # stdout | stderr | file
//	  output_file: ./logs/echoapi.log
//	errors:
//	  path: ./errors.yaml
//
//	ECHOAPI_SERVER_PORT=9090 echoapi serve
//
// The error table itself is not read through viper, because viper folds
// keys to lower case and error codes are case sensitive. errors.path points
// at a separate table file loaded by the ecode package.
package config

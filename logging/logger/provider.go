package logger

import (
	"fmt"

	"github.com/google/wire"
	"github.com/ncobase/echoapi/logging/logger/config"
)

// ProviderSet is the wire provider set for the logger package
var ProviderSet = wire.NewSet(ProvideLogger)

// ProvideLogger configures the standard logger from cfg. The cleanup closes
// the log file when output is "file".
func ProvideLogger(cfg *config.Config) (*Logger, func(), error) {
	l := StdLogger()
	cleanup, err := l.Init(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, cleanup, nil
}

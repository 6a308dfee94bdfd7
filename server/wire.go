//go:build wireinject
// +build wireinject

package server

import (
	"github.com/google/wire"
	"github.com/ncobase/echoapi/config"
	"github.com/ncobase/echoapi/logging/logger"
	"github.com/ncobase/echoapi/net/resp"
)

// InitializeApp wires the server from configuration.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	panic(wire.Build(
		ProvideLoggerConfig,
		logger.ProviderSet,
		ProvideTable,
		resp.New,
		NewHandler,
		NewApp,
	))
}

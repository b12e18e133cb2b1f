//go:build wireinject
// +build wireinject

package main

import (
	"mediadex/config"
	"mediadex/internal/command"
	"mediadex/internal/cron"
	"mediadex/internal/database"
	"mediadex/internal/handler"
	"mediadex/internal/middleware"
	"mediadex/internal/router"
	"mediadex/internal/service"
	"mediadex/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			newHttpClient,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			newHttpClient,
			command.ProviderSet,
		),
	)
}

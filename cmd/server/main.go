package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storo-shop/backend/internal/server"
	"github.com/storo-shop/backend/modules"
	chatservices "github.com/storo-shop/backend/modules/chat/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/eventbus"
	"github.com/storo-shop/backend/pkg/logging"
)

func main() {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.OpenTelemetry.Enabled {
		shutdown := logging.SetupTracing(ctx, conf.OpenTelemetry.ServiceName, conf.OpenTelemetry.TempoURL)
		defer shutdown()
	}

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		logger.WithError(err).Fatal("failed to create database pool")
	}
	defer pool.Close()

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app); err != nil {
		logger.WithError(err).Fatal("failed to load modules")
	}

	if err := app.Migrations().Run(ctx, pool); err != nil {
		logger.WithError(err).Fatal("failed to run migrations")
	}

	// The chat sweeper needs the pool on its context; everything else it
	// scopes per tenant on each tick.
	sweeper := app.Service(chatservices.Sweeper{}).(*chatservices.Sweeper)
	sweeper.Start(composables.WithPool(ctx, pool))

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to build server")
	}

	logger.WithField("address", conf.SocketAddress).Info("starting http server")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

package main

import (
	"context"
	"time"

	"propfilter/app"
	"propfilter/internal/config"
	"propfilter/internal/container"
	"propfilter/internal/errors"
	"propfilter/internal/logger"
	"propfilter/ui"

	"github.com/joho/godotenv"
)

// warmTable builds the table once at startup so the first page load is fast.
// A broken source is logged, not fatal: the page reports it until the file is fixed.
func warmTable(service *app.ProjectService) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log := logger.Named("main")
	if _, err := service.Options(ctx); err != nil {
		log.Warn().Err(err).Str("code", errors.GetCode(err)).Str("source", service.Source()).Msg("initial load failed")
		return
	}
	log.Info().Str("source", service.Source()).Msg("project table ready")
}

func main() {
	envErr := godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(logger.Options{
		Level:   appConfig.Logging.Level,
		Format:  appConfig.Logging.Format,
		Service: "propfilter",
	})
	log := logger.Named("main")
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	c, err := container.New(appConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire dependencies")
	}

	server, err := ui.NewServer(c.Service, appConfig.Server.GinMode)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create UI server")
	}

	warmTable(c.Service)

	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

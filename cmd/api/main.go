package main

import (
	"net/http"
	"time"

	"propfilter/internal/api"
	"propfilter/internal/config"
	"propfilter/internal/container"
	"propfilter/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Service: "propfilter-api"})
	log := logger.Named("main")

	c, err := container.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire dependencies")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.APIPort,
		Handler:           api.NewRouter(c.Service),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Str("addr", srv.Addr).Str("source", cfg.Data.SourceFile).Msg("starting JSON API")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

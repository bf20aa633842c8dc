package main

import (
	"errors"
	"net/http"

	"github.com/adotanatal/adopet/internal/api"
	"github.com/adotanatal/adopet/internal/infrastructure/db/mysql"
	"github.com/adotanatal/adopet/internal/pkg/config"
	"github.com/adotanatal/adopet/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := mysql.Connect(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := mysql.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	e, err := api.NewRouter(db, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

package main

import (
	"context"
	"time"

	"gaia-backend/internal/config"
	handlerhttp "gaia-backend/internal/handler/http"
	"gaia-backend/internal/logger"
	"gaia-backend/internal/server"
	"gaia-backend/internal/service"
	"gaia-backend/internal/store"
	"gaia-backend/migrations"
)

// @title Gaia User API
// @version 1.0
// @description Versioned REST API for user accounts.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	log := logger.NewLogger("gaia-server")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, log)
	handlers := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

package main

import (
	"dailytodo/config"
	"dailytodo/di"
	"dailytodo/helper"
	"dailytodo/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Todo API
// @version 1.0
// @description CRUD API for todo items stored in PostgreSQL.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := helper.MigrateOnStartup(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	http := di.InitializeService()
	http.Serve()
}

package main

import (
	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/di"
	"todolist/helper"
	"todolist/shared/logger"
)

// @title Todo List API
// @version 1.0
// @description Remote procedures for creating, listing, toggling and deleting todos.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

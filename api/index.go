package handler

import (
	"net/http"
	"sync"

	"dailytodo/config"
	"dailytodo/di"
	"dailytodo/helper"
	"dailytodo/shared/logger"
	transport "dailytodo/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	app  *transport.HTTP
	once sync.Once
)

// Handler is the serverless entry point. The application graph is built on
// the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		if err := helper.MigrateOnStartup(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}

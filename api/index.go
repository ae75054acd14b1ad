package handler

import (
	"net/http"
	"sync"

	"todolist/config"
	"todolist/di"
	"todolist/shared/logger"
	transport "todolist/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the first call
// and reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.Handler().ServeHTTP(w, r)
}

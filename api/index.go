package handler

import (
	"chrono/config"
	"chrono/di"
	"chrono/shared/logger"
	"net/http"
	"sync"

	chronoHTTP "chrono/transport/http"
)

var (
	service *chronoHTTP.HTTP
	once    sync.Once
)

// Handler is the entrypoint for function hosts. The dependency graph is
// built on the first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}

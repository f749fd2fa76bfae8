package main

import (
	"chrono/config"
	"chrono/di"
	"chrono/shared/logger"
)

// @title Chrono API
// @version 1.0
// @description Timezone-aware time queries: current time, conversion and differences.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

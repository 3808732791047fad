package main

import (
	"log"
	"os"

	"go.uber.org/fx"

	"legalflow/internal/app"
	"legalflow/internal/platform/config"
	"legalflow/internal/platform/logger"
)

// main loads configuration and hands the rest to the fx application, which
// owns every registry and the server lifecycle.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := logger.New(cfg.LogLevel, os.Stdout)

	fx.New(app.Options(cfg, logger)).Run()
}

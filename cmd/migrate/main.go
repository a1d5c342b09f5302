package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mosaiclabs/mosaic-backend/internal/config"
	"github.com/mosaiclabs/mosaic-backend/internal/data/db"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to YAML config file (optional)")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(configPath, log)
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	postgresService, err := db.NewPostgresService(cfg.Database, log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("Schema is up to date")
}

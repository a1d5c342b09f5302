package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
	"github.com/mosaiclabs/mosaic-backend/internal/utils"
)

// Config is loaded from an optional YAML file, then overridden by
// environment variables so containerized deployments never need the file.
type Config struct {
	Mode     string         `yaml:"mode"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

func Load(path string, log *logger.Logger) (*Config, error) {
	cfg := &Config{
		Mode: "development",
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "mosaic",
			SSLMode: "disable",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg.Mode = utils.GetEnv("APP_MODE", cfg.Mode, log)
	cfg.Database.Host = utils.GetEnv("POSTGRES_HOST", cfg.Database.Host, log)
	cfg.Database.Port = utils.GetEnv("POSTGRES_PORT", cfg.Database.Port, log)
	cfg.Database.User = utils.GetEnv("POSTGRES_USER", cfg.Database.User, log)
	cfg.Database.Password = utils.GetEnv("POSTGRES_PASSWORD", cfg.Database.Password, log)
	cfg.Database.Name = utils.GetEnv("POSTGRES_NAME", cfg.Database.Name, log)
	cfg.Database.SSLMode = utils.GetEnv("POSTGRES_SSLMODE", cfg.Database.SSLMode, log)

	return cfg, nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

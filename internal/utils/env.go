package utils

import (
	"os"
	"strconv"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
)

func GetEnv(key, defaultVal string, log *logger.Logger) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	if log != nil {
		log.Debug("env var unset, using default", "key", key, "default", defaultVal)
	}
	return defaultVal
}

func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		if log != nil {
			log.Warn("env var is not an integer, using default", "key", key, "value", raw)
		}
		return defaultVal
	}
	return val
}

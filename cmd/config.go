package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	HTTPPort             string
	DataDir              string
	SystemConfigFile     string
	AutosaveSchedule     string
	ConfigReloadSchedule string
	LogLevel             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
}

// WithDefaults fills unset values.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.SystemConfigFile == "" {
		c.SystemConfigFile = filepath.Join(c.DataDir, "system_config.txt")
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	return c
}

// UsesDatabase reports whether the catalog lives in PostgreSQL.
func (c Config) UsesDatabase() bool {
	return c.DBHost != ""
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NewLogger builds the JSON logger for LOG_LEVEL. Unknown levels fall back to info.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries environment-driven settings for the interactive process.
type Config struct {
	DataDir   string
	LogLevel  slog.Level
	TraceFile string
}

// LoadConfig reads a .env file when present, then environment variables,
// applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	// Running without a .env file is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		DataDir:   envDefault("INVTRACK_DATA_DIR", "."),
		TraceFile: strings.TrimSpace(os.Getenv("INVTRACK_TRACE_FILE")),
	}
	level, err := parseLogLevel(envDefault("INVTRACK_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level
	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("INVTRACK_LOG_LEVEL must be one of debug, info, warn, error; got %q", raw)
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

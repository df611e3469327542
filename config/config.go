package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// App holds the runtime settings that come from the environment.
type App struct {
	Port          string
	JWTSecret     string
	TokenTTLHours int
	LogLevel      string
	LogFormat     string
}

func Load() App {
	return App{
		Port:          envOrDefault("PORT", "8080"),
		JWTSecret:     envOrDefault("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLHours: envInt("TOKEN_TTL_HOURS", 72),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
	}
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// SetupLogger installs the process-wide slog handler.
func SetupLogger(cfg App) {
	var level slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

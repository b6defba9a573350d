package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/uknowme/member-server/internal/config"
)

const logFileName = "member-api.log"

// Setup configures the global slog logger based on environment
// and returns it.
func Setup(env string, cfg config.LogConfig) (*slog.Logger, error) {
	level, jsonOutput := envDefaults(env)
	if cfg.Level != "" {
		level = parseLevel(cfg.Level)
	}

	writer := io.Writer(os.Stdout)
	fileLogging := strings.TrimSpace(cfg.Dir) != ""
	if fileLogging {
		if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
			return nil, fmt.Errorf("invalid log config: size=%d backups=%d age_days=%d",
				cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
		}
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		writer = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, logFileName),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}

	logger := slog.New(newHandler(writer, level, jsonOutput, fileLogging))
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env, "level", level.String(), "file_logging", fileLogging)
	return logger, nil
}

// envDefaults: production = JSON/info, local/dev = colored text/debug.
func envDefaults(env string) (slog.Level, bool) {
	switch env {
	case "production", "prod":
		return slog.LevelInfo, true
	case "local", "dev", "development":
		return slog.LevelDebug, false
	default:
		return slog.LevelInfo, false
	}
}

func newHandler(w io.Writer, level slog.Level, jsonOutput, noColor bool) slog.Handler {
	if jsonOutput {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		AddSource:  true,
		NoColor:    noColor,
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

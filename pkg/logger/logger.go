package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/sumitdoescode/Clicks/config"
)

// Logger wraps slog so call sites stay key-value based. The zero value is
// usable and falls back to slog's default handler, which keeps test setup
// trivial.
type Logger struct {
	l *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LoggerMode.Development {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{l: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (lg *Logger) base() *slog.Logger {
	if lg == nil || lg.l == nil {
		return slog.Default()
	}
	return lg.l
}

func (lg *Logger) Debug(msg string, args ...any) { lg.base().Debug(msg, args...) }
func (lg *Logger) Info(msg string, args ...any)  { lg.base().Info(msg, args...) }
func (lg *Logger) Warn(msg string, args ...any)  { lg.base().Warn(msg, args...) }
func (lg *Logger) Error(msg string, args ...any) { lg.base().Error(msg, args...) }

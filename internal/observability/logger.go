package observability

import (
	"log/slog"
	"os"
)

// Logger is the process-wide structured logger. Services depend on the
// narrow Info/Error surface so tests can pass a no-op.
type Logger struct {
	log *slog.Logger
}

func NewLogger() *Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return &Logger{log: logger}
}

func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

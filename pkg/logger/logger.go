package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger — интерфейс логгера, который прокидывается во все слои приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger создаёт JSON-логгер в stdout с заданным уровнем (debug, info, warn, error).
// Неизвестный уровень трактуется как info.
func NewSlogLogger(level string) Logger {
	return New(os.Stdout, ParseLevel(level))
}

// New создаёт логгер поверх произвольного writer'а. Используется в тестах с io.Discard.
func New(w io.Writer, level slog.Level) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(handler)}
}

func ParseLevel(level string) slog.Level {
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

func (s *slogLogger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Warnf(format string, args ...any) {
	s.l.Warn(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Errorf(err error, format string, args ...any) {
	s.l.Error(fmt.Sprintf(format, args...), slog.Any("error", err))
}

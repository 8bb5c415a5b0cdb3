package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const LevelCritical = slog.Level(12)

type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
	Critical(message string, args ...any)
	BusinessError(message string, err error, args ...any)
	InternalError(message string, err error, args ...any)
	With(args ...any) Logger
}

type Options struct {
	Level     slog.Level
	Format    string
	AddSource bool
	// Attrs are attached to every record.
	Attrs []any
}

var levels = map[string]slog.Level{
	"debug":    slog.LevelDebug,
	"info":     slog.LevelInfo,
	"warn":     slog.LevelWarn,
	"warning":  slog.LevelWarn,
	"error":    slog.LevelError,
	"critical": LevelCritical,
	"fatal":    LevelCritical,
}

type slogLogger struct {
	base *slog.Logger
}

// NewFromEnv builds a logger from ENV, LOG_LEVEL, LOG_FORMAT and LOG_ADD_SOURCE.
// Every record carries service=protein-tracker.
func NewFromEnv() Logger {
	env := normalizeValue(os.Getenv("ENV"))
	addSource, _ := strconv.ParseBool(os.Getenv("LOG_ADD_SOURCE"))

	return NewWithOptions(os.Stdout, Options{
		Level:     parseLevel(os.Getenv("LOG_LEVEL"), env),
		Format:    parseFormat(os.Getenv("LOG_FORMAT")),
		AddSource: addSource,
		Attrs:     []any{"service", "protein-tracker"},
	})
}

func New(output io.Writer, level slog.Level, format string) Logger {
	return NewWithOptions(output, Options{Level: level, Format: format})
}

func NewWithOptions(output io.Writer, opts Options) Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:       opts.Level,
		AddSource:   opts.AddSource,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler = slog.NewTextHandler(output, handlerOpts)
	if normalizeValue(opts.Format) == "json" {
		handler = slog.NewJSONHandler(output, handlerOpts)
	}

	base := slog.New(handler)
	if len(opts.Attrs) > 0 {
		base = base.With(opts.Attrs...)
	}
	return &slogLogger{base: base}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &slogLogger{base: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelCritical + 1}))}
}

func (l *slogLogger) Debug(message string, args ...any) { l.base.Debug(message, args...) }

func (l *slogLogger) Info(message string, args ...any) { l.base.Info(message, args...) }

func (l *slogLogger) Warn(message string, args ...any) { l.base.Warn(message, args...) }

func (l *slogLogger) Error(message string, args ...any) { l.base.Error(message, args...) }

func (l *slogLogger) Critical(message string, args ...any) {
	l.base.Log(context.Background(), LevelCritical, message, args...)
}

// BusinessError logs an expected failure, such as rejected input, at warn.
func (l *slogLogger) BusinessError(message string, err error, args ...any) {
	l.logErr(slog.LevelWarn, message, err, args)
}

// InternalError logs an unexpected failure at error.
func (l *slogLogger) InternalError(message string, err error, args ...any) {
	l.logErr(slog.LevelError, message, err, args)
}

func (l *slogLogger) logErr(level slog.Level, message string, err error, args []any) {
	if err == nil {
		return
	}
	l.base.Log(context.Background(), level, message, append([]any{"err", err}, args...)...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{base: l.base.With(args...)}
}

// parseLevel falls back to debug in development and info elsewhere.
func parseLevel(value string, env string) slog.Level {
	if level, ok := levels[normalizeValue(value)]; ok && normalizeValue(value) != "info" {
		return level
	}
	if env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func parseFormat(value string) string {
	if normalizeValue(value) == "text" {
		return "text"
	}
	return "json"
}

func normalizeValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func replaceAttr(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}
	if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelCritical {
		attr.Value = slog.StringValue("CRITICAL")
	}
	return attr
}

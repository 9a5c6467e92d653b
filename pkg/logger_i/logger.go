package logger_i

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/akolanti/MedChatAPI/internal/config"
)

type Logger struct {
	inner *slog.Logger
}

// Init installs the process-wide handler. Production (VERCEL set) logs JSON.
func Init(settings config.Settings) {
	InitWithWriter(settings, os.Stdout)
}

func InitWithWriter(settings config.Settings, w io.Writer) {
	options := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	var handler slog.Handler
	if settings.Vercel {
		options.Level = config.LOG_LEVEL_PROD
		if settings.LogLevel != "" {
			options.Level = parseLevel(settings.LogLevel)
		}
		handler = slog.NewJSONHandler(w, options)
	} else {
		if settings.LogLevel != "" {
			options.Level = parseLevel(settings.LogLevel)
		}
		handler = slog.NewTextHandler(w, options)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func NewLogger(section string) *Logger {
	return &Logger{
		inner: slog.Default().With("component", section),
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	l.inner.Log(context.Background(), level, msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}

// WithTrace attaches the request trace id carried by ctx, if any.
func (l *Logger) WithTrace(ctx context.Context) *Logger {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok && trace != "" {
		return l.With("traceId", trace)
	}
	return l
}

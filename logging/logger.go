package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// Logger is the minimal structured logging contract used across the analyzer packages
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

type requestIDKey struct{}

// New creates a JSON structured logger tagged with the service name
func New(service string, level slog.Level) Logger {
	return NewWithWriter(os.Stdout, service, level)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(w io.Writer, service string, level slog.Level) Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}

	base := slog.New(slog.NewJSONHandler(w, opts)).With(
		slog.String("service", service),
		slog.Int("pid", os.Getpid()),
		slog.String("go_version", runtime.Version()),
	)

	return &adapter{logger: base}
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return &adapter{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel maps LOG_LEVEL style strings to slog levels, defaulting to info
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

// ContextWithRequestID stores a request id for WithContext to pick up
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// WithContext attaches the request id carried by ctx, if any
func WithContext(ctx context.Context, logger Logger) Logger {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok && requestID != "" {
		return logger.With(slog.String("request_id", requestID))
	}
	return logger
}

// WithError adds an error attribute to the logger
func WithError(logger Logger, err error) Logger {
	if err != nil {
		return logger.With(slog.String("error", err.Error()))
	}
	return logger
}

type adapter struct {
	logger *slog.Logger
}

func (l *adapter) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *adapter) With(args ...any) Logger {
	return &adapter{logger: l.logger.With(args...)}
}

// Package log wraps zerolog so every line carries the request correlation id
// without threading a logger through call sites.
package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type correlationIDKey struct{}

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

func Init(appName, level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("app", appName).
		Logger()
}

// InitForTest silences log output so test runs stay readable.
func InitForTest() {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(io.Discard)
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// From returns a logger bound to the request's correlation id, falling back to
// the process logger when the context carries none.
func From(ctx context.Context) zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()

	if id := GetCorrelationID(ctx); id != "" {
		l = l.With().Str("correlationId", id).Logger()
	}
	return l
}

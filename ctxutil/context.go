package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// contextKey keeps values set here apart from other packages' keys.
type contextKey string

const (
	// TraceIDKey is the context key and the log field name of the trace id.
	TraceIDKey = "trace_id"
	// CommandKey carries the name of the running CLI command.
	CommandKey = "command"
)

// GetValue retrieves a value from the context.
func GetValue(ctx context.Context, key string) any {
	if ctx == nil {
		return nil
	}
	return ctx.Value(contextKey(key))
}

// SetValue sets a value to the context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey(key), val)
}

// GetTraceID gets trace id from context.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// SetCommand sets the running command name to context.Context.
func SetCommand(ctx context.Context, name string) context.Context {
	return SetValue(ctx, CommandKey, name)
}

// GetCommand gets the running command name from context.Context.
func GetCommand(ctx context.Context) string {
	if name, ok := GetValue(ctx, CommandKey).(string); ok {
		return name
	}
	return ""
}

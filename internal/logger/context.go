package logger

import (
	"context"

	"github.com/google/uuid"
)

// scope is the per-request identity carried on a context
type scope struct {
	requestID string
	userID    string
}

type (
	scopeKey  struct{}
	loggerKey struct{}
)

func scopeOf(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// WithRequestID tags ctx with requestID. An empty id is replaced by a new UUID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	s := scopeOf(ctx)
	s.requestID = requestID
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithUserID tags ctx with the authenticated user
func WithUserID(ctx context.Context, userID string) context.Context {
	s := scopeOf(ctx)
	s.userID = userID
	return context.WithValue(ctx, scopeKey{}, s)
}

func RequestIDFromContext(ctx context.Context) string { return scopeOf(ctx).requestID }
func UserIDFromContext(ctx context.Context) string    { return scopeOf(ctx).userID }

func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the Logger stored by WithLogger, or Default
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return Default()
}

func contextFields(ctx context.Context) []Field {
	s := scopeOf(ctx)
	fields := make([]Field, 0, 2)
	if s.requestID != "" {
		fields = append(fields, String("request_id", s.requestID))
	}
	if s.userID != "" {
		fields = append(fields, String("user_id", s.userID))
	}
	return fields
}

// Ctx is FromContext(ctx) tagged with the request and user on ctx
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}

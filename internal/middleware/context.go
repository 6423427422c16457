package middleware

import "context"

type ctxKey int

const (
	ctxKeySession ctxKey = iota
	ctxKeyHTMX
	ctxKeyRequestID
)

// WithHTMX records whether the request originated from htmx.
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyHTMX, is)
}

// IsHTMX reports whether the request originated from htmx.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyHTMX).(bool)
	return v
}

// WithRequestID stores the request id for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID returns the request id, empty when unset.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

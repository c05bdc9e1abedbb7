package core

import "context"

// Context keys for run options
type contextKey string

const suppressStatusKey contextKey = "suppressStatus"

// WithSuppressStatus marks the context so figure commands do not print the
// success line. The MCP server needs this because stdout carries the protocol.
func WithSuppressStatus(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressStatusKey, true)
}

// shouldSuppressStatus returns whether status lines should be suppressed from context
func shouldSuppressStatus(ctx context.Context) bool {
	val := ctx.Value(suppressStatusKey)
	if val == nil {
		return false // default: print status
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

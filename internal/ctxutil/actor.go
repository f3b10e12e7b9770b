// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for the acting user's identity.
// Exported so it can be used consistently across packages.
type ActorKey struct{}

// WithActor returns a context with the acting user's email embedded.
// The value comes from the identity proxy header and is trusted verbatim.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ActorKey{}, email)
}

// ActorFromContext returns the acting user's email from context, or empty
// string if not set.
func ActorFromContext(ctx context.Context) string {
	if v := ctx.Value(ActorKey{}); v != nil {
		return v.(string)
	}
	return ""
}

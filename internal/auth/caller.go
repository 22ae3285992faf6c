package auth

import "context"

type contextKey string

const callerContextKey contextKey = "caller"

// Caller is the authenticated identity of a request.
type Caller struct {
	UID   string
	Email string
}

// CallerFromClaims builds the request identity from verified claims.
func CallerFromClaims(claims *Claims) Caller {
	return Caller{UID: claims.UID(), Email: claims.Email}
}

// WithCaller returns a copy of ctx carrying caller.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

// CallerFromContext returns the caller stored by WithCaller.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerContextKey).(Caller)
	if !ok || caller.UID == "" {
		return Caller{}, false
	}
	return caller, true
}

package auth

import "context"

type ctxKey struct{}

var ctxKeyClaims = ctxKey{}

// WithClaims attaches verified claims to the context.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// ClaimsFromContext returns the claims attached by RequireAuth, or nil
// when the request did not pass through it.
func ClaimsFromContext(ctx context.Context) *Claims {
	if v := ctx.Value(ctxKeyClaims); v != nil {
		if c, ok := v.(*Claims); ok {
			return c
		}
	}
	return nil
}

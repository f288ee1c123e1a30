package auth

import (
	"context"

	"github.com/mcdev12/shuttleleague/go/internal/apperrors"
	"github.com/mcdev12/shuttleleague/go/internal/models"
)

type callerKey struct{}

// WithCaller stores the authenticated caller in ctx
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller stored by the interceptor
func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(models.Caller)
	return caller, ok
}

// RequireCaller is CallerFromContext for handlers that cannot run anonymously.
func RequireCaller(ctx context.Context) (models.Caller, error) {
	caller, ok := CallerFromContext(ctx)
	if !ok {
		return models.Caller{}, apperrors.Unauthenticated("Authentication required")
	}
	return caller, nil
}

package utils

import (
	"context"

	"riget-zoo/internal/data/entity"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	tokenKey    contextKey = "token"
)

// SetIdentityContext stores the resolved caller identity for the request.
func SetIdentityContext(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext returns the caller identity, or nil for guests.
func GetIdentityFromContext(ctx context.Context) *entity.Identity {
	identity, ok := ctx.Value(identityKey).(*entity.Identity)
	if !ok {
		return nil
	}
	return identity
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

package utils

import (
	"context"
	"time"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
)

// Identity is the authenticated caller derived from a verified bearer token.
type Identity struct {
	UserID    int64
	TokenID   string
	ExpiresAt time.Time
}

func SetIdentityContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// GetUserIDFromContext returns the account id of the authenticated caller.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	if !ok {
		return 0, false
	}
	return identity.UserID, true
}

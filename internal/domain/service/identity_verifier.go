package service

import (
	"context"
	"time"

	"arcade/internal/domain/entity"
)

// IdentityVerifier turns a bearer credential into a caller identity.
// Any failure (malformed, expired, bad signature, unknown role) is reported as an error.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}

// TokenIssuer creates bearer credentials that an IdentityVerifier accepts.
type TokenIssuer interface {
	Issue(identity entity.Identity, ttl time.Duration) (string, error)
}

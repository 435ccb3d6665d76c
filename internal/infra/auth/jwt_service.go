// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"arcade/config"
	"arcade/internal/domain/entity"
)

// ErrInvalidIdentity is returned when a token verifies but carries no usable subject or role.
var ErrInvalidIdentity = errors.New("token does not carry a valid identity")

// identityClaims is the claim set of an HS256 bearer token.
type identityClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService verifies and issues HS256 bearer tokens.
// It implements both service.IdentityVerifier and service.TokenIssuer.
type JWTService struct {
	secret []byte // Secret key for signing and verifying tokens.
	issuer string // Expected "iss" claim. Empty disables the check.
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.AuthConfig) (*JWTService, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &JWTService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}, nil
}

// Verify parses and validates the token, returning the identity it carries.
func (s *JWTService) Verify(_ context.Context, tokenString string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &identityClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	return newIdentity(claims.Subject, claims.Role)
}

// Issue signs a token for identity that expires after ttl.
func (s *JWTService) Issue(identity entity.Identity, ttl time.Duration) (string, error) {
	if identity.Subject == "" || !identity.Role.IsValid() {
		return "", ErrInvalidIdentity
	}

	now := time.Now()
	claims := identityClaims{
		Role: identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,  // Subject (who the token is for)
			Issuer:    s.issuer,          // Issuer, checked on verify when configured
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func newIdentity(subject, role string) (*entity.Identity, error) {
	r := entity.Role(role)
	if subject == "" || !r.IsValid() {
		return nil, ErrInvalidIdentity
	}

	return &entity.Identity{Subject: subject, Role: r}, nil
}

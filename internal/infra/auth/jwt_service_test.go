package auth

import (
	"context"
	"testing"
	"time"

	"arcade/config"
	"arcade/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, issuer string) *JWTService {
	t.Helper()

	svc, err := NewJWTService(&config.AuthConfig{
		Secret: "test_secret_key_very_long_for_testing",
		Issuer: issuer,
	})
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, "arcade")

	token, err := svc.Issue(entity.Identity{Subject: "user-1", Role: entity.RoleManager}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{Subject: "user-1", Role: entity.RoleManager}, identity)
}

func TestJWTService_NewRequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.AuthConfig{})
	assert.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewJWTService(nil)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	svc := newTestJWTService(t, "arcade")
	other := newTestJWTService(t, "someone-else")

	expired, err := svc.Issue(entity.Identity{Subject: "user-1", Role: entity.RoleAdmin}, -time.Minute)
	require.NoError(t, err)

	wrongIssuer, err := other.Issue(entity.Identity{Subject: "user-1", Role: entity.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	wrongSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"iss":  "arcade",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("another_secret"))
	require.NoError(t, err)

	unknownRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": "superuser",
		"iss":  "arcade",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"iss":  "arcade",
	}).SignedString([]byte("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"iss":  "arcade",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "expired", token: expired},
		{name: "wrong issuer", token: wrongIssuer},
		{name: "wrong secret", token: wrongSecret},
		{name: "unknown role", token: unknownRole},
		{name: "missing expiry", token: noExpiry},
		{name: "alg none", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.Verify(context.Background(), tt.token)
			assert.Error(t, err)
			assert.Nil(t, identity)
		})
	}
}

func TestJWTService_Issue_RejectsInvalidIdentity(t *testing.T) {
	svc := newTestJWTService(t, "")

	_, err := svc.Issue(entity.Identity{Subject: "", Role: entity.RoleAdmin}, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidIdentity)

	_, err = svc.Issue(entity.Identity{Subject: "user-1", Role: "root"}, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidIdentity)
}

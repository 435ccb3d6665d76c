package main

import (
	"context"
	"testing"
	"time"

	"arcade/config"
	"arcade/internal/domain/entity"
	"arcade/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	jwtService, err := auth.NewJWTService(&config.AuthConfig{Secret: "dev-secret"})
	require.NoError(t, err)

	token, err := issue(jwtService, "alice", entity.RoleManager, time.Minute)
	require.NoError(t, err)

	identity, err := jwtService.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{Subject: "alice", Role: entity.RoleManager}, identity)
}

func TestIssue_RejectsUnknownRole(t *testing.T) {
	jwtService, err := auth.NewJWTService(&config.AuthConfig{Secret: "dev-secret"})
	require.NoError(t, err)

	_, err = issue(jwtService, "alice", entity.Role("root"), time.Minute)
	assert.ErrorContains(t, err, `unknown role "root"`)
}

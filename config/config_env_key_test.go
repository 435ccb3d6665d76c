package config

import (
	"testing"
	"time"

	"arcade/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"documentStore": map[string]any{
			"driver": "memory",
			"mongo": map[string]any{
				"uri": "",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"tokenTTL": "1h",
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DOCUMENTSTORE_DRIVER", want: "documentStore.driver"},
		{envKey: "DOCUMENTSTORE_MONGO_URI", want: "documentStore.mongo.uri"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.DocumentStore)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultVersion, cfg.Env.Version)
	assert.Equal(t, constants.AuthProviderJWT, cfg.Auth.Provider)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "role", cfg.Auth.RoleClaim)
	assert.Equal(t, constants.StoreDriverFirestore, cfg.DocumentStore.Driver)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:          &AuthConfig{Provider: constants.AuthProviderFirebase, TokenTTL: time.Minute, RoleClaim: "arcadeRole"},
		DocumentStore: &DocumentStoreConfig{Driver: constants.StoreDriverMongo},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.AuthProviderFirebase, cfg.Auth.Provider)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "arcadeRole", cfg.Auth.RoleClaim)
	assert.Equal(t, constants.StoreDriverMongo, cfg.DocumentStore.Driver)
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "test.yaml", `
env:
  env: test
  log:
    level: info
http:
  port: 8080
  timeouts:
    readTimeout: 5s
documentStore:
  driver: memory
`)
	t.Setenv("HTTP_PORT", "9090")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "test", cfg.Env.Env)
	require.NotNil(t, cfg.DocumentStore)
	assert.Equal(t, constants.StoreDriverMemory, cfg.DocumentStore.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

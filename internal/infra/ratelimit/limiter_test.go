package ratelimit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arcade/config"
	apimiddleware "arcade/internal/delivery/api/middleware"
	"arcade/internal/delivery/api/response"
	domainerrors "arcade/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeScripter counts script runs per key in memory.
type fakeScripter struct {
	counts map[string]int64
	err    error
}

func newFakeScripter() *fakeScripter {
	return &fakeScripter{counts: make(map[string]int64)}
}

func (f *fakeScripter) run(ctx context.Context, keys []string) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)

		return cmd
	}

	f.counts[keys[0]]++
	cmd.SetVal(f.counts[keys[0]])

	return cmd
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) EvalRO(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	cmd := redis.NewBoolSliceCmd(ctx)
	cmd.SetVal(make([]bool, len(hashes)))

	return cmd
}

func (f *fakeScripter) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetVal(fixedWindowScript.Hash())

	return cmd
}

func TestRedisStore_FixedWindow(t *testing.T) {
	scripter := newFakeScripter()
	store := NewRedisStore(scripter, 2, time.Minute, slog.Default())

	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return start }

	for i, expected := range []bool{true, true, false} {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, expected, allowed, "request %d", i)
	}

	// Another client has its own counter
	allowed, err := store.Allow("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	// The next window starts fresh
	store.now = func() time.Time { return start.Add(time.Minute) }
	allowed, err = store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisStore_FailsOpen(t *testing.T) {
	scripter := newFakeScripter()
	scripter.err = errors.New("connection refused")
	store := NewRedisStore(scripter, 1, time.Minute, slog.Default())

	for range 3 {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestLimiter_Middleware_DeniesWithRateLimited(t *testing.T) {
	limiter := NewWithStore(NewRedisStore(newFakeScripter(), 1, time.Minute, slog.Default()))

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError
	e.GET("/api/v1/games", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, limiter.Middleware())

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	assert.Equal(t, http.StatusNoContent, call().Code)

	rec := call()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrRateLimited.ErrorCode(), body.Error.Code)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: false}},
		Logger: slog.Default(),
	})
	require.NoError(t, err)
	assert.False(t, limiter.Enabled())

	called := false
	handler := limiter.Middleware()(func(echo.Context) error {
		called = true

		return nil
	})

	e := echo.New()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
	assert.True(t, called)
}

func TestLimiter_New(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.RateLimitConfig
		wantErr bool
	}{
		{
			name: "memory store",
			cfg:  &config.RateLimitConfig{Enabled: true, Store: "memory", Requests: 100, Window: 15 * time.Minute},
		},
		{
			name:    "redis without address",
			cfg:     &config.RateLimitConfig{Enabled: true, Store: "redis", Requests: 100, Window: time.Minute},
			wantErr: true,
		},
		{
			name:    "zero window",
			cfg:     &config.RateLimitConfig{Enabled: true, Store: "memory", Requests: 100},
			wantErr: true,
		},
		{
			name:    "unknown store",
			cfg:     &config.RateLimitConfig{Enabled: true, Store: "memcached", Requests: 1, Window: time.Second},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter, err := New(Params{
				Lc:     fxtest.NewLifecycle(t),
				Config: &config.Config{RateLimit: tt.cfg},
				Logger: slog.Default(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, limiter.Enabled())
			assert.IsType(t, &echomiddleware.RateLimiterMemoryStore{}, limiter.store)
		})
	}
}

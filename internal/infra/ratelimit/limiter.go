// Package ratelimit limits API requests per client IP.
package ratelimit

import (
	"context"
	"log/slog"

	"arcade/config"
	"arcade/internal/domain/constants"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// Limiter guards the API with the configured rate limiter store
type Limiter struct {
	store echomiddleware.RateLimiterStore
}

// Params holds dependencies for Limiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the limiter from rateLimit configuration. A disabled limiter has no store.
func New(params Params) (*Limiter, error) {
	cfg := params.Config.RateLimit
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Rate limiting disabled")

		return &Limiter{}, nil
	}

	if cfg.Requests <= 0 || cfg.Window <= 0 {
		return nil, errors.New("rateLimit requests and window must be positive")
	}

	switch cfg.Store {
	case constants.RateLimitStoreMemory, "":
		burst := cfg.Burst
		if burst <= 0 {
			burst = cfg.Requests
		}
		logger.Info("Using in-memory rate limiter",
			slog.Int("requests", cfg.Requests),
			slog.Duration("window", cfg.Window),
			slog.Int("burst", burst),
		)

		return &Limiter{
			store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
				Burst:     burst,
				ExpiresIn: cfg.Window,
			}),
		}, nil

	case constants.RateLimitStoreRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("rateLimit.redis.addr is required for the redis store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(pingCtx).Err(), "failed to connect to redis")
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing rate limiter redis client")

				return client.Close()
			},
		})

		logger.Info("Using redis rate limiter",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("requests", cfg.Requests),
			slog.Duration("window", cfg.Window),
		)

		return &Limiter{store: NewRedisStore(client, cfg.Requests, cfg.Window, logger)}, nil

	default:
		return nil, errors.Errorf("unknown rate limit store: %s", cfg.Store)
	}
}

// NewWithStore wraps an existing store
func NewWithStore(store echomiddleware.RateLimiterStore) *Limiter {
	return &Limiter{store: store}
}

// Enabled reports whether requests are being limited
func (l *Limiter) Enabled() bool {
	return l.store != nil
}

// Middleware returns the echo middleware. Denied requests surface as ErrRateLimited.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	if !l.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: l.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(echo.Context, error) error {
			return domainerrors.ErrForbidden
		},
		DenyHandler: func(echo.Context, string, error) error {
			return domainerrors.ErrRateLimited
		},
	})
}

package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "arcade/internal/delivery/context"
	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Logger   *slog.Logger
}

// AuthMiddleware provides middleware for bearer token authentication and role authorization.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier, logger: params.Logger}
}

// Authenticate verifies the bearer token and attaches the caller identity to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Token rejected",
				slog.Any("error", err),
			)

			return domainerrors.ErrUnauthorized.WithMessage("Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that admits callers holding one of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrForbidden.WithMessage("Permission denied: role information missing")
			}

			if !allowed.Contains(identity.Role) {
				return domainerrors.ErrForbidden.WithMessage("Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

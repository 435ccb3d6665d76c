package auth

import (
	"context"
	"log/slog"

	"arcade/config"
	"arcade/internal/domain/constants"
	"arcade/internal/domain/service"
	"arcade/internal/infra/firebaseapp"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityVerifier creates the IdentityVerifier selected by auth.provider
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Provider {
	case constants.AuthProviderJWT:
		params.Logger.Info("Using HS256 bearer tokens", slog.String("issuer", cfg.Issuer))

		verifier, err := NewJWTService(cfg)
		if err != nil {
			return nil, err
		}

		return verifier, nil

	case constants.AuthProviderFirebase:
		app, err := firebaseapp.New(params.Ctx, params.Config.Firebase)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase ID tokens", slog.String("role_claim", cfg.RoleClaim))

		verifier, err := NewFirebaseVerifier(params.Ctx, app, cfg.RoleClaim)
		if err != nil {
			return nil, err
		}

		return verifier, nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

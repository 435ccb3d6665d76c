package auth

import (
	"context"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"arcade/internal/domain/entity"
)

// idTokenVerifier is the part of the Firebase Auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier verifies Firebase ID tokens. The caller role is read from a custom claim.
type FirebaseVerifier struct {
	client    idTokenVerifier
	roleClaim string
}

// NewFirebaseVerifier creates a verifier backed by the Firebase Auth client of app.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App, roleClaim string) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return &FirebaseVerifier{client: client, roleClaim: roleClaim}, nil
}

// Verify checks the ID token signature and expiry with Firebase and extracts the identity.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Firebase ID token")
	}

	role, _ := token.Claims[v.roleClaim].(string)

	return newIdentity(token.UID, role)
}

// Command token prints a signed bearer token for local development and tests.
//
//	go run ./cmd/token -sub alice -role admin -ttl 2h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"arcade/config"
	"arcade/internal/domain/constants"
	"arcade/internal/domain/entity"
	"arcade/internal/domain/service"
	"arcade/internal/infra/auth"

	"github.com/pkg/errors"
)

func main() {
	subject := flag.String("sub", "dev-user", "Token subject")
	role := flag.String("role", entity.RolePlayer.String(), "Caller role (admin, manager, player)")
	ttl := flag.Duration("ttl", 0, "Token lifetime (defaults to auth.tokenTTL)")
	flag.Parse()

	if err := run(*subject, entity.Role(*role), *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "token: %v\n", err)
		os.Exit(1)
	}
}

func run(subject string, role entity.Role, ttl time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	if cfg.Auth.Provider != constants.AuthProviderJWT {
		return errors.Errorf("auth.provider is %q; tokens can only be issued for %q",
			cfg.Auth.Provider, constants.AuthProviderJWT)
	}

	if ttl <= 0 {
		ttl = cfg.Auth.TokenTTL
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return err
	}

	token, err := issue(jwtService, subject, role, ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}

func issue(issuer service.TokenIssuer, subject string, role entity.Role, ttl time.Duration) (string, error) {
	if !role.IsValid() {
		return "", errors.Errorf("unknown role %q", role)
	}

	token, err := issuer.Issue(entity.Identity{Subject: subject, Role: role}, ttl)
	if err != nil {
		return "", errors.Wrap(err, "issue token")
	}

	return token, nil
}

package handler

import "github.com/pkg/errors"

// errMissingPayload means a route was registered without its ValidateRequest middleware.
var errMissingPayload = errors.New("validated request payload missing from context")

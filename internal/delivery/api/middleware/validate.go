package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"arcade/internal/errors"

	"github.com/labstack/echo/v4"
)

const payloadKey = "payload"

// Defaulter is implemented by request payloads that fill omitted fields once validation passed.
type Defaulter interface {
	ApplyDefaults()
}

// bodyBinder decodes a JSON body into a payload and validates it in one pass,
// so a single response lists every rejected field.
type bodyBinder interface {
	BindBody(i any, body []byte) error
}

// ValidateRequest binds path parameters and the JSON body into a new T, validates it
// with the echo validator, applies defaults and stores it for Payload.
// Handlers behind it only ever see valid input.
func ValidateRequest[T any]() echo.MiddlewareFunc {
	pathBinder := &echo.DefaultBinder{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			binder, ok := c.Echo().Validator.(bodyBinder)
			if !ok {
				return errors.Errorf("echo validator %T cannot bind request bodies", c.Echo().Validator)
			}

			payload := new(T)
			if err := pathBinder.BindPathParams(c, payload); err != nil {
				return errors.WithStack(err)
			}

			body, err := readJSONBody(c.Request())
			if err != nil {
				return err
			}

			if err := binder.BindBody(payload, body); err != nil {
				return err
			}

			if defaulter, ok := any(payload).(Defaulter); ok {
				defaulter.ApplyDefaults()
			}

			c.Set(payloadKey, payload)

			return next(c)
		}
	}
}

// Payload returns the request payload stored by ValidateRequest[T].
func Payload[T any](c echo.Context) (*T, bool) {
	payload, ok := c.Get(payloadKey).(*T)

	return payload, ok
}

// readJSONBody returns the request body. A body cut short is returned as received
// and fails JSON decoding downstream.
func readJSONBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
			return nil, httpErr
		}

		return nil, errors.Wrap(err, "read request body")
	}

	if len(bytes.TrimSpace(body)) > 0 &&
		!strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return nil, echo.ErrUnsupportedMediaType
	}

	return body, nil
}

// Package middleware contains the API-specific echo middlewares.
package middleware

import (
	"log/slog"
	"net/http"

	"arcade/internal/delivery/api/response"
	deliverycontext "arcade/internal/delivery/context"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Errors raised by echo itself (unknown route, wrong method, oversized body, ...)
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok && httpErr.Code < http.StatusInternalServerError {
		code, message := describeHTTPError(httpErr)
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c,
		domainerrors.ErrInternalError.HTTPCode(),
		domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(),
		nil,
	)
}

func describeHTTPError(httpErr *echo.HTTPError) (code, message string) {
	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), "Route not found"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", "Method not allowed"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE", "Request body is too large"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE", "Request body must be JSON"
	}

	// httpErr.Message can hold internal error text and is never rendered.
	return "HTTP_ERROR", http.StatusText(httpErr.Code)
}

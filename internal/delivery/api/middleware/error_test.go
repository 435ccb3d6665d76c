package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"arcade/internal/delivery/api/response"
	domainerrors "arcade/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
		expectDetails  bool
	}{
		{
			name:           "validation error keeps details",
			err:            domainerrors.NewValidationError([]domainerrors.FieldError{{Field: "name", Message: "Game name is required"}}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
			expectedMsg:    "Validation failed",
			expectDetails:  true,
		},
		{
			name:           "wrapped not found",
			err:            errors.Wrap(domainerrors.ErrPlayerNotFound, "get player"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PLAYER_NOT_FOUND",
			expectedMsg:    "Player not found",
		},
		{
			name:           "forbidden drops details",
			err:            domainerrors.ErrForbidden.WithDetails("role=player"),
			expectedStatus: http.StatusForbidden,
			expectedCode:   "FORBIDDEN",
			expectedMsg:    "Access denied",
		},
		{
			name:           "store failure",
			err:            domainerrors.NewStoreError(errors.New("connection reset"), "get"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "STORE_FAILED",
			expectedMsg:    "Document store is unavailable",
		},
		{
			name:           "unknown route",
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
			expectedMsg:    "Route not found",
		},
		{
			name:           "body too large",
			err:            echo.ErrStatusRequestEntityTooLarge,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedCode:   "PAYLOAD_TOO_LARGE",
			expectedMsg:    "Request body is too large",
		},
		{
			name:           "echo error text is hidden",
			err:            echo.NewHTTPError(http.StatusBadRequest, "Time.UnmarshalJSON: input is not a JSON string"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "HTTP_ERROR",
			expectedMsg:    "Bad Request",
		},
		{
			name:           "plain error is hidden",
			err:            errors.New("nil pointer somewhere"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
			expectedMsg:    "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(slog.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/games", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body response.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Nil(t, body.Data)
			assert.Equal(t, tt.expectedMsg, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.expectedCode, body.Error.Code)
			if tt.expectDetails {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
			assert.NotContains(t, rec.Body.String(), "connection reset")
			assert.NotContains(t, rec.Body.String(), "nil pointer")
			assert.NotContains(t, rec.Body.String(), "UnmarshalJSON")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(slog.Default()).HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

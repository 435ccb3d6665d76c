package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, write func(c echo.Context) error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, write(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestSuccess(t *testing.T) {
	rec, body := render(t, func(c echo.Context) error {
		return Created(c, map[string]string{"id": "g1"}, "Game created successfully")
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Game created successfully", body["message"])
	assert.Equal(t, map[string]any{"id": "g1"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestSuccess_NullData(t *testing.T) {
	_, body := render(t, func(c echo.Context) error {
		return OK(c, nil, "Game deleted successfully")
	})

	assert.Contains(t, body, "data")
	assert.Nil(t, body["data"])
}

func TestError_DetailsVisibility(t *testing.T) {
	details := []map[string]string{{"field": "name", "message": "Game name is required"}}

	tests := []struct {
		name        string
		status      int
		showDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, showDetails: true},
		{name: "unauthorized drops details", status: http.StatusUnauthorized},
		{name: "forbidden drops details", status: http.StatusForbidden},
		{name: "server error drops details", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := render(t, func(c echo.Context) error {
				return Error(c, tt.status, "CODE", "message", details)
			})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Nil(t, body["data"])
			assert.Equal(t, "message", body["message"])

			errInfo, ok := body["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "CODE", errInfo["code"])
			if tt.showDetails {
				assert.NotNil(t, errInfo["details"])
			} else {
				assert.NotContains(t, errInfo, "details")
			}
		})
	}
}

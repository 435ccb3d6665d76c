package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"arcade/internal/delivery/api/middleware"
	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	mockUsecase "arcade/internal/mocks/usecase"
	"arcade/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGameTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockGameUsecase) {
	gameUC := mockUsecase.NewMockGameUsecase(t)
	h := NewGameHandler(GameHandlerParams{GameUC: gameUC, Logger: slog.Default()})

	e := newTestEcho()
	e.GET("/games", h.ListGames)
	e.GET("/games/:id", h.GetGame)
	e.POST("/games", h.CreateGame, middleware.ValidateRequest[CreateGameRequest]())
	e.PUT("/games/:id", h.UpdateGame, middleware.ValidateRequest[UpdateGameRequest]())
	e.DELETE("/games/:id", h.DeleteGame)

	return e, gameUC
}

func TestGameHandler_CreateGame(t *testing.T) {
	e, gameUC := newGameTestServer(t)

	gameUC.EXPECT().
		CreateGame(mock.Anything, &usecase.CreateGameInput{
			Name:        "Pac-Man",
			Description: "Maze chase",
			Modes:       "Single Player",
		}).
		Return(&entity.Game{ID: "g1", Name: "Pac-Man", Description: "Maze chase", Modes: "Single Player"}, nil).
		Once()

	rec, body := doRequest(t, e, http.MethodPost, "/games",
		`{"name":"Pac-Man","description":"Maze chase","modes":"Single Player"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Game created successfully", body.Message)

	var game entity.Game
	require.NoError(t, json.Unmarshal(body.Data, &game))
	assert.Equal(t, "g1", game.ID)
	assert.Equal(t, "Pac-Man", game.Name)
}

func TestGameHandler_CreateGame_ValidationFailed(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected map[string]string
	}{
		{
			name: "missing fields",
			body: `{"description":"Maze chase"}`,
			expected: map[string]string{
				"name":  "Game name is required",
				"modes": "Game modes are required",
			},
		},
		{
			name: "empty name",
			body: `{"name":"","description":"Maze chase","modes":"Single Player"}`,
			expected: map[string]string{
				"name": "Game name cannot be empty",
			},
		},
		{
			name: "wrong type",
			body: `{"name":42,"description":"Maze chase","modes":"Single Player"}`,
			expected: map[string]string{
				"name": "Game name must be a string",
			},
		},
		{
			name: "explicit null",
			body: `{"name":null,"description":"Maze chase","modes":"Single Player"}`,
			expected: map[string]string{
				"name": "Game name must be a string",
			},
		},
		{
			name: "body is not an object",
			body: `["Pac-Man"]`,
			expected: map[string]string{
				"body": "Request body must be a JSON object",
			},
		},
		{
			name: "malformed json",
			body: `{"name":`,
			expected: map[string]string{
				"body": "Request body must be valid JSON",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: the usecase must never be reached
			e, _ := newGameTestServer(t)

			rec, body := doRequest(t, e, http.MethodPost, "/games", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

			got := make(map[string]string, len(body.Error.Details))
			for _, detail := range body.Error.Details {
				got[detail.Field] = detail.Message
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGameHandler_UpdateGame_PassesOnlySuppliedFields(t *testing.T) {
	e, gameUC := newGameTestServer(t)

	gameUC.EXPECT().
		UpdateGame(mock.Anything, "g1", mock.MatchedBy(func(input *usecase.UpdateGameInput) bool {
			return input.Name != nil && *input.Name == "Ms. Pac-Man" &&
				input.Description == nil && input.Modes == nil
		})).
		Return(&entity.Game{ID: "g1", Name: "Ms. Pac-Man", Description: "Maze chase", Modes: "Single Player"}, nil).
		Once()

	rec, body := doRequest(t, e, http.MethodPut, "/games/g1", `{"name":"Ms. Pac-Man"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Game updated successfully", body.Message)
}

func TestGameHandler_UpdateGame_EmptyBodyIsValid(t *testing.T) {
	e, gameUC := newGameTestServer(t)

	gameUC.EXPECT().
		UpdateGame(mock.Anything, "g1", &usecase.UpdateGameInput{}).
		Return(&entity.Game{ID: "g1", Name: "Pac-Man"}, nil).
		Once()

	rec, _ := doRequest(t, e, http.MethodPut, "/games/g1", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGameHandler_GetGame(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, gameUC := newGameTestServer(t)
		gameUC.EXPECT().GetGame(mock.Anything, "g1").Return(&entity.Game{ID: "g1", Name: "Pac-Man"}, nil).Once()

		rec, body := doRequest(t, e, http.MethodGet, "/games/g1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Game retrieved successfully", body.Message)
	})

	t.Run("not found", func(t *testing.T) {
		e, gameUC := newGameTestServer(t)
		gameUC.EXPECT().GetGame(mock.Anything, "missing").Return(nil, domainerrors.ErrGameNotFound).Once()

		rec, body := doRequest(t, e, http.MethodGet, "/games/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "Game not found", body.Message)
		require.NotNil(t, body.Error)
		assert.Equal(t, "GAME_NOT_FOUND", body.Error.Code)
		assert.JSONEq(t, "null", string(body.Data))
	})
}

func TestGameHandler_ListGames(t *testing.T) {
	e, gameUC := newGameTestServer(t)
	gameUC.EXPECT().ListGames(mock.Anything).Return([]*entity.Game{{ID: "g1"}, {ID: "g2"}}, nil).Once()

	rec, body := doRequest(t, e, http.MethodGet, "/games", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Games retrieved successfully", body.Message)

	var games []entity.Game
	require.NoError(t, json.Unmarshal(body.Data, &games))
	assert.Len(t, games, 2)
}

func TestGameHandler_DeleteGame(t *testing.T) {
	e, gameUC := newGameTestServer(t)
	gameUC.EXPECT().DeleteGame(mock.Anything, "g1").Return(nil).Once()

	rec, body := doRequest(t, e, http.MethodDelete, "/games/g1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Game successfully deleted", body.Message)
	assert.JSONEq(t, "null", string(body.Data))
}

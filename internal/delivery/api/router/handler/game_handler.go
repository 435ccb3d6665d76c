// Package handler contains the echo handlers of the API.
package handler

import (
	"log/slog"

	"arcade/internal/delivery/api/middleware"
	"arcade/internal/delivery/api/response"
	"arcade/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GameHandlerParams holds dependencies for GameHandler, injected by Fx.
type GameHandlerParams struct {
	fx.In

	GameUC usecase.GameUsecase
	Logger *slog.Logger
}

// GameHandler holds dependencies for game-related handlers
type GameHandler struct {
	gameUC usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler
func NewGameHandler(params GameHandlerParams) *GameHandler {
	return &GameHandler{
		gameUC: params.GameUC,
		logger: params.Logger,
	}
}

// CreateGameRequest represents the request body for creating a game
type CreateGameRequest struct {
	Name        *string `json:"name" validate:"required,min=1" label:"Game name"`
	Description *string `json:"description" validate:"required,min=1" label:"Game description"`
	Modes       *string `json:"modes" validate:"required,min=1" label:"Game modes" required_msg:"Game modes are required"`
}

// UpdateGameRequest represents a partial game update; omitted fields are kept
type UpdateGameRequest struct {
	ID          string  `param:"id" json:"-"`
	Name        *string `json:"name" validate:"omitnil,min=1" label:"Game name"`
	Description *string `json:"description" validate:"omitnil,min=1" label:"Game description"`
	Modes       *string `json:"modes" validate:"omitnil,min=1" label:"Game modes"`
}

// ListGames handles retrieving every game
func (h *GameHandler) ListGames(c echo.Context) error {
	games, err := h.gameUC.ListGames(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, games, "Games retrieved successfully")
}

// CreateGame handles game creation
func (h *GameHandler) CreateGame(c echo.Context) error {
	req, ok := middleware.Payload[CreateGameRequest](c)
	if !ok {
		return errMissingPayload
	}

	game, err := h.gameUC.CreateGame(c.Request().Context(), &usecase.CreateGameInput{
		Name:        *req.Name,
		Description: *req.Description,
		Modes:       *req.Modes,
	})
	if err != nil {
		return err
	}

	return response.Created(c, game, "Game created successfully")
}

// GetGame handles retrieving a single game
func (h *GameHandler) GetGame(c echo.Context) error {
	game, err := h.gameUC.GetGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, game, "Game retrieved successfully")
}

// UpdateGame handles partial game updates
func (h *GameHandler) UpdateGame(c echo.Context) error {
	req, ok := middleware.Payload[UpdateGameRequest](c)
	if !ok {
		return errMissingPayload
	}

	game, err := h.gameUC.UpdateGame(c.Request().Context(), req.ID, &usecase.UpdateGameInput{
		Name:        req.Name,
		Description: req.Description,
		Modes:       req.Modes,
	})
	if err != nil {
		return err
	}

	return response.OK(c, game, "Game updated successfully")
}

// DeleteGame handles game removal
func (h *GameHandler) DeleteGame(c echo.Context) error {
	if err := h.gameUC.DeleteGame(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.OK(c, nil, "Game successfully deleted")
}

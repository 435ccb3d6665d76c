package handler

import (
	"log/slog"

	"arcade/internal/delivery/api/middleware"
	"arcade/internal/delivery/api/response"
	"arcade/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlayerHandlerParams holds dependencies for PlayerHandler, injected by Fx.
type PlayerHandlerParams struct {
	fx.In

	PlayerUC usecase.PlayerUsecase
	Logger   *slog.Logger
}

// PlayerHandler holds dependencies for player-related handlers
type PlayerHandler struct {
	playerUC usecase.PlayerUsecase
	logger   *slog.Logger
}

// NewPlayerHandler is the constructor for PlayerHandler
func NewPlayerHandler(params PlayerHandlerParams) *PlayerHandler {
	return &PlayerHandler{
		playerUC: params.PlayerUC,
		logger:   params.Logger,
	}
}

// CreatePlayerRequest represents the request body for registering a player
type CreatePlayerRequest struct {
	Username         *string `json:"username" validate:"required,min=1" label:"Username"`
	Achievements     *string `json:"achievements" label:"Achievements"`
	TotalGamesPlayed *int    `json:"totalGamesPlayed" validate:"omitnil,min=0" label:"Total games played"`
}

// ApplyDefaults starts new players with no achievements and no games
func (r *CreatePlayerRequest) ApplyDefaults() {
	if r.Achievements == nil {
		r.Achievements = new(string)
	}
	if r.TotalGamesPlayed == nil {
		r.TotalGamesPlayed = new(int)
	}
}

// UpdatePlayerRequest represents a partial player update
type UpdatePlayerRequest struct {
	ID               string  `param:"id" json:"-"`
	Username         *string `json:"username" validate:"omitnil,min=1" label:"Username"`
	Achievements     *string `json:"achievements" label:"Achievements"`
	TotalGamesPlayed *int    `json:"totalGamesPlayed" validate:"omitnil,min=0" label:"Total games played"`
}

// ListPlayers handles retrieving every player
func (h *PlayerHandler) ListPlayers(c echo.Context) error {
	players, err := h.playerUC.ListPlayers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, players, "Players retrieved successfully")
}

// CreatePlayer handles player registration
func (h *PlayerHandler) CreatePlayer(c echo.Context) error {
	req, ok := middleware.Payload[CreatePlayerRequest](c)
	if !ok {
		return errMissingPayload
	}

	player, err := h.playerUC.CreatePlayer(c.Request().Context(), &usecase.CreatePlayerInput{
		Username:         *req.Username,
		Achievements:     *req.Achievements,
		TotalGamesPlayed: *req.TotalGamesPlayed,
	})
	if err != nil {
		return err
	}

	return response.Created(c, player, "Player created successfully")
}

// GetPlayer handles retrieving a single player
func (h *PlayerHandler) GetPlayer(c echo.Context) error {
	player, err := h.playerUC.GetPlayer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, player, "Player retrieved successfully")
}

// UpdatePlayer handles partial player updates
func (h *PlayerHandler) UpdatePlayer(c echo.Context) error {
	req, ok := middleware.Payload[UpdatePlayerRequest](c)
	if !ok {
		return errMissingPayload
	}

	player, err := h.playerUC.UpdatePlayer(c.Request().Context(), req.ID, &usecase.UpdatePlayerInput{
		Username:         req.Username,
		Achievements:     req.Achievements,
		TotalGamesPlayed: req.TotalGamesPlayed,
	})
	if err != nil {
		return err
	}

	return response.OK(c, player, "Player updated successfully")
}

// DeletePlayer handles player removal
func (h *PlayerHandler) DeletePlayer(c echo.Context) error {
	if err := h.playerUC.DeletePlayer(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.OK(c, nil, "Player successfully deleted")
}

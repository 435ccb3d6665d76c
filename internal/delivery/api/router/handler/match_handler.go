package handler

import (
	"log/slog"
	"time"

	"arcade/internal/delivery/api/middleware"
	"arcade/internal/delivery/api/response"
	"arcade/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MatchHandler holds dependencies for match-related handlers
type MatchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// CreateMatchRequest represents the request body for recording a match
type CreateMatchRequest struct {
	GameID    *string    `json:"gameId" validate:"required,min=1" label:"Game ID"`
	PlayerID  *string    `json:"playerId" validate:"required,min=1" label:"Player ID"`
	Score     *int       `json:"score" validate:"required,min=0" label:"Score"`
	Timestamp *time.Time `json:"timestamp" label:"Timestamp"`
}

// ApplyDefaults stamps matches sent without a timestamp with the request time
func (r *CreateMatchRequest) ApplyDefaults() {
	if r.Timestamp == nil {
		now := time.Now().UTC()
		r.Timestamp = &now
	}
}

// UpdateMatchRequest represents a partial match update
type UpdateMatchRequest struct {
	ID        string     `param:"id" json:"-"`
	GameID    *string    `json:"gameId" validate:"omitnil,min=1" label:"Game ID"`
	PlayerID  *string    `json:"playerId" validate:"omitnil,min=1" label:"Player ID"`
	Score     *int       `json:"score" validate:"omitnil,min=0" label:"Score"`
	Timestamp *time.Time `json:"timestamp" label:"Timestamp"`
}

// ListMatches handles retrieving every match
func (h *MatchHandler) ListMatches(c echo.Context) error {
	matches, err := h.matchUC.ListMatches(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, matches, "Matches retrieved successfully")
}

// CreateMatch handles match creation
func (h *MatchHandler) CreateMatch(c echo.Context) error {
	req, ok := middleware.Payload[CreateMatchRequest](c)
	if !ok {
		return errMissingPayload
	}

	match, err := h.matchUC.CreateMatch(c.Request().Context(), &usecase.CreateMatchInput{
		GameID:    *req.GameID,
		PlayerID:  *req.PlayerID,
		Score:     *req.Score,
		Timestamp: *req.Timestamp,
	})
	if err != nil {
		return err
	}

	return response.Created(c, match, "Match created successfully")
}

// GetMatch handles retrieving a single match
func (h *MatchHandler) GetMatch(c echo.Context) error {
	match, err := h.matchUC.GetMatch(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, match, "Match retrieved successfully")
}

// UpdateMatch handles partial match updates
func (h *MatchHandler) UpdateMatch(c echo.Context) error {
	req, ok := middleware.Payload[UpdateMatchRequest](c)
	if !ok {
		return errMissingPayload
	}

	match, err := h.matchUC.UpdateMatch(c.Request().Context(), req.ID, &usecase.UpdateMatchInput{
		GameID:    req.GameID,
		PlayerID:  req.PlayerID,
		Score:     req.Score,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return err
	}

	return response.OK(c, match, "Match updated successfully")
}

// DeleteMatch handles match removal
func (h *MatchHandler) DeleteMatch(c echo.Context) error {
	if err := h.matchUC.DeleteMatch(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.OK(c, nil, "Match successfully deleted")
}

package usecase

import (
	"context"

	"arcade/internal/domain/entity"
)

// PlayerUsecase defines the interface for player roster operations.
type PlayerUsecase interface {
	ListPlayers(ctx context.Context) ([]*entity.Player, error)
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*entity.Player, error)
	GetPlayer(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, id string, input *UpdatePlayerInput) (*entity.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// --- Input DTOs ---

// CreatePlayerInput defines the data required to register a player.
type CreatePlayerInput struct {
	Username         string
	Achievements     string
	TotalGamesPlayed int
}

// UpdatePlayerInput defines a partial player update.
type UpdatePlayerInput struct {
	Username         *string
	Achievements     *string
	TotalGamesPlayed *int
}

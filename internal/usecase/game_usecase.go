// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"arcade/internal/domain/entity"
)

// GameUsecase defines the interface for game catalogue operations.
type GameUsecase interface {
	// ListGames returns every game in store order.
	ListGames(ctx context.Context) ([]*entity.Game, error)

	// CreateGame stores a new game and returns it with its generated identifier.
	CreateGame(ctx context.Context, input *CreateGameInput) (*entity.Game, error)

	// GetGame returns the game or ErrGameNotFound.
	GetGame(ctx context.Context, id string) (*entity.Game, error)

	// UpdateGame merges the supplied fields into the stored game.
	UpdateGame(ctx context.Context, id string, input *UpdateGameInput) (*entity.Game, error)

	// DeleteGame removes the game, failing with ErrGameNotFound if it does not exist.
	DeleteGame(ctx context.Context, id string) error
}

// --- Input DTOs ---

// CreateGameInput defines the data required to create a game.
type CreateGameInput struct {
	Name        string
	Description string
	Modes       string
}

// UpdateGameInput defines a partial game update. Nil fields are left unchanged.
type UpdateGameInput struct {
	Name        *string
	Description *string
	Modes       *string
}

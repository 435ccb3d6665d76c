package usecase

import (
	"context"
	"time"

	"arcade/internal/domain/entity"
)

// MatchUsecase defines the interface for match history operations.
type MatchUsecase interface {
	ListMatches(ctx context.Context) ([]*entity.Match, error)
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*entity.Match, error)
	GetMatch(ctx context.Context, id string) (*entity.Match, error)
	UpdateMatch(ctx context.Context, id string, input *UpdateMatchInput) (*entity.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

// --- Input DTOs ---

// CreateMatchInput defines the data required to record a match.
// GameID and PlayerID are stored as given; they are not checked against existing records.
type CreateMatchInput struct {
	GameID    string
	PlayerID  string
	Score     int
	Timestamp time.Time
}

// UpdateMatchInput defines a partial match update.
type UpdateMatchInput struct {
	GameID    *string
	PlayerID  *string
	Score     *int
	Timestamp *time.Time
}

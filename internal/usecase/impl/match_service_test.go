package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
	mockRepo "arcade/internal/mocks/repository"
	mockSvc "arcade/internal/mocks/service"
	"arcade/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchServiceFixtures struct {
	service   usecase.MatchUsecase
	repo      *mockRepo.MockDocumentRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	repo := mockRepo.NewMockDocumentRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return matchServiceFixtures{
		service: NewMatchService(MatchServiceParams{
			Repo:      repo,
			Publisher: publisher,
			Logger:    slog.Default(),
		}),
		repo:      repo,
		publisher: publisher,
	}
}

func TestMatchService_CreateMatch_DefaultsTimestamp(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	before := time.Now().UTC()

	fx.repo.EXPECT().
		Create(ctx, repository.CollectionMatches, mock.MatchedBy(func(fields map[string]any) bool {
			ts, ok := fields["timestamp"].(time.Time)

			return ok && !ts.Before(before) &&
				fields["gameId"] == "g1" &&
				fields["playerId"] == "p1" &&
				fields["score"] == 1500
		})).
		Return("m1", nil)
	fx.publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(nil)

	match, err := fx.service.CreateMatch(ctx, &usecase.CreateMatchInput{GameID: "g1", PlayerID: "p1", Score: 1500})
	require.NoError(t, err)
	assert.Equal(t, "m1", match.ID)
	assert.False(t, match.Timestamp.IsZero())
}

func TestMatchService_CreateMatch_KeepsGivenTimestamp(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	played := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	fx.repo.EXPECT().
		Create(ctx, repository.CollectionMatches, map[string]any{
			"gameId":    "g1",
			"playerId":  "p1",
			"score":     0,
			"timestamp": played,
		}).
		Return("m1", nil)
	fx.publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(nil)

	match, err := fx.service.CreateMatch(ctx, &usecase.CreateMatchInput{GameID: "g1", PlayerID: "p1", Timestamp: played})
	require.NoError(t, err)
	assert.Equal(t, played, match.Timestamp)
	assert.Equal(t, 0, match.Score)
}

func TestMatchService_GetMatch_DecodesStoredTypes(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		GetByID(ctx, repository.CollectionMatches, "m1").
		Return(&repository.Document{ID: "m1", Fields: map[string]any{
			"gameId":    "g1",
			"playerId":  "p1",
			"score":     int64(1500),
			"timestamp": "2024-03-01T12:00:00Z",
		}}, nil)

	match, err := fx.service.GetMatch(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 1500, match.Score)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), match.Timestamp.UTC())
}

func TestMatchService_GetMatch_FractionalScoreIsRejected(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		GetByID(ctx, repository.CollectionMatches, "m1").
		Return(&repository.Document{ID: "m1", Fields: map[string]any{"score": 1.5}}, nil)

	_, err := fx.service.GetMatch(ctx, "m1")
	assert.ErrorIs(t, err, domainerrors.ErrDocumentDecode)
}

func TestMatchService_GetMatch_NotFound(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		GetByID(ctx, repository.CollectionMatches, "missing").
		Return(nil, nil)

	_, err := fx.service.GetMatch(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
}

func TestMatchService_UpdateMatch_Score(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()
	played := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	fx.repo.EXPECT().
		GetByID(ctx, repository.CollectionMatches, "m1").
		Return(&repository.Document{ID: "m1", Fields: map[string]any{
			"gameId": "g1", "playerId": "p1", "score": 10, "timestamp": played,
		}}, nil)
	fx.repo.EXPECT().
		Update(ctx, repository.CollectionMatches, "m1", map[string]any{
			"gameId": "g1", "playerId": "p1", "score": 0, "timestamp": played,
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(nil)

	match, err := fx.service.UpdateMatch(ctx, "m1", &usecase.UpdateMatchInput{Score: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, match.Score)
	assert.Equal(t, "g1", match.GameID)
}

func TestMatchService_DeleteMatch_NotFound(t *testing.T) {
	fx := createTestMatchService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		GetByID(ctx, repository.CollectionMatches, "missing").
		Return(nil, nil)

	assert.ErrorIs(t, fx.service.DeleteMatch(ctx, "missing"), domainerrors.ErrMatchNotFound)
}

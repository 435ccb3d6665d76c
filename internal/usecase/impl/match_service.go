package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "arcade/internal/delivery/context"
	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
	"arcade/internal/domain/service"
	"arcade/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// matchService implements the MatchUsecase interface.
type matchService struct {
	repo      repository.DocumentRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	Repo      repository.DocumentRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		repo:      params.Repo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *matchService) ListMatches(ctx context.Context) ([]*entity.Match, error) {
	docs, err := srv.repo.GetAll(ctx, repository.CollectionMatches)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list matches")
	}

	matches := make([]*entity.Match, 0, len(docs))
	for _, doc := range docs {
		match, err := decodeMatch(doc)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// CreateMatch records a match. A zero timestamp is replaced with the current time.
func (srv *matchService) CreateMatch(ctx context.Context, input *usecase.CreateMatchInput) (*entity.Match, error) {
	match := &entity.Match{
		GameID:    input.GameID,
		PlayerID:  input.PlayerID,
		Score:     input.Score,
		Timestamp: input.Timestamp,
	}
	if match.Timestamp.IsZero() {
		match.Timestamp = time.Now().UTC()
	}

	id, err := srv.repo.Create(ctx, repository.CollectionMatches, match.Fields())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create match")
	}
	match.ID = id

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Match recorded",
		slog.String("match_id", id),
		slog.String("game_id", match.GameID),
		slog.String("player_id", match.PlayerID),
	)
	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionMatches, id, service.ChangeCreated)

	return match, nil
}

func (srv *matchService) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	doc, err := srv.repo.GetByID(ctx, repository.CollectionMatches, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get match")
	}

	if doc == nil {
		return nil, domainerrors.ErrMatchNotFound
	}

	return decodeMatch(doc)
}

func (srv *matchService) UpdateMatch(ctx context.Context, id string, input *usecase.UpdateMatchInput) (*entity.Match, error) {
	match, err := srv.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if input != nil {
		if input.GameID != nil {
			match.GameID = *input.GameID
		}
		if input.PlayerID != nil {
			match.PlayerID = *input.PlayerID
		}
		if input.Score != nil {
			match.Score = *input.Score
		}
		if input.Timestamp != nil {
			match.Timestamp = *input.Timestamp
		}
	}

	if err := srv.repo.Update(ctx, repository.CollectionMatches, id, match.Fields()); err != nil {
		return nil, errors.Wrap(err, "failed to update match")
	}

	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionMatches, id, service.ChangeUpdated)

	return match, nil
}

func (srv *matchService) DeleteMatch(ctx context.Context, id string) error {
	if _, err := srv.GetMatch(ctx, id); err != nil {
		return err
	}

	if err := srv.repo.Delete(ctx, repository.CollectionMatches, id); err != nil {
		return errors.Wrap(err, "failed to delete match")
	}

	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionMatches, id, service.ChangeDeleted)

	return nil
}

func decodeMatch(doc *repository.Document) (*entity.Match, error) {
	match, err := decodeDocument[entity.Match](doc)
	if err != nil {
		return nil, err
	}
	match.ID = doc.ID

	return match, nil
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "arcade/internal/delivery/context"
	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
	"arcade/internal/domain/service"
	"arcade/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gameService implements the GameUsecase interface.
type gameService struct {
	repo      repository.DocumentRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// GameServiceParams holds dependencies for GameService, injected by Fx.
type GameServiceParams struct {
	fx.In

	Repo      repository.DocumentRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	return &gameService{
		repo:      params.Repo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// ListGames returns every stored game.
func (srv *gameService) ListGames(ctx context.Context) ([]*entity.Game, error) {
	docs, err := srv.repo.GetAll(ctx, repository.CollectionGames)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(docs))
	for _, doc := range docs {
		game, err := decodeGame(doc)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

// CreateGame stores a new game.
func (srv *gameService) CreateGame(ctx context.Context, input *usecase.CreateGameInput) (*entity.Game, error) {
	game := &entity.Game{
		Name:        input.Name,
		Description: input.Description,
		Modes:       input.Modes,
	}

	id, err := srv.repo.Create(ctx, repository.CollectionGames, game.Fields())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game")
	}
	game.ID = id

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Game created",
		slog.String("game_id", id),
		slog.String("name", game.Name),
	)
	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionGames, id, service.ChangeCreated)

	return game, nil
}

// GetGame returns the game with the given id.
func (srv *gameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	doc, err := srv.repo.GetByID(ctx, repository.CollectionGames, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game")
	}

	if doc == nil {
		return nil, domainerrors.ErrGameNotFound
	}

	return decodeGame(doc)
}

// UpdateGame merges the supplied fields into the stored game and persists the result.
func (srv *gameService) UpdateGame(ctx context.Context, id string, input *usecase.UpdateGameInput) (*entity.Game, error) {
	game, err := srv.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if input != nil {
		if input.Name != nil {
			game.Name = *input.Name
		}
		if input.Description != nil {
			game.Description = *input.Description
		}
		if input.Modes != nil {
			game.Modes = *input.Modes
		}
	}

	if err := srv.repo.Update(ctx, repository.CollectionGames, id, game.Fields()); err != nil {
		return nil, errors.Wrap(err, "failed to update game")
	}

	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionGames, id, service.ChangeUpdated)

	return game, nil
}

// DeleteGame removes the game with the given id.
func (srv *gameService) DeleteGame(ctx context.Context, id string) error {
	if _, err := srv.GetGame(ctx, id); err != nil {
		return err
	}

	if err := srv.repo.Delete(ctx, repository.CollectionGames, id); err != nil {
		return errors.Wrap(err, "failed to delete game")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Game deleted", slog.String("game_id", id))
	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionGames, id, service.ChangeDeleted)

	return nil
}

func decodeGame(doc *repository.Document) (*entity.Game, error) {
	game, err := decodeDocument[entity.Game](doc)
	if err != nil {
		return nil, err
	}
	game.ID = doc.ID

	return game, nil
}

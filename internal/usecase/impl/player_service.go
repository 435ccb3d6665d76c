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

// playerService implements the PlayerUsecase interface.
type playerService struct {
	repo      repository.DocumentRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PlayerServiceParams holds dependencies for PlayerService, injected by Fx.
type PlayerServiceParams struct {
	fx.In

	Repo      repository.DocumentRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPlayerService is the constructor for playerService.
func NewPlayerService(params PlayerServiceParams) usecase.PlayerUsecase {
	return &playerService{
		repo:      params.Repo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *playerService) ListPlayers(ctx context.Context) ([]*entity.Player, error) {
	docs, err := srv.repo.GetAll(ctx, repository.CollectionPlayers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}

	players := make([]*entity.Player, 0, len(docs))
	for _, doc := range docs {
		player, err := decodePlayer(doc)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, nil
}

func (srv *playerService) CreatePlayer(ctx context.Context, input *usecase.CreatePlayerInput) (*entity.Player, error) {
	player := &entity.Player{
		Username:         input.Username,
		Achievements:     input.Achievements,
		TotalGamesPlayed: input.TotalGamesPlayed,
	}

	id, err := srv.repo.Create(ctx, repository.CollectionPlayers, player.Fields())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create player")
	}
	player.ID = id

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Player registered",
		slog.String("player_id", id),
		slog.String("username", player.Username),
	)
	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionPlayers, id, service.ChangeCreated)

	return player, nil
}

func (srv *playerService) GetPlayer(ctx context.Context, id string) (*entity.Player, error) {
	doc, err := srv.repo.GetByID(ctx, repository.CollectionPlayers, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get player")
	}

	if doc == nil {
		return nil, domainerrors.ErrPlayerNotFound
	}

	return decodePlayer(doc)
}

func (srv *playerService) UpdatePlayer(ctx context.Context, id string, input *usecase.UpdatePlayerInput) (*entity.Player, error) {
	player, err := srv.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input != nil {
		if input.Username != nil {
			player.Username = *input.Username
		}
		if input.Achievements != nil {
			player.Achievements = *input.Achievements
		}
		if input.TotalGamesPlayed != nil {
			player.TotalGamesPlayed = *input.TotalGamesPlayed
		}
	}

	if err := srv.repo.Update(ctx, repository.CollectionPlayers, id, player.Fields()); err != nil {
		return nil, errors.Wrap(err, "failed to update player")
	}

	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionPlayers, id, service.ChangeUpdated)

	return player, nil
}

func (srv *playerService) DeletePlayer(ctx context.Context, id string) error {
	if _, err := srv.GetPlayer(ctx, id); err != nil {
		return err
	}

	if err := srv.repo.Delete(ctx, repository.CollectionPlayers, id); err != nil {
		return errors.Wrap(err, "failed to delete player")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Player deleted", slog.String("player_id", id))
	publishChange(ctx, srv.publisher, srv.logger, repository.CollectionPlayers, id, service.ChangeDeleted)

	return nil
}

func decodePlayer(doc *repository.Document) (*entity.Player, error) {
	player, err := decodeDocument[entity.Player](doc)
	if err != nil {
		return nil, err
	}
	player.ID = doc.ID

	return player, nil
}

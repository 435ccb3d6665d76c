// Package docstore selects the document database adapter from configuration.
package docstore

import (
	"context"
	"log/slog"

	"arcade/config"
	"arcade/internal/domain/constants"
	"arcade/internal/domain/repository"
	"arcade/internal/infra/docstore/firestore"
	"arcade/internal/infra/docstore/memory"
	"arcade/internal/infra/docstore/mongo"
	"arcade/internal/infra/firebaseapp"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the DocumentStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentStore opens the configured document store and closes it on shutdown
func NewDocumentStore(params StoreParams) (repository.DocumentStore, error) {
	cfg := params.Config.DocumentStore
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("documentStore configuration is required")
	}

	var store repository.DocumentStore

	switch cfg.Driver {
	case constants.StoreDriverFirestore:
		app, err := firebaseapp.New(params.Ctx, params.Config.Firebase)
		if err != nil {
			return nil, err
		}

		store, err = firestore.New(params.Ctx, app)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firestore document store",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

	case constants.StoreDriverMongo:
		var err error
		store, err = mongo.New(params.Ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB document store",
			slog.String("database", cfg.Mongo.Database),
		)

	case constants.StoreDriverMemory:
		logger.Warn("Using in-memory document store, data is not persisted")

		store = memory.New()

	default:
		return nil, errors.Errorf("unknown document store driver: %s", cfg.Driver)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing document store")

			return store.Close()
		},
	})

	return store, nil
}

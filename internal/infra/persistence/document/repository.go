// Package document implements repository.DocumentRepository on top of a document store client.
package document

import (
	"context"
	"log/slog"

	deliverycontext "arcade/internal/delivery/context"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
)

// documentRepository implements the repository.DocumentRepository interface.
type documentRepository struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(store repository.DocumentStore, logger *slog.Logger) repository.DocumentRepository {
	return &documentRepository{
		store:  store,
		logger: logger,
	}
}

func (repo *documentRepository) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, repo.logger)
}

// Create writes a new document and returns the store-generated identifier.
func (repo *documentRepository) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id, err := repo.store.Add(ctx, collection, fields)
	if err != nil {
		repo.log(ctx).Error("Failed to create document",
			slog.String("collection", collection),
			slog.Any("error", err),
		)

		return "", domainerrors.NewStoreError(err, "create")
	}

	repo.log(ctx).Debug("Document created",
		slog.String("collection", collection),
		slog.String("id", id),
	)

	return id, nil
}

// GetAll returns every document of the collection.
func (repo *documentRepository) GetAll(ctx context.Context, collection string) ([]*repository.Document, error) {
	docs, err := repo.store.List(ctx, collection)
	if err != nil {
		repo.log(ctx).Error("Failed to list documents",
			slog.String("collection", collection),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewStoreError(err, "list")
	}

	return docs, nil
}

// GetByID returns the addressed document or nil when it does not exist.
func (repo *documentRepository) GetByID(ctx context.Context, collection, id string) (*repository.Document, error) {
	doc, found, err := repo.store.Get(ctx, collection, id)
	if err != nil {
		repo.log(ctx).Error("Failed to get document",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewStoreError(err, "get")
	}

	if !found {
		return nil, nil
	}

	return doc, nil
}

// Update replaces the addressed document with fields.
func (repo *documentRepository) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := repo.store.Set(ctx, collection, id, fields); err != nil {
		repo.log(ctx).Error("Failed to update document",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Any("error", err),
		)

		return domainerrors.NewStoreError(err, "update")
	}

	return nil
}

// Delete removes the addressed document.
func (repo *documentRepository) Delete(ctx context.Context, collection, id string) error {
	if err := repo.store.Delete(ctx, collection, id); err != nil {
		repo.log(ctx).Error("Failed to delete document",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Any("error", err),
		)

		return domainerrors.NewStoreError(err, "delete")
	}

	return nil
}

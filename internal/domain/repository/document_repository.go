// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// Collection names used by the entity services.
const (
	CollectionGames   = "games"
	CollectionMatches = "matches"
	CollectionPlayers = "players"

	// CollectionChangeEvents holds the audit trail written by the change-event worker.
	CollectionChangeEvents = "changeEvents"
)

// Document is an untyped record read from the document store.
type Document struct {
	ID     string         // Store-generated identifier.
	Fields map[string]any // Document body, without the identifier.
}

// DocumentRepository mediates between the entity services and the document store.
// It performs no merging and no retries; store failures are returned wrapped as
// store errors.
type DocumentRepository interface {
	// Create writes a new document and returns the generated identifier.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)

	// GetAll returns every document of the collection in store-defined order.
	GetAll(ctx context.Context, collection string) ([]*Document, error)

	// GetByID returns the addressed document, or nil without error when it does not exist.
	GetByID(ctx context.Context, collection, id string) (*Document, error)

	// Update replaces the addressed document with fields.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes the addressed document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
}

// DocumentStore is the narrow client interface a document database adapter exposes.
// Get reports a missing document with found == false.
type DocumentStore interface {
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)
	List(ctx context.Context, collection string) ([]*Document, error)
	Get(ctx context.Context, collection, id string) (doc *Document, found bool, err error)
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Close() error
}

// Package firestore adapts Cloud Firestore to the repository.DocumentStore interface.
package firestore

import (
	"context"

	"arcade/internal/domain/repository"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type store struct {
	client *firestore.Client
}

// New opens a Firestore client for the app's project.
func New(ctx context.Context, app *firebase.App) (repository.DocumentStore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	return &store{client: client}, nil
}

func (s *store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return ref.ID, nil
}

func (s *store) List(ctx context.Context, collection string) ([]*repository.Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	docs := make([]*repository.Document, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}

		docs = append(docs, &repository.Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}

	return docs, nil
}

func (s *store) Get(ctx context.Context, collection, id string) (*repository.Document, bool, error) {
	ref := s.client.Collection(collection).Doc(id)
	if id == "" || ref == nil {
		// Not addressable as a document path, so it cannot exist.
		return nil, false, nil
	}

	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	return &repository.Document{ID: snap.Ref.ID, Fields: snap.Data()}, true, nil
}

func (s *store) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	ref := s.client.Collection(collection).Doc(id)
	if ref == nil {
		return errors.Errorf("invalid document id %q", id)
	}

	_, err := ref.Set(ctx, fields)

	return errors.WithStack(err)
}

func (s *store) Delete(ctx context.Context, collection, id string) error {
	ref := s.client.Collection(collection).Doc(id)
	if ref == nil {
		return nil
	}

	_, err := ref.Delete(ctx)

	return errors.WithStack(err)
}

func (s *store) Close() error {
	return errors.WithStack(s.client.Close())
}

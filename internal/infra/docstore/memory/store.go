// Package memory provides an in-process repository.DocumentStore for local
// development and tests. Contents are lost when the process exits.
package memory

import (
	"context"
	"maps"
	"sync"

	"arcade/internal/domain/repository"

	"github.com/google/uuid"
)

// Store keeps documents per collection in insertion order.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

type collection struct {
	order []string
	docs  map[string]map[string]any
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string]*collection)}
}

func (s *Store) Add(ctx context.Context, name string, fields map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	c := s.collection(name)
	c.order = append(c.order, id)
	c.docs[id] = cloneFields(fields)

	return id, nil
}

func (s *Store) List(ctx context.Context, name string) ([]*repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*repository.Document, 0)
	c, ok := s.collections[name]
	if !ok {
		return docs, nil
	}

	for _, id := range c.order {
		docs = append(docs, &repository.Document{ID: id, Fields: cloneFields(c.docs[id])})
	}

	return docs, nil
}

func (s *Store) Get(ctx context.Context, name, id string) (*repository.Document, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, false, nil
	}

	fields, ok := c.docs[id]
	if !ok {
		return nil, false, nil
	}

	return &repository.Document{ID: id, Fields: cloneFields(fields)}, true, nil
}

func (s *Store) Set(ctx context.Context, name, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(name)
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = cloneFields(fields)

	return nil
}

func (s *Store) Delete(ctx context.Context, name, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return nil
	}
	if _, exists := c.docs[id]; !exists {
		return nil
	}

	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return nil
}

func (s *Store) Close() error {
	return nil
}

// collection returns the named collection, creating it. Callers hold the write lock.
func (s *Store) collection(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}

	return c
}

func cloneFields(fields map[string]any) map[string]any {
	out := maps.Clone(fields)
	if out == nil {
		out = make(map[string]any)
	}
	for k, v := range out {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneFields(nested)
		}
	}

	return out
}

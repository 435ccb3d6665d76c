package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddGetListSetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	firstID, err := s.Add(ctx, "games", map[string]any{"name": "Space Invaders"})
	require.NoError(t, err)
	secondID, err := s.Add(ctx, "games", map[string]any{"name": "Pac-Man"})
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	doc, found, err := s.Get(ctx, "games", firstID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, firstID, doc.ID)
	assert.Equal(t, "Space Invaders", doc.Fields["name"])

	docs, err := s.List(ctx, "games")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, firstID, docs[0].ID)
	assert.Equal(t, secondID, docs[1].ID)

	require.NoError(t, s.Set(ctx, "games", firstID, map[string]any{"name": "Galaga"}))
	doc, found, err = s.Get(ctx, "games", firstID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]any{"name": "Galaga"}, doc.Fields)

	require.NoError(t, s.Delete(ctx, "games", firstID))
	_, found, err = s.Get(ctx, "games", firstID)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting twice is not an error.
	require.NoError(t, s.Delete(ctx, "games", firstID))

	docs, err = s.List(ctx, "games")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, secondID, docs[0].ID)
}

func TestStore_IsolatesCallerMaps(t *testing.T) {
	ctx := context.Background()
	s := New()

	input := map[string]any{"username": "gamer123"}
	id, err := s.Add(ctx, "players", input)
	require.NoError(t, err)

	input["username"] = "mutated"

	doc, _, err := s.Get(ctx, "players", id)
	require.NoError(t, err)
	assert.Equal(t, "gamer123", doc.Fields["username"])

	doc.Fields["username"] = "mutated again"

	again, _, err := s.Get(ctx, "players", id)
	require.NoError(t, err)
	assert.Equal(t, "gamer123", again.Fields["username"])
}

func TestStore_MissingCollection(t *testing.T) {
	ctx := context.Background()
	s := New()

	docs, err := s.List(ctx, "matches")
	require.NoError(t, err)
	assert.Empty(t, docs)

	doc, found, err := s.Get(ctx, "matches", "does-not-exist")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, doc)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Add(ctx, "games", map[string]any{})
	assert.ErrorIs(t, err, context.Canceled)
}

package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToDocument_ConvertsBSONValues(t *testing.T) {
	oid := primitive.NewObjectID()
	played := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	doc := toDocument(bson.M{
		"_id":       oid,
		"gameId":    "game123",
		"score":     int32(1500),
		"timestamp": primitive.NewDateTimeFromTime(played),
		"tags":      primitive.A{"a", primitive.NewDateTimeFromTime(played)},
		"meta":      bson.M{"at": primitive.NewDateTimeFromTime(played)},
	})

	assert.Equal(t, oid.Hex(), doc.ID)
	assert.NotContains(t, doc.Fields, "_id")
	assert.Equal(t, "game123", doc.Fields["gameId"])
	assert.Equal(t, int32(1500), doc.Fields["score"])
	assert.Equal(t, played, doc.Fields["timestamp"])
	assert.Equal(t, []any{"a", played}, doc.Fields["tags"])
	assert.Equal(t, map[string]any{"at": played}, doc.Fields["meta"])
}

func TestNew_RequiresURIAndDatabase(t *testing.T) {
	_, err := New(t.Context(), nil)
	assert.Error(t, err)
}

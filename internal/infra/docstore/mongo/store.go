// Package mongo adapts MongoDB to the repository.DocumentStore interface.
// Documents are keyed by ObjectID; the hex form is the entity identifier.
package mongo

import (
	"context"
	"time"

	"arcade/config"
	"arcade/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	idField               = "_id"
	defaultConnectTimeout = 10 * time.Second
)

type store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, cfg *config.MongoConfig) (repository.DocumentStore, error) {
	if cfg == nil || cfg.URI == "" || cfg.Database == "" {
		return nil, errors.New("mongo uri and database are required")
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	return &store{client: client, db: client.Database(cfg.Database)}, nil
}

func (s *store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}

	oid := primitive.NewObjectID()
	doc[idField] = oid

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", errors.WithStack(err)
	}

	return oid.Hex(), nil
}

func (s *store) List(ctx context.Context, collection string) ([]*repository.Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer cur.Close(ctx)

	docs := make([]*repository.Document, 0)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, errors.WithStack(err)
		}
		docs = append(docs, toDocument(raw))
	}

	if err := cur.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return docs, nil
}

func (s *store) Get(ctx context.Context, collection, id string) (*repository.Document, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Ids this store never generated cannot exist.
		return nil, false, nil
	}

	var raw bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{idField: oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	return toDocument(raw), true, nil
}

func (s *store) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(err, "invalid document id %q", id)
	}

	replacement := bson.M{}
	for k, v := range fields {
		replacement[k] = v
	}

	_, err = s.db.Collection(collection).ReplaceOne(ctx, bson.M{idField: oid}, replacement, options.Replace().SetUpsert(true))

	return errors.WithStack(err)
}

func (s *store) Delete(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = s.db.Collection(collection).DeleteOne(ctx, bson.M{idField: oid})

	return errors.WithStack(err)
}

func (s *store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	return errors.WithStack(s.client.Disconnect(ctx))
}

// toDocument strips the ObjectID and converts BSON-specific values to plain Go values.
func toDocument(raw bson.M) *repository.Document {
	doc := &repository.Document{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == idField {
			if oid, ok := v.(primitive.ObjectID); ok {
				doc.ID = oid.Hex()
			}

			continue
		}
		doc.Fields[k] = normalize(v)
	}

	return doc
}

func normalize(v any) any {
	switch val := v.(type) {
	case primitive.DateTime:
		return val.Time().UTC()
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}

		return out
	case primitive.D:
		out := make(map[string]any, len(val))
		for _, elem := range val {
			out[elem.Key] = normalize(elem.Value)
		}

		return out
	case primitive.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}

		return out
	default:
		return v
	}
}

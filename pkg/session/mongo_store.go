package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore persists sessions in a MongoDB collection. Expiry is enforced
// twice: a TTL index lets the server reap stale documents in the background,
// and Get filters on expiresAt so a not-yet-reaped document never resolves.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = "sessions"
	}
	return &MongoStore{coll: db.Collection(collection)}
}

// EnsureIndexes creates the TTL index on expiresAt and a unique index on
// token. Safe to call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("session: failed to ensure indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, session *Session) error {
	if _, err := s.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("session: failed to create: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, token string) (*Session, error) {
	filter := bson.D{
		{Key: "token", Value: token},
		{Key: "expiresAt", Value: bson.D{{Key: "$gt", Value: time.Now().UTC()}}},
	}

	var sess Session
	if err := s.coll.FindOne(ctx, filter).Decode(&sess); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("session: failed to get: %w", err)
	}
	return &sess, nil
}

func (s *MongoStore) Delete(ctx context.Context, token string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "token", Value: token}}); err != nil {
		return fmt.Errorf("session: failed to delete: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{{Key: "userId", Value: userID}}); err != nil {
		return fmt.Errorf("session: failed to delete by user: %w", err)
	}
	return nil
}

package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore is the production Store backed by the accounts collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = "accounts"
	}
	return &MongoStore{coll: db.Collection(collection)}
}

// EnsureIndexes creates the unique email index. Safe to call on every
// startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("account: failed to ensure indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	if err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account: failed to find by email: %w", err)
	}
	return &acc, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*Account, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var acc Account
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account: failed to find by id: %w", err)
	}
	return &acc, nil
}

func (s *MongoStore) Insert(ctx context.Context, a *Account) error {
	now := time.Now().UTC()
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("account: failed to insert: %w", err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	for k, v := range fields {
		set = append(set, bson.E{Key: k, Value: v})
	}

	res, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("account: failed to update: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, params ListParams) (*ListResult, error) {
	filter := bson.D{}
	if params.Search != "" {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(params.Search), Options: "i"}
		filter = bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "email", Value: pattern}},
			bson.D{{Key: "firstName", Value: pattern}},
			bson.D{{Key: "lastName", Value: pattern}},
		}}}
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("account: failed to count: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((params.Page - 1) * params.Limit).
		SetLimit(params.Limit)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("account: failed to list: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("account: failed to decode list: %w", err)
	}

	return &ListResult{Accounts: accounts, Total: total}, nil
}

var _ Store = (*MongoStore)(nil)

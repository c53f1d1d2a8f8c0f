package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores one document per verification, keyed by _id = verification id.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// decisionUpdate sets only the decision fields; $currentDate lets the server
// assign decidedAt.
func decisionUpdate(status verification.Status) bson.M {
	return bson.M{
		"$set":         bson.M{"status": string(status)},
		"$currentDate": bson.M{"decidedAt": true},
	}
}

func (m *MongoRepo) UpsertDecision(ctx context.Context, id string, status verification.Status) error {
	opts := options.Update().SetUpsert(true)
	if _, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, decisionUpdate(status), opts); err != nil {
		return fmt.Errorf("upsert verification %s: %w", id, err)
	}
	return nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*verification.Record, error) {
	var rec verification.Record
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}

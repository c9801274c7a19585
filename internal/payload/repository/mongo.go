package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// storedDocument is the Mongo representation of the stored file. Content is
// kept as a string so the exact bytes survive the round trip.
type storedDocument struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	Size      int       `bson:"size"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoRepo implements a MongoDB-backed repository. The whole store is one
// document whose _id is the stored file name.
type MongoRepo struct {
	col *mongo.Collection
	id  string
}

func NewMongoRepo(col *mongo.Collection, id string) *MongoRepo {
	return &MongoRepo{col: col, id: id}
}

func (m *MongoRepo) Load(ctx context.Context) ([]byte, error) {
	var d storedDocument
	err := m.col.FindOne(ctx, bson.M{"_id": m.id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(d.Content), nil
}

func (m *MongoRepo) Replace(ctx context.Context, data []byte) error {
	d := storedDocument{ID: m.id, Content: string(data), Size: len(data), UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": m.id}, d, opts)
	return err
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, readpref.Primary())
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("load returns stored content", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, "teachable_output.json")
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "teachable_output.json"},
			{Key: "content", Value: "{\n  \"score\": 42\n}"},
		}))

		got, err := repo.Load(ctx)
		require.NoError(mt, err)
		require.Equal(mt, "{\n  \"score\": 42\n}", string(got))
	})

	mt.Run("load before any store", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, "teachable_output.json")
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Load(ctx)
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("replace upserts by file name", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, "teachable_output.json")
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(mt, repo.Replace(ctx, []byte(`{"a": 1}`)))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		require.Equal(mt, "update", started.CommandName)
	})

	mt.Run("replace surfaces server errors", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, "teachable_output.json")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		require.Error(mt, repo.Replace(ctx, []byte(`{"a": 1}`)))
	})

	mt.Run("ping", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll, "teachable_output.json")
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, repo.Ping(ctx))
	})
}

package store

import (
	"context"
	"errors"
	"testing"

	"eldercare-api/internal/database"
	"eldercare-api/internal/model"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestCreateUser(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		id := primitive.NewObjectID()
		col := &database.FakeCollection{
			InsertOneFn: func(_ context.Context, doc interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				u, ok := doc.(*model.User)
				require.True(t, ok)
				require.Equal(t, "a@x.com", u.Email)
				require.Equal(t, "p", u.Password)
				return &mongo.InsertOneResult{InsertedID: id}, nil
			},
		}
		got, err := CreateUser(context.Background(), col, &model.User{Email: "a@x.com", Password: "p"})
		require.NoError(t, err)
		require.Equal(t, id, got)
	})

	t.Run("insert error", func(t *testing.T) {
		col := &database.FakeCollection{
			InsertOneFn: func(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := CreateUser(context.Background(), col, &model.User{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
	})

	t.Run("not acknowledged", func(t *testing.T) {
		col := &database.FakeCollection{
			InsertOneFn: func(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				return &mongo.InsertOneResult{}, nil
			},
		}
		_, err := CreateUser(context.Background(), col, &model.User{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "not acknowledged")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		u := model.User{
			ID:       primitive.NewObjectID(),
			Name:     "Alice",
			Email:    "a@x.com",
			Password: "p",
			DOB:      "1948-06-02",
			Role:     "family",
		}
		col := &database.FakeCollection{
			FindOneFn: func(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
				require.Equal(t, bson.M{"email": "a@x.com"}, filter)
				return mongo.NewSingleResultFromDocument(u, nil, nil)
			},
		}
		got, err := GetUserByEmail(context.Background(), col, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, u.Name, got.Name)
		require.Equal(t, u.Password, got.Password)
		require.Equal(t, u.Role, got.Role)
	})

	t.Run("not found", func(t *testing.T) {
		col := &database.FakeCollection{
			FindOneFn: func(context.Context, interface{}, ...*options.FindOneOptions) *mongo.SingleResult {
				return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
			},
		}
		_, err := GetUserByEmail(context.Background(), col, "missing@x.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find error", func(t *testing.T) {
		col := &database.FakeCollection{
			FindOneFn: func(context.Context, interface{}, ...*options.FindOneOptions) *mongo.SingleResult {
				return mongo.NewSingleResultFromDocument(bson.D{}, errors.New("boom"), nil)
			},
		}
		_, err := GetUserByEmail(context.Background(), col, "a@x.com")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

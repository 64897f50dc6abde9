package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestFakeCollectionDelegates(t *testing.T) {
	f := &FakeCollection{
		InsertOneFn: func(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
			return nil, errors.New("insert")
		},
		FindOneFn: func(context.Context, interface{}, ...*options.FindOneOptions) *mongo.SingleResult {
			return mongo.NewSingleResultFromDocument(bson.D{}, errors.New("find one"), nil)
		},
		FindFn: func(context.Context, interface{}, ...*options.FindOptions) (*mongo.Cursor, error) {
			return nil, errors.New("find")
		},
		UpdateOneFn: func(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
			return nil, errors.New("update")
		},
	}

	ctx := context.Background()
	_, err := f.InsertOne(ctx, bson.D{})
	require.EqualError(t, err, "insert")
	require.EqualError(t, f.FindOne(ctx, bson.D{}).Err(), "find one")
	_, err = f.Find(ctx, bson.D{})
	require.EqualError(t, err, "find")
	_, err = f.UpdateOne(ctx, bson.D{}, bson.D{})
	require.EqualError(t, err, "update")
}

func TestFakeCollectionPanics(t *testing.T) {
	f := &FakeCollection{}
	ctx := context.Background()
	require.Panics(t, func() { _, _ = f.InsertOne(ctx, bson.D{}) })
	require.Panics(t, func() { _ = f.FindOne(ctx, bson.D{}) })
	require.Panics(t, func() { _, _ = f.Find(ctx, bson.D{}) })
	require.Panics(t, func() { _, _ = f.UpdateOne(ctx, bson.D{}, bson.D{}) })
}

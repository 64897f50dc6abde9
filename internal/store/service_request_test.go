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

func TestCreateServiceRequest(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		id := primitive.NewObjectID()
		col := &database.FakeCollection{
			InsertOneFn: func(_ context.Context, doc interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				r, ok := doc.(*model.ServiceRequest)
				require.True(t, ok)
				require.Equal(t, model.StatusPending, r.Status)
				return &mongo.InsertOneResult{InsertedID: id}, nil
			},
		}
		got, err := CreateServiceRequest(context.Background(), col, &model.ServiceRequest{Status: model.StatusPending})
		require.NoError(t, err)
		require.Equal(t, id, got)
	})

	t.Run("insert error", func(t *testing.T) {
		col := &database.FakeCollection{
			InsertOneFn: func(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := CreateServiceRequest(context.Background(), col, &model.ServiceRequest{})
		require.Error(t, err)
	})

	t.Run("not acknowledged", func(t *testing.T) {
		col := &database.FakeCollection{
			InsertOneFn: func(context.Context, interface{}, ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				return &mongo.InsertOneResult{}, nil
			},
		}
		_, err := CreateServiceRequest(context.Background(), col, &model.ServiceRequest{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "not acknowledged")
	})
}

func TestListPendingServiceRequests(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		newer := model.ServiceRequest{
			ID:        primitive.NewObjectID(),
			UserName:  "Alice",
			Status:    model.StatusPending,
			CreatedAt: "2026-08-28T10:15:00",
		}
		older := model.ServiceRequest{
			ID:        primitive.NewObjectID(),
			UserName:  "Carol",
			Status:    model.StatusPending,
			CreatedAt: "2026-08-27T09:00:00",
		}
		col := &database.FakeCollection{
			FindFn: func(_ context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
				require.Equal(t, bson.M{"status": model.StatusPending}, filter)
				require.Len(t, opts, 1)
				require.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts[0].Sort)
				return mongo.NewCursorFromDocuments([]interface{}{newer, older}, nil, nil)
			},
		}
		got, err := ListPendingServiceRequests(context.Background(), col)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, newer.ID, got[0].ID)
		require.Equal(t, older.ID, got[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		col := &database.FakeCollection{
			FindFn: func(context.Context, interface{}, ...*options.FindOptions) (*mongo.Cursor, error) {
				return mongo.NewCursorFromDocuments([]interface{}{}, nil, nil)
			},
		}
		got, err := ListPendingServiceRequests(context.Background(), col)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("find error", func(t *testing.T) {
		col := &database.FakeCollection{
			FindFn: func(context.Context, interface{}, ...*options.FindOptions) (*mongo.Cursor, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListPendingServiceRequests(context.Background(), col)
		require.Error(t, err)
	})
}

func TestApplyDecision(t *testing.T) {
	id := primitive.NewObjectID()
	decision := model.Decision{
		Status:         model.StatusApproved,
		CaregiverID:    "cid",
		CaregiverName:  "Bob",
		CaregiverEmail: "bob@x.com",
		ProcessedAt:    "2026-08-28T11:00:00Z",
		UpdatedAt:      "2026-08-28T11:00:00Z",
	}

	t.Run("matched", func(t *testing.T) {
		col := &database.FakeCollection{
			UpdateOneFn: func(_ context.Context, filter, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
				require.Equal(t, bson.M{"_id": id}, filter)
				require.Equal(t, bson.M{"$set": bson.M{
					"status":         "approved",
					"caregiverId":    "cid",
					"caregiverName":  "Bob",
					"caregiverEmail": "bob@x.com",
					"processedAt":    "2026-08-28T11:00:00Z",
					"updatedAt":      "2026-08-28T11:00:00Z",
				}}, update)
				return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
			},
		}
		matched, err := ApplyDecision(context.Background(), col, id, decision)
		require.NoError(t, err)
		require.True(t, matched)
	})

	t.Run("no match", func(t *testing.T) {
		col := &database.FakeCollection{
			UpdateOneFn: func(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
				return &mongo.UpdateResult{}, nil
			},
		}
		matched, err := ApplyDecision(context.Background(), col, id, decision)
		require.NoError(t, err)
		require.False(t, matched)
	})

	t.Run("update error", func(t *testing.T) {
		col := &database.FakeCollection{
			UpdateOneFn: func(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ApplyDecision(context.Background(), col, id, decision)
		require.Error(t, err)
	})
}

package store

import (
	"context"
	"errors"
	"fmt"

	"eldercare-api/internal/database"
	"eldercare-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

func CreateUser(ctx context.Context, col database.Collection, u *model.User) (primitive.ObjectID, error) {
	res, err := col.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("CreateUser: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("CreateUser: insert not acknowledged")
	}
	return id, nil
}

func GetUserByEmail(ctx context.Context, col database.Collection, email string) (*model.User, error) {
	u := &model.User{}
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

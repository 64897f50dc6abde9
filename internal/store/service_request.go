package store

import (
	"context"
	"fmt"

	"eldercare-api/internal/database"
	"eldercare-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateServiceRequest(ctx context.Context, col database.Collection, r *model.ServiceRequest) (primitive.ObjectID, error) {
	res, err := col.InsertOne(ctx, r)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("CreateServiceRequest: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("CreateServiceRequest: insert not acknowledged")
	}
	return id, nil
}

// ListPendingServiceRequests returns every pending request, most recently
// created first.
func ListPendingServiceRequests(ctx context.Context, col database.Collection) ([]model.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := col.Find(ctx, bson.M{"status": model.StatusPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("ListPendingServiceRequests: %w", err)
	}
	var requests []model.ServiceRequest
	if err := cur.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("ListPendingServiceRequests: %w", err)
	}
	return requests, nil
}

// ApplyDecision writes the decision onto the request with the given id,
// regardless of its current status. It reports whether a document matched.
func ApplyDecision(ctx context.Context, col database.Collection, id primitive.ObjectID, d model.Decision) (bool, error) {
	update := bson.M{"$set": bson.M{
		"status":         d.Status,
		"caregiverId":    d.CaregiverID,
		"caregiverName":  d.CaregiverName,
		"caregiverEmail": d.CaregiverEmail,
		"processedAt":    d.ProcessedAt,
		"updatedAt":      d.UpdatedAt,
	}}
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("ApplyDecision: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// File: internal/model/service_request.go
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type ServiceRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"userId" json:"userId"`
	UserName       string             `bson:"userName" json:"userName"`
	UserEmail      string             `bson:"userEmail" json:"userEmail"`
	ServiceType    string             `bson:"serviceType" json:"serviceType"`
	Requirements   string             `bson:"requirements" json:"requirements"`
	Cost           float64            `bson:"cost" json:"cost"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      string             `bson:"createdAt" json:"createdAt"`
	UpdatedAt      string             `bson:"updatedAt" json:"updatedAt"`
	CaregiverID    string             `bson:"caregiverId,omitempty" json:"caregiverId,omitempty"`
	CaregiverName  string             `bson:"caregiverName,omitempty" json:"caregiverName,omitempty"`
	CaregiverEmail string             `bson:"caregiverEmail,omitempty" json:"caregiverEmail,omitempty"`
	ProcessedAt    string             `bson:"processedAt,omitempty" json:"processedAt,omitempty"`
}

// Decision bundles the fields written when a request is approved or rejected.
type Decision struct {
	Status         string
	CaregiverID    string
	CaregiverName  string
	CaregiverEmail string
	ProcessedAt    string
	UpdatedAt      string
}

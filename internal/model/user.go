// File: internal/model/user.go
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	DOB      string             `bson:"dob" json:"dob"`
	Role     string             `bson:"role" json:"role"`
}

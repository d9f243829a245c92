package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Court statuses. A member submission starts out pending until an
// administrator approves or rejects it.
const (
	CourtPending  = "pending"
	CourtApproved = "approved"
	CourtRejected = "rejected"
)

// Court is a member-submitted court booking stored in the `courts`
// collection. Only Status is mutable after creation.
type Court struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail string             `bson:"userEmail" json:"userEmail" validate:"required,email"`
	UserName  string             `bson:"userName,omitempty" json:"userName,omitempty"`
	Type      string             `bson:"type" json:"type" validate:"required"`
	Price     float64            `bson:"price" json:"price" validate:"gte=0"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
	Slots     []string           `bson:"slots" json:"slots" validate:"dive,required"`
	Status    string             `bson:"status" json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// CourtStatusUpdate is the only accepted body for PUT /all-court/:id.
type CourtStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

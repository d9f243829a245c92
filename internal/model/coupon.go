package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Coupon is a discount code created by administrators. Only creation is
// exposed over HTTP.
type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code        string             `bson:"code" json:"code" validate:"required"`
	Discount    float64            `bson:"discount" json:"discount" validate:"gt=0,lte=100"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ExpiresAt   string             `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}

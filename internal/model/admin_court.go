package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminCourt is an administrator-curated court in the `admin-courts`
// collection. It shares most of Court's shape but is never linked to it.
type AdminCourt struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type  string             `bson:"type" json:"type" validate:"required"`
	Price float64            `bson:"price" json:"price" validate:"gte=0"`
	Image string             `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
	Slots []string           `bson:"slots" json:"slots" validate:"dive,required"`
}

// AdminCourtUpdate carries the mutable AdminCourt fields. Nil pointers are
// left untouched by the update.
type AdminCourtUpdate struct {
	Type  *string   `json:"type" validate:"omitempty,min=1"`
	Price *float64  `json:"price" validate:"omitempty,gte=0"`
	Image *string   `json:"image" validate:"omitempty,url"`
	Slots *[]string `json:"slots" validate:"omitempty,dive,required"`
}

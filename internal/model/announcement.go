package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Announcement is a club notice managed by administrators.
type Announcement struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title string             `bson:"title" json:"title" validate:"required"`
	Des   string             `bson:"des" json:"des"`
	Date  string             `bson:"date" json:"date" validate:"required"`
}

// AnnouncementUpdate carries the mutable Announcement fields.
type AnnouncementUpdate struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	Des   *string `json:"des"`
	Date  *string `json:"date" validate:"omitempty,min=1"`
}

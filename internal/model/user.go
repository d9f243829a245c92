package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the role required by the admin-gated routes.
const RoleAdmin = "admin"

// User mirrors a document in the `users` collection. Password holds a
// bcrypt hash and is never serialized to clients.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

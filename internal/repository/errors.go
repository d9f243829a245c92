// Package repository holds the document store access for every club
// collection. Handlers depend on these repositories through small
// interfaces so that tests can substitute in-memory stores.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup by id or email matches nothing.
// Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned by ParseID for strings that are not 24-digit
// hex object ids. Handlers translate it into HTTP 400.
var ErrInvalidID = errors.New("invalid id")

// ParseID converts a path parameter into the store's native identifier.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// notFound maps the driver's no-documents error onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

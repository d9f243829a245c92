package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/sports-club/internal/model"
)

// CourtRepo encapsulates queries on the member-submitted `courts` collection.
type CourtRepo struct {
	coll *mongo.Collection
}

// NewCourtRepo constructs a CourtRepo over the given collection.
func NewCourtRepo(coll *mongo.Collection) *CourtRepo {
	return &CourtRepo{coll: coll}
}

// List returns every court in store order.
func (r *CourtRepo) List(ctx context.Context) ([]model.Court, error) {
	return r.find(ctx, bson.D{})
}

// ListByEmail returns the courts submitted by the given member.
func (r *CourtRepo) ListByEmail(ctx context.Context, email string) ([]model.Court, error) {
	return r.find(ctx, bson.D{{Key: "userEmail", Value: email}})
}

func (r *CourtRepo) find(ctx context.Context, filter bson.D) ([]model.Court, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []model.Court{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a court by id or returns ErrNotFound.
func (r *CourtRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Court, error) {
	var c model.Court
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// Create inserts the court and fills in its assigned id.
func (r *CourtRepo) Create(ctx context.Context, c *model.Court) error {
	c.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateStatus sets only the status field, leaving the rest of the document
// untouched.
func (r *CourtRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (model.UpdateAck, error) {
	return updateOne(ctx, r.coll, id, bson.D{{Key: "status", Value: status}})
}

// Delete removes the court. A missing document is not an error.
func (r *CourtRepo) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error) {
	return deleteOne(ctx, r.coll, id)
}

// updateOne applies a $set of the given fields to the document with id.
func updateOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.D) (model.UpdateAck, error) {
	if len(set) == 0 {
		// Nothing to change: still report whether the document exists.
		n, err := coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
		if err != nil {
			return model.UpdateAck{}, err
		}
		return model.UpdateAck{Acknowledged: true, MatchedCount: n}, nil
	}
	res, err := coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return model.UpdateAck{}, err
	}
	return model.UpdateAck{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (model.DeleteAck, error) {
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return model.DeleteAck{}, err
	}
	return model.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/sports-club/internal/model"
)

// AdminCourtRepo encapsulates queries on the `admin-courts` collection.
type AdminCourtRepo struct {
	coll *mongo.Collection
}

func NewAdminCourtRepo(coll *mongo.Collection) *AdminCourtRepo {
	return &AdminCourtRepo{coll: coll}
}

func (r *AdminCourtRepo) List(ctx context.Context) ([]model.AdminCourt, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	out := []model.AdminCourt{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AdminCourtRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.AdminCourt, error) {
	var c model.AdminCourt
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *AdminCourtRepo) Create(ctx context.Context, c *model.AdminCourt) error {
	c.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update sets whichever of type, price, image and slots are present.
func (r *AdminCourtRepo) Update(ctx context.Context, id primitive.ObjectID, u model.AdminCourtUpdate) (model.UpdateAck, error) {
	set := bson.D{}
	if u.Type != nil {
		set = append(set, bson.E{Key: "type", Value: *u.Type})
	}
	if u.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *u.Price})
	}
	if u.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *u.Image})
	}
	if u.Slots != nil {
		set = append(set, bson.E{Key: "slots", Value: *u.Slots})
	}
	return updateOne(ctx, r.coll, id, set)
}

func (r *AdminCourtRepo) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error) {
	return deleteOne(ctx, r.coll, id)
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/sports-club/internal/model"
)

// AnnouncementRepo encapsulates queries on the `announcements` collection.
type AnnouncementRepo struct {
	coll *mongo.Collection
}

func NewAnnouncementRepo(coll *mongo.Collection) *AnnouncementRepo {
	return &AnnouncementRepo{coll: coll}
}

func (r *AnnouncementRepo) List(ctx context.Context) ([]model.Announcement, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	out := []model.Announcement{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AnnouncementRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Announcement, error) {
	var a model.Announcement
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&a); err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *AnnouncementRepo) Create(ctx context.Context, a *model.Announcement) error {
	a.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update sets whichever of title, des and date are present.
func (r *AnnouncementRepo) Update(ctx context.Context, id primitive.ObjectID, u model.AnnouncementUpdate) (model.UpdateAck, error) {
	set := bson.D{}
	if u.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *u.Title})
	}
	if u.Des != nil {
		set = append(set, bson.E{Key: "des", Value: *u.Des})
	}
	if u.Date != nil {
		set = append(set, bson.E{Key: "date", Value: *u.Date})
	}
	return updateOne(ctx, r.coll, id, set)
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error) {
	return deleteOne(ctx, r.coll, id)
}

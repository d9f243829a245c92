package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/sports-club/internal/model"
)

// CouponRepo only inserts; coupons have no read, update or delete surface.
type CouponRepo struct {
	coll *mongo.Collection
}

func NewCouponRepo(coll *mongo.Collection) *CouponRepo {
	return &CouponRepo{coll: coll}
}

func (r *CouponRepo) Create(ctx context.Context, c *model.Coupon) error {
	c.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

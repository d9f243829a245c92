package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/sports-club/internal/model"
	"github.com/iliyamo/sports-club/internal/utils"
)

type UserRepo struct{ coll *mongo.Collection }

func NewUserRepo(coll *mongo.Collection) *UserRepo { return &UserRepo{coll: coll} }

var ErrEmailExists = errors.New("email already exists")

// Create hashes the password and inserts the account. Emails are stored
// lower-cased and must be unique.
func (r *UserRepo) Create(ctx context.Context, email, password, role string, cost int) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := r.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	u := &model.User{Email: email, Password: hash, Role: role}
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// EnsureEmailIndex creates the unique index on email if it is missing.
func (r *UserRepo) EnsureEmailIndex(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetByEmail fetches an account by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// List returns every account. Password hashes are decoded but the json tag
// keeps them out of responses.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	out := []model.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

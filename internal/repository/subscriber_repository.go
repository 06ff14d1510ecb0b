package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"knowhive/model"
)

type SubscriberStore interface {
	// Create reports dup=true when the email already holds a subscription.
	Create(ctx context.Context, s model.Subscriber) (dup bool, err error)
}

type MongoSubscriberRepository struct {
	col *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *MongoSubscriberRepository {
	return &MongoSubscriberRepository{col: db.Collection("subscribers")}
}

func (r *MongoSubscriberRepository) Create(ctx context.Context, s model.Subscriber) (bool, error) {
	_, err := r.col.InsertOne(ctx, s)
	if err == nil {
		return false, nil
	}
	if isDuplicateKey(err) {
		return true, nil
	}
	return false, err
}

// isDuplicateKey detects a unique-index violation (code 11000).
func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}

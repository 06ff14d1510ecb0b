package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"knowhive/model"
)

type CommentStore interface {
	All(ctx context.Context) ([]model.Comment, error)
	ByArticle(ctx context.Context, articleID string) ([]model.Comment, error)
	Create(ctx context.Context, c model.Comment) (bson.ObjectID, error)
}

type MongoCommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{col: db.Collection("comments")}
}

func (r *MongoCommentRepository) All(ctx context.Context) ([]model.Comment, error) {
	return r.find(ctx, bson.M{})
}

// ByArticle matches the stored reference string as-is; it is not validated
// against the article id format, so comments can outlive their article.
func (r *MongoCommentRepository) ByArticle(ctx context.Context, articleID string) ([]model.Comment, error) {
	return r.find(ctx, bson.M{"article_id": articleID})
}

// Create stores the comment exactly as submitted, no normalization.
func (r *MongoCommentRepository) Create(ctx context.Context, c model.Comment) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func (r *MongoCommentRepository) find(ctx context.Context, filter bson.M) ([]model.Comment, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.Comment
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

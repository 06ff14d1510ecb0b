package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"knowhive/dto"
	"knowhive/model"
)

// ArticleStore is the surface handlers depend on; the mongo implementation
// below is the only production one.
type ArticleStore interface {
	All(ctx context.Context) ([]model.Article, error)
	ByEmail(ctx context.Context, email string) ([]model.Article, error)
	ByID(ctx context.Context, id bson.ObjectID) (*model.Article, error)
	Recent(ctx context.Context, limit int64) ([]model.Article, error)
	ByCategory(ctx context.Context, category string) ([]model.Article, error)
	Create(ctx context.Context, a model.Article) (bson.ObjectID, error)
	Update(ctx context.Context, id bson.ObjectID, patch bson.M) (int64, error)
	IncrementLikes(ctx context.Context, id bson.ObjectID) (int64, error)
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}

type MongoArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *MongoArticleRepository {
	return &MongoArticleRepository{col: db.Collection("articles")}
}

func (r *MongoArticleRepository) All(ctx context.Context) ([]model.Article, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *MongoArticleRepository) ByEmail(ctx context.Context, email string) ([]model.Article, error) {
	return r.find(ctx, bson.M{"email": email}, nil)
}

// ByID returns (nil, nil) when the id is well-formed but no document exists.
func (r *MongoArticleRepository) ByID(ctx context.Context, id bson.ObjectID) (*model.Article, error) {
	var a model.Article
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *MongoArticleRepository) Recent(ctx context.Context, limit int64) ([]model.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoArticleRepository) ByCategory(ctx context.Context, category string) ([]model.Article, error) {
	return r.find(ctx, bson.M{"category": category}, nil)
}

func (r *MongoArticleRepository) Create(ctx context.Context, a model.Article) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func (r *MongoArticleRepository) Update(ctx context.Context, id bson.ObjectID, patch bson.M) (int64, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// IncrementLikes is a single server-side $inc; concurrent likes never
// read-modify-write and therefore never lose updates.
func (r *MongoArticleRepository) IncrementLikes(ctx context.Context, id bson.ObjectID) (int64, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MongoArticleRepository) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoArticleRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.Article, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.Article
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// BuildArticlePatch turns a partial update request into a $set document.
// Absent fields stay untouched; every update stamps updated_at.
func BuildArticlePatch(req dto.UpdateArticleReq, now time.Time) bson.M {
	patch := bson.M{"updated_at": now}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Content != nil {
		patch["content"] = *req.Content
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.Tags != nil {
		patch["tags"] = *req.Tags
	}
	if req.Thumbnail != nil {
		patch["thumbnail"] = *req.Thumbnail
	}
	return patch
}

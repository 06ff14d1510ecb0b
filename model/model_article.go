package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Article struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	AuthorID    string        `json:"authorId"    bson:"author_id"`
	Username    string        `json:"username"    bson:"username"`
	AuthorImage string        `json:"authorImage" bson:"author_image"`
	Email       string        `json:"email"       bson:"email"`
	Title       string        `json:"title"       bson:"title"`
	Content     string        `json:"content"     bson:"content"`
	Category    string        `json:"category"    bson:"category"`
	Tags        []string      `json:"tags"        bson:"tags,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	CreatedAt   *time.Time    `json:"createdAt"   bson:"created_at,omitempty"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
	Likes       int           `json:"likes"       bson:"likes"`
}

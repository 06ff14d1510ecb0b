package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ArticleID is stored as an opaque string, not a reference the store enforces.
type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	ArticleID string        `json:"articleId" bson:"article_id"`
	Username  string        `json:"username"  bson:"username"`
	Email     string        `json:"email"     bson:"email"`
	UserImage string        `json:"userImage,omitempty" bson:"user_image,omitempty"`
	Text      string        `json:"text"      bson:"text"`
}

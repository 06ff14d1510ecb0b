package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Name         string        `json:"name"      bson:"name"`
	Email        string        `json:"email"     bson:"email"`
	PasswordHash string        `json:"-"         bson:"password_hash"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
}

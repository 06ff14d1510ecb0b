package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Subscriber struct {
	ID               bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	Email            string        `json:"email"        bson:"email"`
	Name             string        `json:"name,omitempty" bson:"name,omitempty"`
	UnsubscribeToken string        `json:"-"            bson:"unsubscribe_token"`
	SubscribedAt     time.Time     `json:"subscribedAt" bson:"subscribed_at"`
}

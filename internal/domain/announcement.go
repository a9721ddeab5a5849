package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Announcement struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title" validate:"required,max=200"`
	Description string        `json:"description" bson:"description" validate:"required"`
	Date        string        `json:"date,omitempty" bson:"date,omitempty"`
}

package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Coupon struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Code        string        `json:"code" bson:"code" validate:"required,min=2,max=40"`
	Discount    float64       `json:"discount" bson:"discount" validate:"gte=0,lte=100"`
	Description string        `json:"description" bson:"description" validate:"max=500"`
}

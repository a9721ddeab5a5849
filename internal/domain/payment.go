package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment records a completed rent payment. Date is stored as the client
// formatted it (YYYY-MM-DD...), and month filters match on that string.
type Payment struct {
	ID            bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string        `json:"email" bson:"email" validate:"required,email"`
	Name          string        `json:"name,omitempty" bson:"name,omitempty"`
	Price         float64       `json:"price" bson:"price" validate:"gte=0"`
	TransactionID string        `json:"transactionId" bson:"transactionId" validate:"required"`
	Month         string        `json:"month,omitempty" bson:"month,omitempty"`
	Date          string        `json:"date" bson:"date" validate:"required"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Apartment struct {
	ID             bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ApartmentImage string        `json:"apartmentImage" bson:"apartmentImage"`
	FloorNo        int           `json:"floorNo" bson:"floorNo"`
	BlockName      string        `json:"blockName" bson:"blockName"`
	ApartmentNo    string        `json:"apartmentNo" bson:"apartmentNo"`
	Rent           float64       `json:"rent" bson:"rent"`
}

// Page is a resolved skip/limit window over a listing.
type Page struct {
	Skip  int64
	Limit int64
}

// Empty reports whether the window selects nothing.
func (p Page) Empty() bool {
	return p.Limit <= 0
}

type CountResponse struct {
	Count int64 `json:"count"`
}

package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type AgreementStatus string

const (
	AgreementStatusPending AgreementStatus = "pending"
	AgreementStatusChecked AgreementStatus = "checked"
)

// Agreement is a lease request from a client for one apartment. At most one
// agreement may exist per (ClientEmail, ApartmentID) pair.
type Agreement struct {
	ID          bson.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	UserName    string          `json:"userName" bson:"userName" validate:"max=120"`
	ClientEmail string          `json:"clientEmail" bson:"clientEmail" validate:"required,email"`
	ApartmentID string          `json:"apartmentId" bson:"apartmentId" validate:"required"`
	FloorNo     int             `json:"floorNo" bson:"floorNo" validate:"gte=0"`
	BlockName   string          `json:"blockName" bson:"blockName"`
	ApartmentNo string          `json:"apartmentNo" bson:"apartmentNo"`
	Rent        float64         `json:"rent" bson:"rent" validate:"gte=0"`
	Status      AgreementStatus `json:"status" bson:"status" validate:"omitempty,oneof=pending checked"`
	Date        string          `json:"date,omitempty" bson:"date,omitempty"`
}

// AgreementUpdate carries the fields of an upsert-by-id.
type AgreementUpdate struct {
	Status *AgreementStatus `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending checked"`
	Rent   *float64         `json:"rent,omitempty" bson:"rent,omitempty" validate:"omitempty,gte=0"`
	Date   *string          `json:"date,omitempty" bson:"date,omitempty"`
}

func (u AgreementUpdate) IsEmpty() bool {
	return u.Status == nil && u.Rent == nil && u.Date == nil
}

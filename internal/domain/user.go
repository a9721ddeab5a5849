package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleMember Role = "Member"
	RoleAdmin  Role = "Admin"
)

// User is a resident or staff account keyed by email.
type User struct {
	ID    bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string        `json:"name" bson:"name"`
	Email string        `json:"email" bson:"email"`
	Photo string        `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  Role          `json:"role" bson:"role"`
}

// UserUpdate carries the fields of an upsert-by-email. Nil fields are left
// untouched.
type UserUpdate struct {
	Name  *string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Photo *string `json:"photo,omitempty" bson:"photo,omitempty" validate:"omitempty,max=2048"`
	Role  *Role   `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=user Member Admin"`
}

func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Photo == nil && u.Role == nil
}

// internal/domain/models/profile.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a teacher profile. Optional fields are pointers so that
// partial updates can distinguish "not provided" from "set to empty".
type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	Bio        *string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Department *string            `bson:"department,omitempty" json:"department,omitempty"`
	AvatarURL  *string            `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}

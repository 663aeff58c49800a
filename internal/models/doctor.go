package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a collaborated doctor curated by the operator. Clinics found on
// the live map are never stored as doctors.
type Doctor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Specialty       string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Email           string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ExperienceYears int                `bson:"experienceYears,omitempty" json:"experienceYears,omitempty"`
	Rating          float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Bio             string             `bson:"bio,omitempty" json:"bio,omitempty"`
}

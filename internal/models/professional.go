package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Availability string

const (
	Available   Availability = "AVAILABLE"
	Unavailable Availability = "UNAVAILABLE"
)

// Professional is a one-to-one extension of a user with role PROFESSIONAL.
// UserID carries a uniqueness constraint: at most one profile per user.
type Professional struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Profession     string             `bson:"profession" json:"profession"`
	Experience     int                `bson:"experience" json:"experience"`
	Qualifications []string           `bson:"qualifications" json:"qualifications"`
	Services       []string           `bson:"services,omitempty" json:"services,omitempty"`
	Availability   Availability       `bson:"availability" json:"availability"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EnrichedProfessional is a profile augmented with its owner's summary fetched
// from the identity service. User stays nil when the lookup fails; the profile
// itself is still served.
type EnrichedProfessional struct {
	Professional
	User *UserSummary `json:"user,omitempty"`
}

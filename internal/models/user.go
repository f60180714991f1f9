package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/proconnect-api/internal/auth"
)

// DefaultProfilePicture is assigned at registration when none is provided.
const DefaultProfilePicture = "https://example.com/default-profile.png"

// User is the identity record. The password hash never leaves the service;
// reset-token fields are single-use state for the password-reset flow.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name,omitempty" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	Bio              string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture   string             `bson:"profilePicture" json:"profilePicture"`
	Role             auth.Role          `bson:"role" json:"role"`
	ResetToken       *string            `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiry *time.Time         `bson:"resetTokenExpiry,omitempty" json:"-"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the outward shape of a user: what registration returns, what
// GET /profile echoes, and what the directory service embeds when enriching a
// professional profile.
type UserSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Role           auth.Role `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID.Hex(),
		Name:           u.Name,
		Email:          u.Email,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		Role:           u.Role,
	}
}

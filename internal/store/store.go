package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/proconnect-api/internal/models"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// ProfileUpdate carries the fields a user may change on their own record.
// Anything outside this whitelist is not reachable through profile updates.
type ProfileUpdate struct {
	Name           *string
	Bio            *string
	ProfilePicture *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Bio == nil && u.ProfilePicture == nil
}

// UserStore persists identity records. Implementations must enforce email
// uniqueness at write time and make ConsumeResetToken a single atomic
// document update.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error)
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiry time.Time) error
	ConsumeResetToken(ctx context.Context, token string, now time.Time, newHash string) error
	List(ctx context.Context) ([]models.User, error)
}

// ProfessionalStore persists professional profiles, at most one per user.
type ProfessionalStore interface {
	Create(ctx context.Context, profile *models.Professional) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Professional, error)
	FindAll(ctx context.Context) ([]models.Professional, error)
}

package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/proconnect-api/internal/apperr"
	"github.com/harentsoaR/proconnect-api/internal/auth"
	"github.com/harentsoaR/proconnect-api/internal/client"
	"github.com/harentsoaR/proconnect-api/internal/mail"
	"github.com/harentsoaR/proconnect-api/internal/models"
	"github.com/harentsoaR/proconnect-api/internal/store"
)

// resetTokenTTL bounds how long a password-reset token stays valid.
const resetTokenTTL = time.Hour

// DirectoryCreator is the slice of the directory service registration needs.
type DirectoryCreator interface {
	CreateProfile(ctx context.Context, req client.CreateProfileRequest) error
}

// Service owns user records and the authentication operations over them.
type Service struct {
	users      store.UserStore
	codec      *auth.Codec
	directory  DirectoryCreator
	mailer     mail.Mailer
	log        *zap.Logger
	sessionTTL time.Duration
}

func NewService(users store.UserStore, codec *auth.Codec, directory DirectoryCreator, mailer mail.Mailer, sessionTTL time.Duration, log *zap.Logger) *Service {
	if sessionTTL <= 0 {
		sessionTTL = auth.DefaultSessionTTL
	}
	return &Service{
		users:      users,
		codec:      codec,
		directory:  directory,
		mailer:     mailer,
		log:        log,
		sessionTTL: sessionTTL,
	}
}

// RegisterInput is the service-level registration payload. Professional
// fields are only consulted when Role is PROFESSIONAL.
type RegisterInput struct {
	Email          string
	Password       string
	Name           string
	Bio            string
	Role           auth.Role
	Profession     string
	Experience     *int
	Qualifications []string
	Services       []string
}

// NormalizeEmail folds an address the way the store indexes it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user. For a PROFESSIONAL registration the directory
// profile is created first over HTTP; only on its success is the local record
// persisted, so a failed upstream call leaves no partial state behind.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := NormalizeEmail(in.Email)

	role := in.Role
	if role == "" {
		role = auth.RoleUser
	}
	if !role.Valid() {
		return nil, apperr.Validation("Invalid role")
	}

	if role == auth.RoleProfessional {
		if strings.TrimSpace(in.Profession) == "" {
			return nil, apperr.Validation("The profession field is required for professional registration.")
		}
		if in.Experience == nil || *in.Experience < 0 {
			return nil, apperr.Validation("The experience field is required and must not be negative.")
		}
		if len(in.Qualifications) == 0 {
			return nil, apperr.Validation("The qualifications field is required for professional registration.")
		}
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:             primitive.NewObjectID(),
		Name:           in.Name,
		Email:          email,
		Password:       hashed,
		Bio:            in.Bio,
		ProfilePicture: models.DefaultProfilePicture,
		Role:           role,
	}

	if role == auth.RoleProfessional {
		req := client.CreateProfileRequest{
			UserID:         user.ID.Hex(),
			Profession:     in.Profession,
			Experience:     *in.Experience,
			Qualifications: in.Qualifications,
			Services:       in.Services,
		}
		if err := s.directory.CreateProfile(ctx, req); err != nil {
			s.log.Warn("professional profile creation failed, aborting registration",
				zap.String("userId", user.ID.Hex()), zap.Error(err))
			return nil, apperr.Upstream("Could not create professional profile")
		}
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password fail identically so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, apperr.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("looking up email: %w", err)
	}
	if !auth.CheckPasswordHash(password, user.Password) {
		return "", nil, apperr.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID.Hex(), user.Role, user.Email, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	return token, user, nil
}

func (s *Service) GetProfile(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd store.ProfileUpdate) (*models.User, error) {
	if upd.Empty() {
		return nil, apperr.Validation("No update fields provided")
	}
	user, err := s.users.UpdateProfile(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset stores a fresh single-use token on the user record and
// dispatches it by mail. An unknown email is logged but reported to the
// caller exactly like a known one.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.Debug("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("looking up email: %w", err)
	}

	token, err := newResetToken()
	if err != nil {
		return fmt.Errorf("generating reset token: %w", err)
	}
	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("storing reset token: %w", err)
	}

	// Dispatch asynchronously; mail delivery must not block the response.
	go func(to, token string) {
		if err := s.mailer.SendPasswordReset(to, token); err != nil {
			s.log.Error("failed to send password reset email", zap.Error(err))
		}
	}(user.Email, token)

	return nil
}

// ResetPassword consumes a reset token and installs the new password. The
// token and its expiry are cleared in the same store update, so a second use
// of the same token fails.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.ConsumeResetToken(ctx, token, time.Now(), hashed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.ErrResetToken
		}
		return fmt.Errorf("consuming reset token: %w", err)
	}
	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// newResetToken returns 256 bits of entropy, hex encoded.
func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

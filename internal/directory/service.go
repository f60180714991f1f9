package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harentsoaR/proconnect-api/internal/apperr"
	"github.com/harentsoaR/proconnect-api/internal/models"
	"github.com/harentsoaR/proconnect-api/internal/store"
)

// UserFetcher is the slice of the identity service enrichment needs.
type UserFetcher interface {
	GetUser(ctx context.Context, userID string) (*models.UserSummary, error)
}

// Service owns professional profiles and their enrichment with owner
// summaries fetched from the identity service.
type Service struct {
	profiles    store.ProfessionalStore
	identity    UserFetcher
	log         *zap.Logger
	enrichLimit int
}

func NewService(profiles store.ProfessionalStore, identity UserFetcher, enrichLimit int, log *zap.Logger) *Service {
	if enrichLimit < 1 {
		enrichLimit = 1
	}
	return &Service{
		profiles:    profiles,
		identity:    identity,
		log:         log,
		enrichLimit: enrichLimit,
	}
}

// CreateInput is the service-to-service profile creation payload.
type CreateInput struct {
	UserID         string
	Profession     string
	Experience     *int
	Qualifications []string
	Services       []string
}

// Create persists a new professional profile, enforcing one profile per user.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Professional, error) {
	userID, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		return nil, apperr.Validation("The userId field must be a valid id.")
	}
	if strings.TrimSpace(in.Profession) == "" {
		return nil, apperr.Validation("The profession field is required.")
	}
	if in.Experience == nil {
		return nil, apperr.Validation("The experience field is required.")
	}
	if *in.Experience < 0 {
		return nil, apperr.Validation("The experience field must not be negative.")
	}
	if len(in.Qualifications) == 0 {
		return nil, apperr.Validation("The qualifications field is required.")
	}

	if _, err := s.profiles.FindByUserID(ctx, userID); err == nil {
		return nil, apperr.ErrProfileExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up profile: %w", err)
	}

	profile := &models.Professional{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		Profession:     in.Profession,
		Experience:     *in.Experience,
		Qualifications: in.Qualifications,
		Services:       in.Services,
		Availability:   models.Available,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.ErrProfileExists
		}
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return profile, nil
}

// GetMine returns the acting user's profile, enriched with their identity
// summary when the lookup succeeds. An enrichment failure degrades to the
// bare profile.
func (s *Service) GetMine(ctx context.Context, userID string) (*models.EnrichedProfessional, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Validation("Invalid user id in token")
	}
	profile, err := s.profiles.FindByUserID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrProfileNotFound
		}
		return nil, fmt.Errorf("looking up profile: %w", err)
	}

	enriched := &models.EnrichedProfessional{Professional: *profile}
	if user, err := s.identity.GetUser(ctx, userID); err != nil {
		s.log.Warn("failed to fetch user info for profile",
			zap.String("userId", userID), zap.Error(err))
	} else {
		enriched.User = user
	}
	return enriched, nil
}

// ListAll returns every profile, each enriched with its owner's summary. The
// lookups fan out concurrently under a bounded limit; a failed or slow lookup
// degrades only its own item.
func (s *Service) ListAll(ctx context.Context) ([]models.EnrichedProfessional, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	enriched := make([]models.EnrichedProfessional, len(profiles))
	var g errgroup.Group
	g.SetLimit(s.enrichLimit)
	for i := range profiles {
		i := i
		enriched[i] = models.EnrichedProfessional{Professional: profiles[i]}
		g.Go(func() error {
			userID := profiles[i].UserID.Hex()
			user, err := s.identity.GetUser(ctx, userID)
			if err != nil {
				s.log.Warn("failed to fetch user info for profile",
					zap.String("userId", userID), zap.Error(err))
				return nil
			}
			enriched[i].User = user
			return nil
		})
	}
	g.Wait()

	return enriched, nil
}

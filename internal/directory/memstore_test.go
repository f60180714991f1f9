package directory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/proconnect-api/internal/models"
	"github.com/harentsoaR/proconnect-api/internal/store"
)

// memProfessionalStore is an in-memory ProfessionalStore for tests.
type memProfessionalStore struct {
	mu       sync.Mutex
	profiles []models.Professional
}

func newMemProfessionalStore() *memProfessionalStore {
	return &memProfessionalStore{}
}

func (s *memProfessionalStore) Create(_ context.Context, profile *models.Professional) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.UserID == profile.UserID {
			return store.ErrDuplicate
		}
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	s.profiles = append(s.profiles, *profile)
	return nil
}

func (s *memProfessionalStore) FindByUserID(_ context.Context, userID primitive.ObjectID) (*models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.UserID == userID {
			clone := p
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memProfessionalStore) FindAll(_ context.Context) ([]models.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Professional, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}

// fetcherFunc adapts a function to UserFetcher.
type fetcherFunc func(ctx context.Context, userID string) (*models.UserSummary, error)

func (f fetcherFunc) GetUser(ctx context.Context, userID string) (*models.UserSummary, error) {
	return f(ctx, userID)
}

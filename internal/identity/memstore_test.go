package identity

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/proconnect-api/internal/client"
	"github.com/harentsoaR/proconnect-api/internal/models"
	"github.com/harentsoaR/proconnect-api/internal/store"
)

// memUserStore is an in-memory UserStore for tests.
type memUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id primitive.ObjectID, upd store.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.ProfilePicture != nil {
		u.ProfilePicture = *upd.ProfilePicture
	}
	u.UpdatedAt = time.Now()
	clone := *u
	return &clone, nil
}

func (s *memUserStore) SetResetToken(_ context.Context, id primitive.ObjectID, token string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	return nil
}

func (s *memUserStore) ConsumeResetToken(_ context.Context, token string, now time.Time, newHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ResetToken != nil && *u.ResetToken == token &&
			u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now) {
			u.Password = newHash
			u.ResetToken = nil
			u.ResetTokenExpiry = nil
			u.UpdatedAt = time.Now()
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *memUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// directoryFunc adapts a function to DirectoryCreator.
type directoryFunc func(ctx context.Context, req client.CreateProfileRequest) error

func (f directoryFunc) CreateProfile(ctx context.Context, req client.CreateProfileRequest) error {
	return f(ctx, req)
}

// recordingMailer captures dispatched reset tokens.
type recordingMailer struct {
	tokens chan string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{tokens: make(chan string, 8)}
}

func (m *recordingMailer) SendPasswordReset(_, token string) error {
	m.tokens <- token
	return nil
}

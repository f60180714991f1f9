package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/proconnect-api/internal/apperr"
	"github.com/harentsoaR/proconnect-api/internal/auth"
	"github.com/harentsoaR/proconnect-api/internal/models"
)

func intPtr(v int) *int { return &v }

func okFetcher(name string) fetcherFunc {
	return func(_ context.Context, userID string) (*models.UserSummary, error) {
		return &models.UserSummary{ID: userID, Name: name, Role: auth.RoleProfessional}, nil
	}
}

func TestCreateProfile(t *testing.T) {
	profiles := newMemProfessionalStore()
	svc := NewService(profiles, okFetcher("Paula"), 4, zap.NewNop())

	userID := primitive.NewObjectID()
	profile, err := svc.Create(context.Background(), CreateInput{
		UserID:         userID.Hex(),
		Profession:     "Consultant",
		Experience:     intPtr(3),
		Qualifications: []string{"CPA"},
	})
	require.NoError(t, err)

	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, models.Available, profile.Availability, "availability defaults to AVAILABLE")
	assert.False(t, profile.ID.IsZero())
}

func TestCreateProfileValidation(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	cases := []struct {
		name string
		in   CreateInput
	}{
		{"bad user id", CreateInput{UserID: "nope", Profession: "Consultant", Experience: intPtr(1), Qualifications: []string{"CPA"}}},
		{"missing profession", CreateInput{UserID: userID, Experience: intPtr(1), Qualifications: []string{"CPA"}}},
		{"missing experience", CreateInput{UserID: userID, Profession: "Consultant", Qualifications: []string{"CPA"}}},
		{"negative experience", CreateInput{UserID: userID, Profession: "Consultant", Experience: intPtr(-2), Qualifications: []string{"CPA"}}},
		{"missing qualifications", CreateInput{UserID: userID, Profession: "Consultant", Experience: intPtr(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := newMemProfessionalStore()
			svc := NewService(profiles, okFetcher("Paula"), 4, zap.NewNop())

			_, err := svc.Create(context.Background(), tc.in)
			appErr, ok := apperr.From(err)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION", appErr.Code)

			stored, _ := profiles.FindAll(context.Background())
			assert.Empty(t, stored)
		})
	}
}

func TestCreateProfileDuplicate(t *testing.T) {
	profiles := newMemProfessionalStore()
	svc := NewService(profiles, okFetcher("Paula"), 4, zap.NewNop())

	in := CreateInput{
		UserID:         primitive.NewObjectID().Hex(),
		Profession:     "Consultant",
		Experience:     intPtr(3),
		Qualifications: []string{"CPA"},
	}
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, apperr.ErrProfileExists)
}

func TestGetMine(t *testing.T) {
	profiles := newMemProfessionalStore()
	svc := NewService(profiles, okFetcher("Paula"), 4, zap.NewNop())

	userID := primitive.NewObjectID()
	_, err := svc.Create(context.Background(), CreateInput{
		UserID: userID.Hex(), Profession: "Consultant", Experience: intPtr(3), Qualifications: []string{"CPA"},
	})
	require.NoError(t, err)

	enriched, err := svc.GetMine(context.Background(), userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Consultant", enriched.Profession)
	require.NotNil(t, enriched.User)
	assert.Equal(t, "Paula", enriched.User.Name)
}

func TestGetMineNotFound(t *testing.T) {
	svc := NewService(newMemProfessionalStore(), okFetcher("Paula"), 4, zap.NewNop())

	_, err := svc.GetMine(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperr.ErrProfileNotFound)
}

func TestGetMineEnrichmentFailureDegrades(t *testing.T) {
	profiles := newMemProfessionalStore()
	failing := fetcherFunc(func(context.Context, string) (*models.UserSummary, error) {
		return nil, errors.New("identity unavailable")
	})
	svc := NewService(profiles, failing, 4, zap.NewNop())

	userID := primitive.NewObjectID()
	_, err := svc.Create(context.Background(), CreateInput{
		UserID: userID.Hex(), Profession: "Consultant", Experience: intPtr(3), Qualifications: []string{"CPA"},
	})
	require.NoError(t, err)

	enriched, err := svc.GetMine(context.Background(), userID.Hex())
	require.NoError(t, err, "enrichment failure is non-fatal")
	assert.Equal(t, "Consultant", enriched.Profession)
	assert.Nil(t, enriched.User)
}

func TestListAllBulkhead(t *testing.T) {
	profiles := newMemProfessionalStore()

	ids := make([]primitive.ObjectID, 3)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}
	failingID := ids[1].Hex()

	fetcher := fetcherFunc(func(_ context.Context, userID string) (*models.UserSummary, error) {
		if userID == failingID {
			return nil, errors.New("lookup failed")
		}
		return &models.UserSummary{ID: userID, Name: "User " + userID}, nil
	})
	svc := NewService(profiles, fetcher, 2, zap.NewNop())

	for i, id := range ids {
		_, err := svc.Create(context.Background(), CreateInput{
			UserID: id.Hex(), Profession: "Consultant", Experience: intPtr(i), Qualifications: []string{"CPA"},
		})
		require.NoError(t, err)
	}

	enriched, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, enriched, 3)

	// One failed lookup degrades only its own item.
	assert.NotNil(t, enriched[0].User)
	assert.Nil(t, enriched[1].User)
	assert.NotNil(t, enriched[2].User)

	// Order follows the store.
	for i, id := range ids {
		assert.Equal(t, id, enriched[i].UserID)
	}
}

func TestListAllEmpty(t *testing.T) {
	svc := NewService(newMemProfessionalStore(), okFetcher("Paula"), 4, zap.NewNop())

	enriched, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, enriched)
}

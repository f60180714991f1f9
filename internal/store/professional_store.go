package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/proconnect-api/internal/models"
)

const professionalCollection = "professionals"

// MongoProfessionalStore is the document-store implementation of
// ProfessionalStore.
type MongoProfessionalStore struct {
	coll *mongo.Collection
}

func NewMongoProfessionalStore(db *mongo.Database) *MongoProfessionalStore {
	return &MongoProfessionalStore{coll: db.Collection(professionalCollection)}
}

// EnsureIndexes creates the unique userId index enforcing one profile per
// user.
func (s *MongoProfessionalStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoProfessionalStore) Create(ctx context.Context, profile *models.Professional) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	_, err := s.coll.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *MongoProfessionalStore) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Professional, error) {
	var profile models.Professional
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *MongoProfessionalStore) FindAll(ctx context.Context) ([]models.Professional, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.Professional
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = make([]models.Professional, 0)
	}
	return profiles, nil
}

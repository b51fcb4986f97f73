package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobhive/backend/internal/core/domain"
)

const profilesCollection = "profiles"

// ProfileRepository is the MongoDB-backed store for user profiles,
// keyed by the owning user's email.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

func (r *ProfileRepository) FindByUserEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_email": email}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	if profile.ID == "" {
		profile.ID = primitive.NewObjectID().Hex()
	}

	update := bson.M{
		"$set": bson.M{
			"headline":    profile.Headline,
			"bio":         profile.Bio,
			"location":    profile.Location,
			"skills":      profile.Skills,
			"resume_file": profile.ResumeFile,
		},
		"$setOnInsert": bson.M{
			"_id":        profile.ID,
			"user_email": profile.UserEmail,
		},
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"user_email": profile.UserEmail},
		update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devsocial/social-api/internal/core/domain"
)

const profilesCollection = "profiles"

// ProfileRepository persists profiles. Experience and education mutations
// are guarded atomic updates scoped to the owning user, mirroring the like
// and comment protocol on posts.
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(profilesCollection)}
}

// Upsert replaces the profile's scalar fields, creating the document on
// first write. Embedded experience and education survive subsequent writes
// via $setOnInsert.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user": profile.UserID}
	update := bson.M{
		"$set": bson.M{
			"company":        profile.Company,
			"website":        profile.Website,
			"location":       profile.Location,
			"bio":            profile.Bio,
			"status":         profile.Status,
			"githubusername": profile.GithubUser,
			"skills":         profile.Skills,
			"social":         profile.Social,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"user":       profile.UserID,
			"experience": []domain.Experience{},
			"education":  []domain.Education{},
			"date":       profile.CreatedAt,
		},
	}

	var saved domain.Profile
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, storageErr("upsert profile", err)
	}
	return &saved, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var profile domain.Profile
	if err := r.col.FindOne(ctx, bson.M{"user": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, storageErr("find profile", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storageErr("list profiles", err)
	}
	defer cur.Close(ctx)

	profiles := []*domain.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, storageErr("decode profiles", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"user": userID})
	if err != nil {
		return storageErr("delete profile", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.Profile, error) {
	return r.pushEntry(ctx, userID, "experience", exp)
}

func (r *ProfileRepository) RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	return r.pullEntry(ctx, userID, "experience", entryID)
}

func (r *ProfileRepository) AddEducation(ctx context.Context, userID string, edu domain.Education) (*domain.Profile, error) {
	return r.pushEntry(ctx, userID, "education", edu)
}

func (r *ProfileRepository) RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error) {
	return r.pullEntry(ctx, userID, "education", entryID)
}

// pushEntry inserts the entry at the head of the named embedded sequence.
func (r *ProfileRepository) pushEntry(ctx context.Context, userID, field string, entry any) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user": userID}
	update := bson.M{"$push": bson.M{field: bson.M{"$each": bson.A{entry}, "$position": 0}}}

	var profile domain.Profile
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, storageErr("push "+field, err)
	}
	return &profile, nil
}

// pullEntry removes the entry with the given id from the named embedded
// sequence. The filter requires the id to be present, so a missing entry
// fails with ErrEntryNotFound instead of silently matching nothing.
func (r *ProfileRepository) pullEntry(ctx context.Context, userID, field, entryID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user": userID, field + ".id": entryID}
	update := bson.M{"$pull": bson.M{field: bson.M{"id": entryID}}}

	var profile domain.Profile
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if _, findErr := r.FindByUserID(ctx, userID); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrEntryNotFound
		}
		return nil, storageErr("pull "+field, err)
	}
	return &profile, nil
}

// EnsureIndexes creates the unique owner index backing the 1:1 user-profile
// relationship.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

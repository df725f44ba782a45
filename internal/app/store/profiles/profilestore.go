package profilestore

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dalemusser/coursehub/internal/domain/models"
)

var (
	// ErrNotFound is returned when no profile matches the identifier.
	ErrNotFound = errors.New("profile not found")

	// ErrNoFields is returned when an update carries no fields to change.
	ErrNoFields = errors.New("no update fields provided")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profile")}
}

// Create inserts a new profile and returns it with its assigned identifier.
func (s *Store) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.ID = primitive.NewObjectID()
	p.FullNameCI = text.Fold(p.FullName)

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// GetByID loads a profile by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns up to limit profiles in natural storage order.
func (s *Store) List(ctx context.Context, limit, offset int64) ([]models.Profile, error) {
	opts := options.Find().SetLimit(limit).SetSkip(offset)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []models.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update holds the optional fields of a partial profile update. Nil fields
// are left untouched in the document.
type Update struct {
	FullName   *string
	Email      *string
	Bio        *string
	Department *string
	AvatarURL  *string
}

// UpdateByID applies the non-nil fields of upd with a single $set.
// Returns ErrNoFields when every field is nil, ErrNotFound when nothing
// was modified.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Profile, error) {
	set := bson.M{}
	if upd.FullName != nil {
		set["full_name"] = *upd.FullName
		set["full_name_ci"] = text.Fold(*upd.FullName)
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.AvatarURL != nil {
		set["avatar_url"] = *upd.AvatarURL
	}
	if len(set) == 0 {
		return nil, ErrNoFields
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.ModifiedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// DeleteByID removes a profile. Returns ErrNotFound when nothing was deleted.
func (s *Store) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package coursestore

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dalemusser/coursehub/internal/domain/models"
)

var (
	// ErrNotFound is returned when no course matches the given identifier.
	ErrNotFound = errors.New("course not found")

	// ErrNoFields is returned when an update carries no fields to change.
	ErrNoFields = errors.New("no update fields provided")
)

// placeholderURLBase is the templated placeholder-image endpoint used when a
// course is created without artwork; the course name is URL-encoded into it.
const placeholderURLBase = "https://via.placeholder.com/400x200/3b82f6/FFFFFF?text="

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("course")}
}

// Create inserts a new catalog course. When no image URL is supplied, a
// placeholder URL is synthesized from the course name.
func (s *Store) Create(ctx context.Context, course models.Course) (models.Course, error) {
	course.ID = primitive.NewObjectID()
	course.NameCI = text.Fold(course.Name)
	if course.Category == "" {
		course.Category = "General"
	}
	if course.ImageURL == "" {
		course.ImageURL = placeholderURLBase + url.QueryEscape(course.Name)
	}
	course.CreatedAt = time.Now().UTC()
	course.UpdatedAt = nil

	if _, err := s.c.InsertOne(ctx, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// GetByID loads a course by ObjectID. Returns ErrNotFound when no document
// matches.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// List returns up to limit courses in natural storage order, skipping offset.
func (s *Store) List(ctx context.Context, limit, offset int64) ([]models.Course, error) {
	opts := options.Find().SetLimit(limit).SetSkip(offset)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []models.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Update holds the optional fields of a partial course update. Nil fields
// are left untouched in the document.
type Update struct {
	Name        *string
	Description *string
	ImageURL    *string
	Category    *string
}

// UpdateByID applies the non-nil fields of upd. Returns ErrNoFields when
// every field is nil, ErrNotFound when nothing was modified.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Course, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
		set["name_ci"] = text.Fold(*upd.Name)
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if len(set) == 0 {
		return nil, ErrNoFields
	}
	set["updatedAt"] = time.Now().UTC()

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.ModifiedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// DeleteByID removes a course. Returns ErrNotFound when nothing was deleted.
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

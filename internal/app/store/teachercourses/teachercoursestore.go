package teachercoursestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dalemusser/coursehub/internal/app/system/oid"
	"github.com/dalemusser/coursehub/internal/domain/models"
)

// ErrNotFound is returned when no teacher course matches the identifier.
var ErrNotFound = errors.New("teacher course not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teacher_courses")}
}

// Create inserts a new teacher course. Status defaults to "draft",
// student_count starts at zero, and every module is guaranteed a valid
// identifier (fresh ones are minted only where missing).
func (s *Store) Create(ctx context.Context, course models.TeacherCourse) (models.TeacherCourse, error) {
	course.ID = primitive.NewObjectID()
	course.TitleCI = text.Fold(course.Title)
	if course.Status == "" {
		course.Status = "draft"
	}
	course.StudentCount = 0
	course.Modules = NormalizeModules(course.Modules, false)

	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, course); err != nil {
		return models.TeacherCourse{}, err
	}
	return course, nil
}

// GetByID loads a teacher course by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TeacherCourse, error) {
	var course models.TeacherCourse
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// List returns up to limit teacher courses in natural storage order.
func (s *Store) List(ctx context.Context, limit, offset int64) ([]models.TeacherCourse, error) {
	opts := options.Find().SetLimit(limit).SetSkip(offset)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []models.TeacherCourse{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetModules returns only the modules of a course, in stored order.
func (s *Store) GetModules(ctx context.Context, id primitive.ObjectID) ([]models.Module, error) {
	var doc struct {
		Modules []models.Module `bson:"modules"`
	}
	proj := options.FindOne().SetProjection(bson.M{"modules": 1})
	if err := s.c.FindOne(ctx, bson.M{"_id": id}, proj).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if doc.Modules == nil {
		return []models.Module{}, nil
	}
	return doc.Modules, nil
}

// Update holds the replacement fields for a teacher-course update. The PUT
// surface sends a full payload, so the scalar fields always overwrite.
// ThumbnailPath and Modules only overwrite when set.
type Update struct {
	Title       string
	Description string
	Category    string
	Level       string
	Status      string

	// ThumbnailPath, when non-empty, replaces the stored thumbnail path.
	ThumbnailPath string

	// Modules replaces the stored modules when SetModules is true.
	Modules    []models.Module
	SetModules bool

	// RegenerateModuleIDs reissues every module identifier instead of
	// preserving the ones the payload carries.
	RegenerateModuleIDs bool
}

// UpdateByID applies upd with a single $set. Returns ErrNotFound when the
// update modified nothing.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) (*models.TeacherCourse, error) {
	if upd.Status == "" {
		upd.Status = "draft"
	}
	set := bson.M{
		"title":       upd.Title,
		"title_ci":    text.Fold(upd.Title),
		"description": upd.Description,
		"category":    upd.Category,
		"level":       upd.Level,
		"status":      upd.Status,
		"updated_at":  time.Now().UTC(),
	}
	if upd.ThumbnailPath != "" {
		set["thumbnail_image"] = upd.ThumbnailPath
	}
	if upd.SetModules {
		set["modules"] = NormalizeModules(upd.Modules, upd.RegenerateModuleIDs)
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

// DeleteByID removes a teacher course. Deleting a course does not touch any
// related resource.
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

// NormalizeModules guarantees every module carries a valid identifier while
// preserving payload order. Identifiers the payload already carries are kept
// unless regenerate is true; missing or malformed ones are always reissued.
func NormalizeModules(modules []models.Module, regenerate bool) []models.Module {
	out := make([]models.Module, len(modules))
	for i, m := range modules {
		if regenerate || !oid.IsValid(m.ID) {
			m.ID = oid.New().Hex()
		}
		if m.Lessons == nil {
			m.Lessons = []models.Lesson{}
		}
		out[i] = m
	}
	return out
}

package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/coursehub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCourse creates a catalog course with the given name.
func (f *Fixtures) CreateCourse(ctx context.Context, name string) models.Course {
	f.t.Helper()

	course := models.Course{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Description: "Test course description",
		ImageURL:    "https://example.com/image.png",
		Category:    "General",
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("course").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return course
}

// CreateTeacherCourse creates a teacher course with one module and lesson.
func (f *Fixtures) CreateTeacherCourse(ctx context.Context, title string) models.TeacherCourse {
	f.t.Helper()

	now := time.Now().UTC()
	course := models.TeacherCourse{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test teacher course",
		Category:    "General",
		Level:       "Beginner",
		Status:      "draft",
		Modules: []models.Module{
			{
				ID:          primitive.NewObjectID().Hex(),
				Title:       "Module One",
				Description: "First module",
				Lessons: []models.Lesson{
					{
						Title:    "Lesson One",
						VideoURL: "https://example.com/video.mp4",
						Duration: "5:30",
						Summary:  "Intro lesson",
					},
				},
			},
		},
		CreatedAt:    now,
		UpdatedAt:    now,
		StudentCount: 0,
	}

	if _, err := f.db.Collection("teacher_courses").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test teacher course: %v", err)
	}
	return course
}

// CreateProfile creates a teacher profile.
func (f *Fixtures) CreateProfile(ctx context.Context, fullName, email string) models.Profile {
	f.t.Helper()

	bio := "Test bio"
	profile := models.Profile{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		Bio:        &bio,
	}

	if _, err := f.db.Collection("profile").InsertOne(ctx, profile); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

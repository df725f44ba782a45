// internal/domain/models/teachercourse.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeacherCourse is a teacher-authored course with its full curriculum
// embedded. Modules, lessons, and quiz questions are stored in insertion
// order and never reordered by the server.
type TeacherCourse struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Level       string             `bson:"level" json:"level"`
	Status      string             `bson:"status" json:"status"` // "draft" or "published"

	Modules []Module `bson:"modules" json:"modules"`

	// ThumbnailPath is the static-mount-relative path returned by the
	// thumbnail ingestor, e.g. "/uploads/66b2….png".
	ThumbnailPath string `bson:"thumbnail_image,omitempty" json:"thumbnail_image,omitempty"`

	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
	StudentCount int       `bson:"student_count" json:"student_count"`
}

// Module groups an ordered run of lessons with an optional quiz.
//
// A module's ID is a 24-hex ObjectID string assigned when the module is
// first stored; updates keep existing IDs unless regeneration is requested.
type Module struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Lessons     []Lesson `bson:"lessons" json:"lessons"`
	Quiz        *Quiz    `bson:"quiz,omitempty" json:"quiz,omitempty"`
}

// Lesson is one unit of module content. All fields are plain strings; the
// strict duration/URL constraints are validation-level, not storage-level.
type Lesson struct {
	Title       string `bson:"title" json:"title"`
	VideoURL    string `bson:"video_url" json:"video_url"`
	Duration    string `bson:"duration" json:"duration"` // MM:SS when strict validation is on
	ResourceURL string `bson:"resource_url" json:"resource_url"`
	Summary     string `bson:"summary" json:"summary"`
}

// Quiz is an optional end-of-module assessment.
type Quiz struct {
	Title     string     `bson:"title" json:"title"`
	Questions []Question `bson:"questions" json:"questions"`
}

// Question always carries exactly four options; CorrectAnswer indexes them.
type Question struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correct_answer"`
}

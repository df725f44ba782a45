// internal/app/features/teachercourses/types.go
package teachercourses

import (
	"github.com/dalemusser/coursehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursehub/internal/domain/models"
)

// courseRequest is the JSON body for POST /teacher_courses/ and
// PUT /teacher_courses/{id}. The same full-payload shape serves both;
// ThumbnailImage carries a base64 data URI when the client changes the
// artwork.
type courseRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Level       string          `json:"level"`
	Status      string          `json:"status" validate:"omitempty,oneof=draft published"`
	Modules     []moduleRequest `json:"modules" validate:"dive"`

	ThumbnailImage string `json:"thumbnail_image"`
}

type moduleRequest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Lessons     []lessonRequest `json:"lessons" validate:"dive"`
	Quiz        *quizRequest    `json:"quiz"`
}

// lessonRequest carries the strict lesson constraints: when a duration or
// URL is present it must have the right shape, but all of them may be empty.
type lessonRequest struct {
	Title       string `json:"title" validate:"required"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
	Duration    string `json:"duration" validate:"omitempty,mmss"`
	ResourceURL string `json:"resource_url" validate:"omitempty,url"`
	Summary     string `json:"summary"`
}

type quizRequest struct {
	Title     string            `json:"title" validate:"required"`
	Questions []questionRequest `json:"questions" validate:"dive"`
}

// questionRequest always carries exactly four options; CorrectAnswer must
// index one of them.
type questionRequest struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"len=4"`
	CorrectAnswer int      `json:"correct_answer" validate:"gte=0,lte=3"`
}

// toModules converts the request modules into storage modules, sanitizing
// lesson summaries on the way. Identifier assignment is left to the store.
func toModules(reqs []moduleRequest) []models.Module {
	modules := make([]models.Module, 0, len(reqs))
	for _, mr := range reqs {
		m := models.Module{
			ID:          mr.ID,
			Title:       mr.Title,
			Description: htmlsanitize.Sanitize(mr.Description),
			Lessons:     make([]models.Lesson, 0, len(mr.Lessons)),
		}
		for _, lr := range mr.Lessons {
			m.Lessons = append(m.Lessons, models.Lesson{
				Title:       lr.Title,
				VideoURL:    lr.VideoURL,
				Duration:    lr.Duration,
				ResourceURL: lr.ResourceURL,
				Summary:     htmlsanitize.Sanitize(lr.Summary),
			})
		}
		if mr.Quiz != nil {
			quiz := &models.Quiz{
				Title:     mr.Quiz.Title,
				Questions: make([]models.Question, 0, len(mr.Quiz.Questions)),
			}
			for _, qr := range mr.Quiz.Questions {
				quiz.Questions = append(quiz.Questions, models.Question{
					Question:      qr.Question,
					Options:       qr.Options,
					CorrectAnswer: qr.CorrectAnswer,
				})
			}
			m.Quiz = quiz
		}
		modules = append(modules, m)
	}
	return modules
}

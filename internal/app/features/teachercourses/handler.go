// internal/app/features/teachercourses/handler.go
package teachercourses

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	teachercoursestore "github.com/dalemusser/coursehub/internal/app/store/teachercourses"
	"github.com/dalemusser/coursehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursehub/internal/app/system/httpjson"
	"github.com/dalemusser/coursehub/internal/app/system/inputval"
	"github.com/dalemusser/coursehub/internal/app/system/limits"
	"github.com/dalemusser/coursehub/internal/app/system/oid"
	"github.com/dalemusser/coursehub/internal/app/system/paging"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/app/uploads"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves teacher-authored courses with their embedded curriculum.
type Handler struct {
	Courses  *teachercoursestore.Store
	Ingestor *uploads.Ingestor
	Log      *zap.Logger
}

// NewHandler creates a new teacher course handler.
func NewHandler(courses *teachercoursestore.Store, ingestor *uploads.Ingestor, logger *zap.Logger) *Handler {
	return &Handler{Courses: courses, Ingestor: ingestor, Log: logger}
}

// ingestThumbnail runs the data-URI thumbnail through the ingestor and maps
// its failures to the 400 responses the frontend expects. A written file is
// returned as a static path; an empty dataURI is a no-op.
func (h *Handler) ingestThumbnail(w http.ResponseWriter, dataURI string) (string, bool) {
	if dataURI == "" {
		return "", true
	}
	path, err := h.Ingestor.Ingest(dataURI)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrImageFormat):
			httpjson.Error(w, http.StatusBadRequest, "Invalid image format")
		case errors.Is(err, uploads.ErrImageData):
			httpjson.Error(w, http.StatusBadRequest, "Invalid base64 image")
		default:
			h.Log.Error("thumbnail ingest failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to store thumbnail")
		}
		return "", false
	}
	return path, true
}

// ServeCreate handles POST /teacher_courses/.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req courseRequest
	if err := httpjson.DecodeLimit(w, r, &req, limits.MaxCourseBodySize); err != nil {
		if httpjson.IsBodyTooLarge(err) {
			httpjson.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, inputval.Message(err))
		return
	}

	thumbPath, ok := h.ingestThumbnail(w, req.ThumbnailImage)
	if !ok {
		return
	}

	course := models.TeacherCourse{
		Title:         req.Title,
		Description:   htmlsanitize.Sanitize(req.Description),
		Category:      req.Category,
		Level:         req.Level,
		Status:        req.Status,
		Modules:       toModules(req.Modules),
		ThumbnailPath: thumbPath,
	}
	if course.Category == "" {
		course.Category = "General"
	}
	if course.Level == "" {
		course.Level = "Beginner"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Courses.Create(ctx, course)
	if err != nil {
		h.Log.Error("create teacher course failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create course")
		return
	}

	h.Log.Info("teacher course created",
		zap.String("course_id", created.ID.Hex()),
		zap.String("title", created.Title),
		zap.Int("modules", len(created.Modules)))
	httpjson.Respond(w, http.StatusOK, created)
}

// ServeList handles GET /teacher_courses/.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	win := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Courses.List(ctx, win.Limit, win.Offset)
	if err != nil {
		h.Log.Error("list teacher courses failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list courses")
		return
	}
	httpjson.Respond(w, http.StatusOK, list)
}

// ServeGet handles GET /teacher_courses/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, teachercoursestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Teacher Course not found")
			return
		}
		h.Log.Error("get teacher course failed", zap.Error(err), zap.String("course_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load course")
		return
	}
	httpjson.Respond(w, http.StatusOK, course)
}

// ServeUpdate handles PUT /teacher_courses/{id}. The body is a full course
// payload; modules are only replaced when the payload carries any.
//
// Module identifiers in the payload are preserved when valid. Clients that
// want the old reissue-everything behavior pass ?regenerate_module_ids=true.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	var req courseRequest
	if err := httpjson.DecodeLimit(w, r, &req, limits.MaxCourseBodySize); err != nil {
		if httpjson.IsBodyTooLarge(err) {
			httpjson.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, inputval.Message(err))
		return
	}

	thumbPath, ok := h.ingestThumbnail(w, req.ThumbnailImage)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Courses.UpdateByID(ctx, id, teachercoursestore.Update{
		Title:               req.Title,
		Description:         htmlsanitize.Sanitize(req.Description),
		Category:            req.Category,
		Level:               req.Level,
		Status:              req.Status,
		ThumbnailPath:       thumbPath,
		Modules:             toModules(req.Modules),
		SetModules:          len(req.Modules) > 0,
		RegenerateModuleIDs: r.URL.Query().Get("regenerate_module_ids") == "true",
	})
	if err != nil {
		if errors.Is(err, teachercoursestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Teacher Course not found")
			return
		}
		h.Log.Error("update teacher course failed", zap.Error(err), zap.String("course_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update course")
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

// ServeModules handles GET /teacher_courses/{id}/modules.
func (h *Handler) ServeModules(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	modules, err := h.Courses.GetModules(ctx, id)
	if err != nil {
		if errors.Is(err, teachercoursestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Course not found")
			return
		}
		h.Log.Error("get modules failed", zap.Error(err), zap.String("course_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load modules")
		return
	}
	httpjson.Respond(w, http.StatusOK, modules)
}

// ServeDelete handles DELETE /teacher_courses/{id}. Ingested thumbnails are
// not removed from disk.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Courses.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, teachercoursestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Teacher Course not found")
			return
		}
		h.Log.Error("delete teacher course failed", zap.Error(err), zap.String("course_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete course")
		return
	}

	h.Log.Info("teacher course deleted", zap.String("course_id", id.Hex()))
	httpjson.Message(w, http.StatusOK, "Teacher Course deleted successfully")
}

// internal/app/features/courses/handler.go
package courses

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	coursestore "github.com/dalemusser/coursehub/internal/app/store/courses"
	"github.com/dalemusser/coursehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursehub/internal/app/system/httpjson"
	"github.com/dalemusser/coursehub/internal/app/system/inputval"
	"github.com/dalemusser/coursehub/internal/app/system/oid"
	"github.com/dalemusser/coursehub/internal/app/system/paging"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves the public course catalog.
type Handler struct {
	Courses *coursestore.Store
	Log     *zap.Logger
}

// NewHandler creates a new catalog course handler.
func NewHandler(courses *coursestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Courses: courses, Log: logger}
}

// ServeList handles GET /courses.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	win := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Courses.List(ctx, win.Limit, win.Offset)
	if err != nil {
		h.Log.Error("list courses failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list courses")
		return
	}
	httpjson.Respond(w, http.StatusOK, list)
}

// ServeGet handles GET /courses/{id}.
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
		if errors.Is(err, coursestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Course not found")
			return
		}
		h.Log.Error("get course failed", zap.Error(err), zap.String("course_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load course")
		return
	}
	httpjson.Respond(w, http.StatusOK, course)
}

// ServeCreate handles POST /courses.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, inputval.Message(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Courses.Create(ctx, models.Course{
		Name:        req.Name,
		Description: htmlsanitize.Sanitize(req.Description),
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		h.Log.Error("create course failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create course")
		return
	}

	h.Log.Info("course created",
		zap.String("course_id", created.ID.Hex()),
		zap.String("name", created.Name))
	httpjson.Respond(w, http.StatusOK, created)
}

// ServeUpdate handles PUT /courses/{id}. Only the fields present in the body
// are changed.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	var req updateCourseRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, inputval.Message(err))
		return
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		req.Description = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Courses.UpdateByID(ctx, id, coursestore.Update{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, coursestore.ErrNoFields):
			httpjson.Error(w, http.StatusBadRequest, "No update fields provided")
		case errors.Is(err, coursestore.ErrNotFound):
			httpjson.Error(w, http.StatusNotFound, "Course not found")
		default:
			h.Log.Error("update course failed", zap.Error(err), zap.String("course_id", id.Hex()))
			httpjson.Error(w, http.StatusInternalServerError, "failed to update course")
		}
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

// ServeDelete handles DELETE /courses/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Courses.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, coursestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Course not found")
			return
		}
		h.Log.Error("delete course failed", zap.Error(err), zap.String("course_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete course")
		return
	}

	h.Log.Info("course deleted", zap.String("course_id", id.Hex()))
	httpjson.Message(w, http.StatusOK, "Course deleted successfully")
}

// internal/app/features/profiles/handler.go
package profiles

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	profilestore "github.com/dalemusser/coursehub/internal/app/store/profiles"
	"github.com/dalemusser/coursehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursehub/internal/app/system/httpjson"
	"github.com/dalemusser/coursehub/internal/app/system/inputval"
	"github.com/dalemusser/coursehub/internal/app/system/limits"
	"github.com/dalemusser/coursehub/internal/app/system/normalize"
	"github.com/dalemusser/coursehub/internal/app/system/oid"
	"github.com/dalemusser/coursehub/internal/app/system/paging"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/app/uploads"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves teacher profiles.
type Handler struct {
	Profiles *profilestore.Store
	Ingestor *uploads.Ingestor
	Log      *zap.Logger
}

// NewHandler creates a new profile handler.
func NewHandler(profiles *profilestore.Store, ingestor *uploads.Ingestor, logger *zap.Logger) *Handler {
	return &Handler{Profiles: profiles, Ingestor: ingestor, Log: logger}
}

// ServeCreate handles POST /profile/.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, inputval.Message(err))
		return
	}
	if req.Bio != nil {
		clean := htmlsanitize.Sanitize(*req.Bio)
		req.Bio = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Profiles.Create(ctx, models.Profile{
		FullName:   normalize.Name(req.FullName),
		Email:      normalize.Email(req.Email),
		Bio:        req.Bio,
		Department: req.Department,
		AvatarURL:  req.AvatarURL,
	})
	if err != nil {
		h.Log.Error("create profile failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	h.Log.Info("profile created",
		zap.String("profile_id", created.ID.Hex()),
		zap.String("email", created.Email))
	httpjson.Respond(w, http.StatusOK, created)
}

// ServeList handles GET /profile/.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	win := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Profiles.List(ctx, win.Limit, win.Offset)
	if err != nil {
		h.Log.Error("list profiles failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	httpjson.Respond(w, http.StatusOK, list)
}

// ServeGet handles GET /profile/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	profile, err := h.Profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profilestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.Log.Error("get profile failed", zap.Error(err), zap.String("profile_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	httpjson.Respond(w, http.StatusOK, profile)
}

// ServeUpdate handles PUT /profile/{id}. Only the fields present in the
// body are changed; an empty update is a 400.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var req updateProfileRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, inputval.Message(err))
		return
	}
	if req.Bio != nil {
		clean := htmlsanitize.Sanitize(*req.Bio)
		req.Bio = &clean
	}
	if req.Email != nil {
		lowered := normalize.Email(*req.Email)
		req.Email = &lowered
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Profiles.UpdateByID(ctx, id, profilestore.Update{
		FullName:   req.FullName,
		Email:      req.Email,
		Bio:        req.Bio,
		Department: req.Department,
		AvatarURL:  req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, profilestore.ErrNoFields):
			httpjson.Error(w, http.StatusBadRequest, "No update fields provided")
		case errors.Is(err, profilestore.ErrNotFound):
			httpjson.Error(w, http.StatusNotFound, "Profile not found or not modified")
		default:
			h.Log.Error("update profile failed", zap.Error(err), zap.String("profile_id", id.Hex()))
			httpjson.Error(w, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

// ServeAvatarUpload handles PUT /profile/{id}/avatar. The body is multipart
// form data with the image under the "avatar" field; the stored static path
// replaces the profile's avatar_url.
func (h *Handler) ServeAvatarUpload(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	if err := r.ParseMultipartForm(limits.MaxAvatarUploadSize); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	path, err := h.Ingestor.SaveUpload(header.Filename, file)
	if err != nil {
		if errors.Is(err, uploads.ErrImageFormat) || errors.Is(err, uploads.ErrImageData) {
			httpjson.Error(w, http.StatusBadRequest, "Invalid image format")
			return
		}
		h.Log.Error("avatar upload failed", zap.Error(err), zap.String("profile_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to store avatar")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Profiles.UpdateByID(ctx, id, profilestore.Update{AvatarURL: &path})
	if err != nil {
		if errors.Is(err, profilestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Profile not found or not modified")
			return
		}
		h.Log.Error("avatar update failed", zap.Error(err), zap.String("profile_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	h.Log.Info("avatar updated",
		zap.String("profile_id", id.Hex()),
		zap.String("path", path))
	httpjson.Respond(w, http.StatusOK, updated)
}

// ServeDelete handles DELETE /profile/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := oid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Profiles.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, profilestore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.Log.Error("delete profile failed", zap.Error(err), zap.String("profile_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}

	h.Log.Info("profile deleted", zap.String("profile_id", id.Hex()))
	httpjson.Message(w, http.StatusOK, "Profile deleted successfully")
}

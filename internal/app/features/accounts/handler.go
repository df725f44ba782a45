// internal/app/features/accounts/handler.go
package accounts

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	accountstore "github.com/dalemusser/coursehub/internal/app/store/accounts"
	"github.com/dalemusser/coursehub/internal/app/system/httpjson"
	"github.com/dalemusser/coursehub/internal/app/system/inputval"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
)

// Handler serves registration and login for users and students.
//
// There is no session or token issuance: login verifies credentials and
// answers with a message, nothing more.
type Handler struct {
	Accounts *accountstore.Store
	Log      *zap.Logger
}

// NewHandler creates a new accounts handler.
func NewHandler(accounts *accountstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Accounts: accounts, Log: logger}
}

// ServeRegisterUser handles POST /register/user.
func (h *Handler) ServeRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
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

	if err := h.Accounts.RegisterUser(ctx, req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, accountstore.ErrDuplicateUsername) {
			httpjson.Error(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.Log.Error("register user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	h.Log.Info("user registered", zap.String("username", req.Username))
	httpjson.Message(w, http.StatusOK, "User registered successfully")
}

// ServeRegisterStudent handles POST /register/student.
func (h *Handler) ServeRegisterStudent(w http.ResponseWriter, r *http.Request) {
	var req registerStudentRequest
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

	if err := h.Accounts.RegisterStudent(ctx, req.Name, req.Email, req.Password, req.Course); err != nil {
		if errors.Is(err, accountstore.ErrDuplicateStudent) {
			httpjson.Error(w, http.StatusBadRequest, "Student already exists")
			return
		}
		h.Log.Error("register student failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to register student")
		return
	}

	h.Log.Info("student registered", zap.String("email", req.Email))
	httpjson.Message(w, http.StatusOK, "Student registered successfully")
}

// ServeLoginUser handles POST /login/user.
func (h *Handler) ServeLoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginUserRequest
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

	if err := h.Accounts.LoginUser(ctx, req.Username, req.Password); err != nil {
		if errors.Is(err, accountstore.ErrInvalidCredentials) {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Log.Error("user login failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "login failed")
		return
	}
	httpjson.Message(w, http.StatusOK, "User login successful")
}

// ServeLoginStudent handles POST /login/student.
func (h *Handler) ServeLoginStudent(w http.ResponseWriter, r *http.Request) {
	var req loginStudentRequest
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

	if err := h.Accounts.LoginStudent(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, accountstore.ErrInvalidCredentials) {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Log.Error("student login failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "login failed")
		return
	}
	httpjson.Message(w, http.StatusOK, "Student login successful")
}

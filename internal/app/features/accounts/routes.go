// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for registration and login. It is mounted at
// the router root so the paths stay /register/* and /login/*.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/register/user", h.ServeRegisterUser)
	r.Post("/register/student", h.ServeRegisterStudent)
	r.Post("/login/user", h.ServeLoginUser)
	r.Post("/login/student", h.ServeLoginStudent)
	return r
}

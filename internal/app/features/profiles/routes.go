// internal/app/features/profiles/routes.go
package profiles

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the profile endpoints.
// It is mounted under /profile.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.ServeUpdate)
	r.Delete("/{id}", h.ServeDelete)
	r.Put("/{id}/avatar", h.ServeAvatarUpload)
	return r
}

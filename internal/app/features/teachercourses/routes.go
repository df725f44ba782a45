// internal/app/features/teachercourses/routes.go
package teachercourses

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the teacher course endpoints.
// It is mounted under /teacher_courses.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.ServeUpdate)
	r.Delete("/{id}", h.ServeDelete)
	r.Get("/{id}/modules", h.ServeModules)
	return r
}

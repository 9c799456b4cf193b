// Package router sets up all HTTP routes and middleware chains for the
// inkpost server. It organizes routes into public and session-protected
// groups with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpost/internal/handlers"
	"inkpost/internal/middleware"
	"inkpost/internal/token"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(signer *token.Signer, auth *handlers.Auth, public *handlers.Public, admin *handlers.Admin, media *handlers.Media) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Public routes — never pass through the session gate.
	r.Post("/login", auth.Login)
	r.Get("/posts", public.PostsList)
	r.Get("/posts/{id}", public.PostByID)

	// Session-protected routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(signer))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/posts", admin.PostCreate)
			r.Get("/posts/{id}", admin.PostGet)
			r.Post("/posts/{id}", admin.PostUpdate)
			r.Get("/categories", admin.CategoriesList)
		})

		r.Get("/me", admin.Me)
		r.Get("/media/pre-signed-url", media.PresignedURL)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, "404 Not Found")
	})

	return r
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)

		if h.services.OAuthService != nil {
			r.Get("/api/auth/google", h.googleStart)
			r.Get("/api/auth/google/callback", h.googleCallback)
		}
	})

	// routes guarded by the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/api/auth/update-profile", h.updateProfile)
		r.Get("/api/auth/check", h.checkAuth)
	})

	return router
}

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
	router.Use(h.withStatusMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/register/", h.register)
		r.Post("/login/", h.login)
	})

	if h.metricsHandler != nil {
		router.Handle("/metrics", h.metricsHandler)
	}

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/preferences/", h.updatePreferences)

		r.Get("/conversations/", h.listConversations)
		r.Delete("/conversations/", h.deleteAllConversations)
		r.Get("/conversations/{id}", h.getConversation)
		r.Put("/conversations/{id}", h.updateConversation)
		r.Delete("/conversations/{id}", h.deleteConversation)

		r.Get("/research/query", h.researchQuery)
		r.Get("/research/history", h.researchHistory)
	})

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/token", h.issueToken)
	})

	router.Route("/api/companies/{companyID}", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/ws", h.statusStream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Compress(compressionLevel, "application/json"))

			r.Get("/statements", h.listStatements)
			r.Post("/statements", h.createStatement)
			r.Get("/statements/{id}", h.getStatement)
			r.Delete("/statements/{id}", h.deleteStatement)
			r.Put("/statements/{id}/status", h.changeStatementStatus)

			r.Get("/references", h.listReferences)
			r.Post("/references", h.createReference)
			r.Delete("/references/{id}", h.deleteReference)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

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
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes without identity
	router.Get("/api/version", h.getVersion)

	// routes bound to the caller's key
	router.Group(func(r chi.Router) {
		r.Use(h.withIdentity)

		r.Post("/api/fields/encrypt", h.encryptField)
		r.Post("/api/fields/decrypt", h.decryptField)
		r.Post("/api/fields/reconcile", h.reconcileField)
		r.Post("/api/records/reconcile", h.reconcileRecords)
	})

	router.Post("/api/password/generate", h.generatePassword)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

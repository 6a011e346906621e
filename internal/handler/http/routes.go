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
		r.Post("/api/auth/login", h.login)
		r.Get("/api/clients", h.getClients)
		r.Get("/api/catalog", h.getCatalog)
		r.Post("/api/contact", h.submitContact)
	})

	// routes behind the session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/clients", h.addClient)
		r.Get("/api/clients/{clientID}/entries", h.getLoginEntries)
		r.Patch("/api/clients/{clientID}/profile", h.updateClientProfile)
		r.Post("/api/billing/checkout", h.checkout)
		r.Get("/api/billing/invoices/{invoiceID}", h.getInvoice)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

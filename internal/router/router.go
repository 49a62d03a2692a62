// Package router sets up all HTTP routes and middleware chains for the
// AutoHub server. It organizes routes into the public site and the JSON
// management API with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"autohub/internal/handlers"
	"autohub/internal/middleware"
)

// The editor endpoints get their own limiter: 30 requests per 30s
// sliding window per client IP.
const (
	editorRateLimit  = 30
	editorRateWindow = 30 * time.Second
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	editorLimiter := middleware.NewRateLimiter(editorRateLimit, editorRateWindow)

	// Management API consumed by the back office.
	r.Route("/api", func(r chi.Router) {
		// Inventory
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", api.VehiclesList)
			r.Post("/", api.VehiclesCreate)
			r.Get("/{id}", api.VehiclesGet)
			r.Put("/{id}", api.VehiclesUpdate)
			r.Patch("/{id}/status", api.VehiclesUpdateStatus)
			r.Delete("/{id}", api.VehiclesDelete)
		})

		// CRM pipeline
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", api.LeadsList)
			r.Post("/", api.LeadsCreate)
			r.Put("/{id}", api.LeadsUpdate)
			r.Patch("/{id}/status", api.LeadsUpdateStatus)
			r.Delete("/{id}", api.LeadsDelete)
		})

		// Finance ledger
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", api.TransactionsList)
			r.Post("/", api.TransactionsCreate)
			r.Delete("/{id}", api.TransactionsDelete)
		})

		// Contract templates and generated documents
		r.Route("/contract-templates", func(r chi.Router) {
			r.Get("/", api.ContractTemplatesList)
			r.Post("/", api.ContractTemplatesCreate)
			r.Put("/{id}", api.ContractTemplatesUpdate)
			r.Delete("/{id}", api.ContractTemplatesDelete)
		})
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", api.ContractsList)
			r.Post("/", api.ContractsGenerate)
			r.Get("/{id}/print", api.ContractsPrint)
			r.Delete("/{id}", api.ContractsDelete)
		})

		// Sales
		r.Route("/sales", func(r chi.Router) {
			r.Get("/", api.SalesList)
			r.Post("/", api.SalesRecord)
		})

		// Dashboard
		r.Get("/stats", api.Stats)

		// Media uploads
		r.Post("/media", api.MediaUpload)
		r.Delete("/media", api.MediaDelete)

		// Chat-driven website editor
		r.Route("/editor", func(r chi.Router) {
			r.Use(editorLimiter.Middleware)
			r.Get("/config", api.EditorConfig)
			r.Post("/chat", api.EditorChat)
			r.Post("/chat/clear", api.EditorChatClear)
			r.Post("/publish", api.EditorPublish)
			r.Get("/qr", api.EditorQR)
		})
	})

	// Public dealership site.
	r.Get("/", public.Home)
	r.Get("/estoque", public.Inventory)
	r.Get("/sobre", public.About)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Package rest is the HTTP adapter: it translates requests into service
// calls and service results into JSON.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/services"
)

// Handler manages the HTTP interface for the application.
type Handler struct {
	svc    *services.Reconciler
	router *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Reconciler) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)

	h.router.HandleFunc("POST /library/import", h.ImportLibrary)
	h.router.HandleFunc("POST /normalize", h.NormalizeTrack)

	h.router.HandleFunc("POST /reconcile/missing", h.ReconcileMissing)
	h.router.HandleFunc("POST /reconcile/matches", h.ReconcileMatches)
	h.router.HandleFunc("GET /reports/{id}", h.GetReport)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "message": "Mako is live"})
}

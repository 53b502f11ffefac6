package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
)

// reconcileRequest identifies the liked-tracks catalog to reconcile against
// the library, with an optional category restriction on the library side.
type reconcileRequest struct {
	PlaylistID string `json:"playlist_id"`
	SuperGenre string `json:"super_genre,omitempty"`
}

// ReconcileMissing handles POST /reconcile/missing
func (h *Handler) ReconcileMissing(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeReconcile(w, r)
	if !ok {
		return
	}

	report, err := h.svc.MissingFromLibrary(r.Context(), req.PlaylistID)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ReconcileMatches handles POST /reconcile/matches
func (h *Handler) ReconcileMatches(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeReconcile(w, r)
	if !ok {
		return
	}

	report, err := h.svc.MatchCatalog(r.Context(), req.PlaylistID, req.SuperGenre)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// GetReport handles GET /reports/{id}
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "report id is required")
		return
	}

	summary, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) decodeReconcile(w http.ResponseWriter, r *http.Request) (reconcileRequest, bool) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return reconcileRequest{}, false
	}

	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return reconcileRequest{}, false
	}
	if req.PlaylistID == "" {
		writeError(w, http.StatusBadRequest, "playlist_id is required")
		return reconcileRequest{}, false
	}
	return req, true
}

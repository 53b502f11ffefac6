package rest

import (
	"encoding/json"
	"net/http"
)

type normalizeRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// NormalizeTrack handles POST /normalize. It exposes the normalization
// pipeline standalone so a UI can display canonical fields before any
// matching occurs.
func (h *Handler) NormalizeTrack(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.NormalizeTrack(req.Title, req.Artist))
}

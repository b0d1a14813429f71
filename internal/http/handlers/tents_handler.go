package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripoli-karting/tentdesk/internal/domain"
	"github.com/tripoli-karting/tentdesk/internal/http/response"
)

// ListTents returns the whole collection in layout order
func (h *Handlers) ListTents(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tents": h.inventory.List(),
	})
}

// ListAvailableTents returns available tents in stable insertion order
func (h *Handlers) ListAvailableTents(w http.ResponseWriter, r *http.Request) {
	tents := h.inventory.ListAvailable()
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tents": tents,
		"count": len(tents),
	})
}

// GetTent returns one tent by code
func (h *Handlers) GetTent(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	tent, ok := h.inventory.Get(code)
	if !ok {
		response.NotFound(w, "Tent not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, tent)
}

// PatchTent merges a partial update into a tent
func (h *Handlers) PatchTent(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if _, ok := h.inventory.Get(code); !ok {
		response.NotFound(w, "Tent not found")
		return
	}

	var patch domain.TentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if patch.Status != nil {
		if _, ok := domain.ParseTentStatus(string(*patch.Status)); !ok {
			response.BadRequest(w, "Invalid tent status")
			return
		}
	}

	h.inventory.Update(code, patch)

	tent, _ := h.inventory.Get(code)
	response.WriteJSON(w, http.StatusOK, tent)
}

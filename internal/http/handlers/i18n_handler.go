package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripoli-karting/tentdesk/internal/http/response"
	"github.com/tripoli-karting/tentdesk/internal/i18n"
)

// GetCatalog serves the translation catalog for one locale. Unknown locales
// are an explicit 404, never a fallback.
func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.ParseLocale(chi.URLParam(r, "locale"))
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	catalog, err := i18n.Catalog(locale)
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"locale":   locale.String(),
		"messages": catalog,
	})
}

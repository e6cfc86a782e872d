package handler

import (
	"net/http"
	"strings"

	"github.com/mkravets/planik/internal/catalog"
)

// CatalogHandler serves the preset template API.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Get returns one preset by id. Habits come back as a comma-joined string,
// matching the form field the preset fills in.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	preset, ok := catalog.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"components": preset.Components,
		"habits":     strings.Join(preset.Habits, ", "),
		"theme":      preset.Theme,
		"style":      preset.Style,
	})
}

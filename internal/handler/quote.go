package handler

import (
	"net/http"

	"github.com/mkravets/planik/internal/quote"
)

// QuoteHandler serves random inspirational quotes.
type QuoteHandler struct {
	quotes *quote.Service
}

func NewQuoteHandler(quotes *quote.Service) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"quote": h.quotes.Random()})
}

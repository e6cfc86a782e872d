package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mkravets/planik/internal/llm"
	"github.com/mkravets/planik/internal/model"
	"github.com/mkravets/planik/internal/provider"
	"github.com/mkravets/planik/internal/store"
	"github.com/mkravets/planik/internal/suggest"
)

// SuggestionsHandler serves planner suggestions: an LLM call for LM Studio,
// the keyword table for everything else.
type SuggestionsHandler struct {
	settings *store.SettingsStore
	logger   *slog.Logger
}

func NewSuggestionsHandler(settings *store.SettingsStore, logger *slog.Logger) *SuggestionsHandler {
	return &SuggestionsHandler{settings: settings, logger: logger}
}

type suggestionsRequest struct {
	Prompt   string `json:"prompt"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

func (h *SuggestionsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no prompt provided"})
		return
	}
	if req.Provider == "" {
		req.Provider = "openai"
	}
	if !provider.Known(req.Provider) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown provider"})
		return
	}
	if req.Provider != "lmstudio" && !h.settings.ProviderConfigured(req.Provider) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": fmt.Sprintf("API key not set for %s", req.Provider)})
		return
	}

	if req.Provider == "lmstudio" {
		h.suggestLMStudio(w, r, req)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]model.Suggestion{
		"suggestions": suggest.ForPrompt(req.Prompt),
	})
}

func (h *SuggestionsHandler) suggestLMStudio(w http.ResponseWriter, r *http.Request, req suggestionsRequest) {
	apiKey, _ := h.settings.ProviderAPIKey(req.Provider)
	modelName := req.Model
	if modelName == "" {
		modelName = h.settings.ProviderModel(req.Provider)
	}

	client := llm.NewClient(llm.Config{
		BaseURL: h.settings.ProviderBaseURL(req.Provider),
		APIKey:  apiKey,
		Model:   modelName,
	})

	suggestions, err := client.Suggestions(r.Context(), req.Prompt)
	if err != nil {
		h.logger.Warn("lmstudio suggestions", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get suggestions from LM Studio"})
		return
	}

	writeJSON(w, http.StatusOK, map[string][]model.Suggestion{"suggestions": suggestions})
}

package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mkravets/planik/internal/llm"
	"github.com/mkravets/planik/internal/provider"
	"github.com/mkravets/planik/internal/store"
	"github.com/mkravets/planik/internal/websocket"
)

// SettingsHandler manages provider credentials.
type SettingsHandler struct {
	settings *store.SettingsStore
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewSettingsHandler(settings *store.SettingsStore, hub *websocket.Hub, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, hub: hub, logger: logger}
}

func (h *SettingsHandler) broadcast(ev websocket.Event) {
	if h.hub != nil {
		h.hub.Broadcast(ev)
	}
}

type keyRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	BaseURL  string `json:"base_url"`
	Model    string `json:"model"`
}

type keyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SaveKey stores credentials for a provider.
func (h *SettingsHandler) SaveKey(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, keyResponse{Message: "invalid JSON"})
		return
	}

	if req.Provider == "" || strings.TrimSpace(req.APIKey) == "" {
		writeJSON(w, http.StatusBadRequest, keyResponse{Message: "provider and API key are required"})
		return
	}
	if !provider.Known(req.Provider) {
		writeJSON(w, http.StatusBadRequest, keyResponse{Message: "invalid provider"})
		return
	}

	if err := h.settings.SaveProviderCredentials(req.Provider, req.APIKey, req.BaseURL, req.Model); err != nil {
		h.logger.Error("save provider credentials", "provider", req.Provider, "error", err)
		writeJSON(w, http.StatusInternalServerError, keyResponse{Message: "failed to save API key"})
		return
	}

	h.broadcast(websocket.Event{Type: websocket.EventSettingsUpdated, Extra: map[string]any{"provider": req.Provider}})

	writeJSON(w, http.StatusOK, keyResponse{
		Success: true,
		Message: fmt.Sprintf("API key for %s saved successfully", req.Provider),
	})
}

// TestKey verifies credentials. LM Studio gets a live connection test; for
// the hosted providers only the presence of a key is checked.
func (h *SettingsHandler) TestKey(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, keyResponse{Message: "invalid JSON"})
		return
	}

	if req.Provider == "" {
		writeJSON(w, http.StatusBadRequest, keyResponse{Message: "provider is required"})
		return
	}
	if !provider.Known(req.Provider) {
		writeJSON(w, http.StatusBadRequest, keyResponse{Message: "invalid provider"})
		return
	}

	if req.Provider == "lmstudio" {
		h.testLMStudio(w, r, req)
		return
	}

	if req.APIKey == "" && !h.settings.ProviderConfigured(req.Provider) {
		writeJSON(w, http.StatusUnauthorized, keyResponse{
			Message: fmt.Sprintf("API key not set for %s", req.Provider),
		})
		return
	}

	writeJSON(w, http.StatusOK, keyResponse{
		Success: true,
		Message: fmt.Sprintf("API key for %s is valid", req.Provider),
	})
}

func (h *SettingsHandler) testLMStudio(w http.ResponseWriter, r *http.Request, req keyRequest) {
	baseURL := req.BaseURL
	if baseURL == "" {
		baseURL = h.settings.ProviderBaseURL(req.Provider)
	}
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey, _ = h.settings.ProviderAPIKey(req.Provider)
	}
	modelName := req.Model
	if modelName == "" {
		modelName = h.settings.ProviderModel(req.Provider)
	}

	client := llm.NewClient(llm.Config{BaseURL: baseURL, APIKey: apiKey, Model: modelName})
	if err := client.TestConnection(r.Context()); err != nil {
		h.logger.Warn("lmstudio connection test", "error", err)
		writeJSON(w, http.StatusInternalServerError, keyResponse{
			Message: fmt.Sprintf("Error connecting to LM Studio: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, keyResponse{
		Success: true,
		Message: "Successfully connected to LM Studio",
	})
}

package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/mkravets/planik/internal/chat"
	"github.com/mkravets/planik/internal/llm"
	"github.com/mkravets/planik/internal/model"
	"github.com/mkravets/planik/internal/provider"
	"github.com/mkravets/planik/internal/store"
	"github.com/mkravets/planik/internal/websocket"
)

// ChatHandler serves the planner chat assistant. The session (and its
// conversation history) lives for the handler's lifetime; the remote client
// is rebuilt per request so credential changes apply immediately.
type ChatHandler struct {
	settings *store.SettingsStore
	session  *chat.Session
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewChatHandler(settings *store.SettingsStore, hub *websocket.Hub, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		settings: settings,
		session:  chat.NewSession(),
		hub:      hub,
		logger:   logger,
	}
}

type chatRequest struct {
	Message  string `json:"message"`
	Provider string `json:"provider"`
}

type chatResponse struct {
	Response     string              `json:"response"`
	ResponseHTML string              `json:"response_html"`
	PlannerItems []model.PlannerItem `json:"planner_items"`
}

// Process handles one chat message.
func (h *ChatHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no message provided"})
		return
	}
	if req.Provider == "" {
		req.Provider = "lmstudio"
	}
	if !provider.Known(req.Provider) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown provider"})
		return
	}
	if req.Provider != "lmstudio" && !h.settings.ProviderConfigured(req.Provider) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": fmt.Sprintf("API key not set for %s", req.Provider)})
		return
	}

	// Only LM Studio is wired for chat today.
	if req.Provider != "lmstudio" {
		reply := fmt.Sprintf("Чат с %s пока не поддерживается. Пожалуйста, используйте LM Studio.", req.Provider)
		writeJSON(w, http.StatusOK, chatResponse{
			Response:     reply,
			ResponseHTML: renderMarkdown(reply),
			PlannerItems: []model.PlannerItem{},
		})
		return
	}

	apiKey, _ := h.settings.ProviderAPIKey(req.Provider)
	remote := llm.NewClient(llm.Config{
		BaseURL: h.settings.ProviderBaseURL(req.Provider),
		APIKey:  apiKey,
		Model:   h.settings.ProviderModel(req.Provider),
	})

	items, response := h.session.Process(r.Context(), remote, req.Message)
	if items == nil {
		items = []model.PlannerItem{}
	}

	if len(items) > 0 && h.hub != nil {
		h.hub.Broadcast(websocket.Event{
			Type:  websocket.EventChatItemsAdded,
			Extra: map[string]any{"count": len(items)},
		})
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:     response,
		ResponseHTML: renderMarkdown(response),
		PlannerItems: items,
	})
}

// renderMarkdown converts the assistant's markdown reply to HTML for the
// chat page.
func renderMarkdown(text string) string {
	return string(blackfriday.Run([]byte(text)))
}

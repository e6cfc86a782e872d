package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mkravets/planik/internal/catalog"
	"github.com/mkravets/planik/internal/provider"
	"github.com/mkravets/planik/internal/store"
	"github.com/mkravets/planik/internal/style"
	"github.com/mkravets/planik/internal/weather"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	templates  *template.Template
	settings   *store.SettingsStore
	weatherSvc *weather.Service
	logger     *slog.Logger
}

func NewPageHandler(settings *store.SettingsStore, weatherSvc *weather.Service, logger *slog.Logger) *PageHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/*.html"))
	return &PageHandler{
		templates:  tmpl,
		settings:   settings,
		weatherSvc: weatherSvc,
		logger:     logger,
	}
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("render template", "template", name, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// Index renders the planner customization form.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var forecast []weather.Forecast
	if h.weatherSvc != nil {
		forecast = h.weatherSvc.GetForecast()
	}

	h.render(w, "index.html", map[string]any{
		"Title":      "Planik",
		"Styles":     style.Names(),
		"Components": componentNames,
		"Forecast":   forecast,
	})
}

// providerView is one provider's settings-page row.
type providerView struct {
	provider.Provider
	MaskedKey string
	BaseURL   string
	Model     string
}

// Settings renders the provider credential page with masked keys.
func (h *PageHandler) Settings(w http.ResponseWriter, r *http.Request) {
	providers := make([]providerView, 0, len(provider.All()))
	for _, p := range provider.All() {
		view := providerView{
			Provider: p,
			BaseURL:  h.settings.ProviderBaseURL(p.ID),
			Model:    h.settings.ProviderModel(p.ID),
		}
		if key, ok := h.settings.ProviderAPIKey(p.ID); ok {
			view.MaskedKey = provider.MaskKey(key)
		}
		providers = append(providers, view)
	}

	h.render(w, "settings.html", map[string]any{
		"Title":     "Settings — Planik",
		"Providers": providers,
	})
}

// Templates renders the preset catalog page.
func (h *PageHandler) Templates(w http.ResponseWriter, r *http.Request) {
	h.render(w, "templates.html", map[string]any{
		"Title":   "Templates — Planik",
		"Presets": catalog.List(),
	})
}

// Chat renders the assistant chat page.
func (h *PageHandler) Chat(w http.ResponseWriter, r *http.Request) {
	h.render(w, "chat.html", map[string]any{
		"Title": "Chat — Planik",
	})
}

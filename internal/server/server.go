package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mkravets/planik/internal/handler"
	"github.com/mkravets/planik/internal/middleware"
	"github.com/mkravets/planik/internal/planner"
	"github.com/mkravets/planik/internal/quote"
	"github.com/mkravets/planik/internal/store"
	"github.com/mkravets/planik/internal/weather"
	ws "github.com/mkravets/planik/internal/websocket"
)

// Server wires the stores, services, and handlers into one HTTP surface.
type Server struct {
	db           *sql.DB
	hub          *ws.Hub
	pageH        *handler.PageHandler
	plannerH     *handler.PlannerHandler
	quoteH       *handler.QuoteHandler
	suggestionsH *handler.SuggestionsHandler
	settingsH    *handler.SettingsHandler
	chatH        *handler.ChatHandler
	catalogH     *handler.CatalogHandler
	rateLimiter  *middleware.RateLimiter
	logger       *slog.Logger
}

func New(db *sql.DB, weatherSvc *weather.Service, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	settingsStore := store.NewSettingsStore(db)
	quoteSvc := quote.NewService()
	generator := planner.NewGenerator(quoteSvc)

	return &Server{
		db:           db,
		hub:          hub,
		pageH:        handler.NewPageHandler(settingsStore, weatherSvc, logger.With("component", "pages")),
		plannerH:     handler.NewPlannerHandler(generator, hub, logger.With("component", "planner")),
		quoteH:       handler.NewQuoteHandler(quoteSvc),
		suggestionsH: handler.NewSuggestionsHandler(settingsStore, logger.With("component", "suggestions")),
		settingsH:    handler.NewSettingsHandler(settingsStore, hub, logger.With("component", "settings")),
		chatH:        handler.NewChatHandler(settingsStore, hub, logger.With("component", "chat")),
		catalogH:     handler.NewCatalogHandler(),
		rateLimiter:  middleware.NewRateLimiter(),
		logger:       logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", s.pageH.Index)
	mux.HandleFunc("GET /settings", s.pageH.Settings)
	mux.HandleFunc("GET /templates", s.pageH.Templates)
	mux.HandleFunc("GET /chat", s.pageH.Chat)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	// Generation
	mux.HandleFunc("POST /generate", s.plannerH.Generate)

	// JSON API
	mux.HandleFunc("GET /api/quote", s.quoteH.Get)
	mux.Handle("POST /api/ai-suggestions", s.rateLimited(s.suggestionsH.Suggest))
	mux.HandleFunc("POST /api/settings/save-key", s.settingsH.SaveKey)
	mux.HandleFunc("POST /api/settings/test-key", s.settingsH.TestKey)
	mux.HandleFunc("GET /api/template/{id}", s.catalogH.Get)
	mux.Handle("POST /api/chat", s.rateLimited(s.chatH.Process))

	// Live events
	mux.HandleFunc("GET /ws", ws.Handler(s.hub, s.logger.With("component", "websocket")))

	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimited(h http.HandlerFunc) http.Handler {
	// Each endpoint gets its own per-client budget.
	key := func(r *http.Request) string {
		return middleware.RealIP(r) + " " + r.URL.Path
	}
	return middleware.RateLimit(s.rateLimiter, key, 10, time.Minute)(h)
}

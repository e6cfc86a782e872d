package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mkravets/planik/internal/model"
	"github.com/mkravets/planik/internal/planner"
	"github.com/mkravets/planik/internal/websocket"
)

// componentNames are the form checkboxes a generation request may carry.
// Flags without a rendered block are accepted and ignored by the assembler.
var componentNames = []string{
	"todo",
	"habit_tracker",
	"notes",
	"schedule",
	"mood_tracker",
	"goal_setting",
	"reflection",
	"gratitude",
	"water_tracker",
}

var validTimeRanges = map[string]bool{
	"day":   true,
	"week":  true,
	"month": true,
}

// PlannerHandler serves PDF generation.
type PlannerHandler struct {
	generator *planner.Generator
	hub       *websocket.Hub
	logger    *slog.Logger
}

func NewPlannerHandler(g *planner.Generator, hub *websocket.Hub, logger *slog.Logger) *PlannerHandler {
	return &PlannerHandler{generator: g, hub: hub, logger: logger}
}

func (h *PlannerHandler) broadcast(ev websocket.Event) {
	if h.hub != nil {
		h.hub.Broadcast(ev)
	}
}

// Generate renders the planner described by the submitted form and returns
// it as a PDF attachment.
func (h *PlannerHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	timeRange := r.FormValue("time_range")
	if timeRange == "" {
		timeRange = "week"
	}
	if !validTimeRanges[timeRange] {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "time_range must be day, week, or month"})
		return
	}

	theme := r.FormValue("theme")
	if theme == "" {
		theme = "Productivity"
	}

	components := make(map[string]bool, len(componentNames))
	for _, c := range componentNames {
		components[c] = r.Form.Has(c)
	}

	var habits []string
	if components["habit_tracker"] {
		for _, habit := range strings.Split(r.FormValue("habits"), ",") {
			if habit = strings.TrimSpace(habit); habit != "" {
				habits = append(habits, habit)
			}
		}
	}

	req := model.PlannerRequest{
		Name:       name,
		TimeRange:  timeRange,
		Quote:      r.FormValue("quote"),
		Theme:      theme,
		Style:      r.FormValue("style"),
		Components: components,
		Habits:     habits,
	}

	pdf, err := h.generator.Generate(req)
	if err != nil {
		h.logger.Error("generate planner", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate planner"})
		return
	}

	generationID := uuid.NewString()
	h.logger.Info("planner generated",
		"generation_id", generationID,
		"time_range", timeRange,
		"bytes", len(pdf),
	)
	h.broadcast(websocket.Event{
		Type: websocket.EventPlannerGenerated,
		Extra: map[string]any{
			"generation_id": generationID,
			"time_range":    timeRange,
		},
	})

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+planner.Filename(name)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Write(pdf)
}

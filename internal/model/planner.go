package model

// Planner item types produced by chat extraction.
const (
	ItemEvent = "event"
	ItemTask  = "task"
	ItemNote  = "note"
)

// PlannerItem is one entry extracted from a chat message or returned by a
// remote tool call. Time is set only for events, normalized to HH:MM.
type PlannerItem struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Time        *string `json:"time"`
	Description string  `json:"description"`
}

// PlannerRequest holds one document-generation request. It is built from
// the submitted form, never mutated, and consumed once.
type PlannerRequest struct {
	Name       string
	TimeRange  string // "day", "week", or "month"
	Quote      string
	Theme      string
	Style      string
	Components map[string]bool
	Habits     []string
}

// Suggestion is one planner-enhancement idea returned by /api/ai-suggestions.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

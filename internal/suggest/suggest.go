// Package suggest provides the keyword-based planner suggestions used for
// providers without a chat-completion path. It performs a case-insensitive
// substring scan over an ordered keyword table.
package suggest

import (
	"strings"

	"github.com/mkravets/planik/internal/model"
)

const minSuggestions = 3

type keywordGroup struct {
	keywords    []string
	suggestions []model.Suggestion
}

var groups = []keywordGroup{
	{
		keywords: []string{"student", "class", "study", "school", "college"},
		suggestions: []model.Suggestion{
			{Title: "Add Class Schedule Component", Description: "Include a dedicated section for tracking classes with time slots and locations."},
			{Title: "Add Assignment Tracker", Description: "Include a special to-do section specifically for tracking assignments and due dates."},
			{Title: "Add Study Timer", Description: "Include a Pomodoro-style study timer section to track focused study sessions."},
		},
	},
	{
		keywords: []string{"work", "job", "professional", "career", "business"},
		suggestions: []model.Suggestion{
			{Title: "Add Meeting Notes Section", Description: "Include a dedicated area for taking notes during meetings."},
			{Title: "Add Project Timeline", Description: "Include a project tracking section with milestones and deadlines."},
			{Title: "Add Work/Life Balance Tracker", Description: "Track overtime hours and ensure you maintain a healthy work/life balance."},
		},
	},
	{
		keywords: []string{"fitness", "workout", "exercise", "gym", "health"},
		suggestions: []model.Suggestion{
			{Title: "Add Workout Log", Description: "Include a section to track exercises, sets, reps, and weights."},
			{Title: "Add Nutrition Tracker", Description: "Track daily water intake, meals, and calories."},
			{Title: "Add Body Measurements Log", Description: "Track progress with weight, measurements, and other fitness metrics."},
		},
	},
}

var general = []model.Suggestion{
	{Title: "Enhanced Habit Tracker", Description: "Track multiple habits with color coding and streak counting."},
	{Title: "Goal Setting Framework", Description: "Include a structured approach to setting and tracking weekly and monthly goals."},
	{Title: "Daily Reflection Prompts", Description: "Add guided reflection questions for end-of-day journaling."},
	{Title: "Priority Matrix", Description: "Include a quadrant-based priority system for tasks (urgent/important matrix)."},
	{Title: "Mood Tracker", Description: "Track your daily mood and emotional well-being."},
	{Title: "Gratitude Journal", Description: "Include a section to write down things you're grateful for each day."},
}

// ForPrompt returns suggestions matching the prompt's keywords, topped up
// from the general list to at least three without duplicate titles.
func ForPrompt(prompt string) []model.Suggestion {
	lower := strings.ToLower(prompt)

	var out []model.Suggestion
	for _, g := range groups {
		if containsAny(lower, g.keywords) {
			out = append(out, g.suggestions...)
		}
	}

	for _, s := range general {
		if len(out) >= minSuggestions {
			break
		}
		if !hasTitle(out, s.Title) {
			out = append(out, s)
		}
	}

	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func hasTitle(suggestions []model.Suggestion, title string) bool {
	for _, s := range suggestions {
		if s.Title == title {
			return true
		}
	}
	return false
}

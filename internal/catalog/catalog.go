// Package catalog holds the static preset planner templates.
package catalog

// Preset is one ready-made planner configuration.
type Preset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
	Habits      []string `json:"habits"`
	Theme       string   `json:"theme"`
	Style       string   `json:"style"`
}

var presets = []Preset{
	{
		ID:          "student",
		Name:        "Student Planner",
		Description: "Perfect for tracking classes, assignments, and study sessions",
		Components:  []string{"todo", "habit_tracker", "schedule", "notes"},
		Habits:      []string{"Study", "Attend class", "Complete assignments", "Review notes"},
		Theme:       "Academic Success",
		Style:       "minimalist",
	},
	{
		ID:          "work",
		Name:        "Work Planner",
		Description: "Designed for professionals with meetings and project deadlines",
		Components:  []string{"todo", "schedule", "notes", "goal_setting"},
		Habits:      []string{"Email management", "Meeting preparation", "Project tasks", "Follow-ups"},
		Theme:       "Professional Growth",
		Style:       "minimalist",
	},
	{
		ID:          "fitness",
		Name:        "Fitness Planner",
		Description: "Track workouts, nutrition, and wellness goals",
		Components:  []string{"habit_tracker", "notes", "water_tracker", "goal_setting"},
		Habits:      []string{"Exercise", "Water intake", "Protein intake", "Sleep 8 hours"},
		Theme:       "Health & Fitness",
		Style:       "colorful",
	},
	{
		ID:          "creative",
		Name:        "Creative Planner",
		Description: "For artists and writers with project tracking",
		Components:  []string{"todo", "habit_tracker", "notes", "reflection"},
		Habits:      []string{"Daily creation", "Idea journaling", "Research", "Skill practice"},
		Theme:       "Creative Expression",
		Style:       "illustrated",
	},
	{
		ID:          "mindfulness",
		Name:        "Mindfulness Planner",
		Description: "Focus on mental health, gratitude, and self-care",
		Components:  []string{"habit_tracker", "mood_tracker", "reflection", "gratitude"},
		Habits:      []string{"Meditation", "Gratitude", "Deep breathing", "Journaling"},
		Theme:       "Mindfulness & Well-being",
		Style:       "illustrated",
	},
	{
		ID:          "travel",
		Name:        "Travel Planner",
		Description: "Plan trips, activities, and packing lists",
		Components:  []string{"todo", "notes", "goal_setting", "habit_tracker"},
		Habits:      []string{"Research destinations", "Budget tracking", "Packing list", "Language practice"},
		Theme:       "Travel & Adventure",
		Style:       "colorful",
	},
}

// List returns all presets in catalog order.
func List() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Get returns the preset with the given id.
func Get(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

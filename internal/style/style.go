// Package style defines the static planner theme profiles.
package style

// Profile holds the font and color palette for one planner style. Profiles
// are static and never mutated.
type Profile struct {
	Name            string
	Font            string
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	AccentColor     string
}

var profiles = map[string]Profile{
	"minimalist": {
		Name:            "minimalist",
		Font:            "Helvetica",
		PrimaryColor:    "#333333",
		SecondaryColor:  "#666666",
		BackgroundColor: "#FFFFFF",
		AccentColor:     "#4A90E2",
	},
	"colorful": {
		Name:            "colorful",
		Font:            "Helvetica",
		PrimaryColor:    "#2C3E50",
		SecondaryColor:  "#E74C3C",
		BackgroundColor: "#ECF0F1",
		AccentColor:     "#3498DB",
	},
	"illustrated": {
		Name:            "illustrated",
		Font:            "Helvetica",
		PrimaryColor:    "#34495E",
		SecondaryColor:  "#16A085",
		BackgroundColor: "#F5F5F5",
		AccentColor:     "#E67E22",
	},
}

// Lookup returns the profile for the given style name. Unknown names fall
// back to the minimalist profile.
func Lookup(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles["minimalist"]
}

// Names returns the registered style names.
func Names() []string {
	return []string{"minimalist", "colorful", "illustrated"}
}

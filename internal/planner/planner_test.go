package planner

import (
	"bytes"
	"testing"
	"time"

	"github.com/mkravets/planik/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDatesDay(t *testing.T) {
	days := dates("day", date(2026, time.March, 15))
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].Day() != 15 {
		t.Errorf("day = %d, want 15", days[0].Day())
	}
}

func TestDatesWeek(t *testing.T) {
	days := dates("week", date(2026, time.March, 30))
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if days[0].Day() != 30 {
		t.Errorf("first day = %d, want 30", days[0].Day())
	}
	// Rolls over into April
	if days[6].Month() != time.April || days[6].Day() != 5 {
		t.Errorf("last day = %v, want April 5", days[6])
	}
}

func TestDatesMonth(t *testing.T) {
	tests := []struct {
		today time.Time
		want  int
	}{
		{date(2026, time.April, 10), 30},
		{date(2026, time.January, 31), 31},
		{date(2026, time.February, 5), 28},
		{date(2028, time.February, 5), 29}, // leap year
	}
	for _, tt := range tests {
		days := dates("month", tt.today)
		if len(days) != tt.want {
			t.Errorf("dates(month, %v) = %d days, want %d", tt.today, len(days), tt.want)
		}
		if days[0].Day() != 1 {
			t.Errorf("month must start on the 1st, got %d", days[0].Day())
		}
	}
}

func TestDateRangeLabel(t *testing.T) {
	today := date(2026, time.March, 2)
	tests := []struct {
		timeRange, want string
	}{
		{"day", "Monday, March 02, 2026"},
		{"week", "March 02 - March 08, 2026"},
		{"month", "March 2026"},
	}
	for _, tt := range tests {
		if got := dateRangeLabel(tt.timeRange, today); got != tt.want {
			t.Errorf("dateRangeLabel(%q) = %q, want %q", tt.timeRange, got, tt.want)
		}
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	g := NewGenerator(nil)
	req := model.PlannerRequest{
		Name:      "Alex",
		TimeRange: "day",
		Quote:     "Stay focused.",
		Theme:     "Productivity",
		Style:     "minimalist",
		Components: map[string]bool{
			"schedule":      true,
			"todo":          true,
			"habit_tracker": true,
			"notes":         true,
		},
		Habits: []string{"Reading", "Exercise"},
	}

	pdf, err := g.generateAt(req, date(2026, time.March, 15))
	if err != nil {
		t.Fatalf("generateAt: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if len(pdf) < 1000 {
		t.Errorf("pdf suspiciously small: %d bytes", len(pdf))
	}
}

func TestBuildPageCount(t *testing.T) {
	g := NewGenerator(nil)
	tests := []struct {
		timeRange string
		days      int
	}{
		{"day", 1},
		{"week", 7},
		{"month", 31}, // March
	}
	for _, tt := range tests {
		req := model.PlannerRequest{
			Name:      "Alex",
			TimeRange: tt.timeRange,
			Quote:     "q",
			// notes alone fits on one page, so no continuation pages
			Components: map[string]bool{"notes": true},
		}
		pdf := g.build(req, date(2026, time.March, 15))
		if got, want := pdf.PageCount(), 1+tt.days; got != want {
			t.Errorf("PageCount(%s) = %d, want cover + %d day pages = %d", tt.timeRange, got, tt.days, want)
		}
	}
}

func TestBuildPageCountWithOverflow(t *testing.T) {
	g := NewGenerator(nil)
	req := model.PlannerRequest{
		Name:      "Alex",
		TimeRange: "day",
		Quote:     "q",
		Components: map[string]bool{
			"schedule": true,
			"todo":     true,
			"notes":    true,
		},
	}

	// the stacked blocks exceed one A4 page, so the auto page break adds
	// continuation pages beyond cover + 1
	pdf := g.build(req, date(2026, time.March, 15))
	if got := pdf.PageCount(); got < 3 {
		t.Errorf("PageCount = %d, want at least 3", got)
	}
}

func TestGenerateUnknownStyleFallsBack(t *testing.T) {
	g := NewGenerator(nil)
	req := model.PlannerRequest{
		Name:       "Alex",
		TimeRange:  "day",
		Quote:      "q",
		Style:      "does-not-exist",
		Components: map[string]bool{"notes": true},
	}

	if _, err := g.generateAt(req, date(2026, time.March, 15)); err != nil {
		t.Fatalf("generateAt: %v", err)
	}
}

func TestGenerateWeekSucceeds(t *testing.T) {
	g := NewGenerator(nil)
	req := model.PlannerRequest{
		Name:       "Alex",
		TimeRange:  "week",
		Quote:      "q",
		Components: map[string]bool{"schedule": true},
	}

	pdf, err := g.generateAt(req, date(2026, time.March, 15))
	if err != nil {
		t.Fatalf("generateAt: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty pdf")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Alex", "alex_planner.pdf"},
		{"Mary Jane", "mary_jane_planner.pdf"},
		{"  Trim Me  ", "trim_me_planner.pdf"},
		{"", "my_planner.pdf"},
	}
	for _, tt := range tests {
		if got := Filename(tt.in); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, "6 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{22, "10 PM"},
	}
	for _, tt := range tests {
		if got := hourLabel(tt.hour); got != tt.want {
			t.Errorf("hourLabel(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#3498db", 52, 152, 219},
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"nonsense", 0, 0, 0},
		{"#fff", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := hexToRGB(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hexToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

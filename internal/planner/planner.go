// Package planner assembles the personalized PDF document: a cover page
// followed by one formatted page per calendar day in the requested range.
package planner

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mkravets/planik/internal/model"
	"github.com/mkravets/planik/internal/quote"
	"github.com/mkravets/planik/internal/style"
)

const (
	pageMargin   = 20.0 // mm
	contentW     = 170.0
	scheduleRowH = 7.0
	todoRows     = 10
)

// Generator builds planner PDFs. When a request carries no quote, the quote
// service supplies one.
type Generator struct {
	quotes *quote.Service
}

func NewGenerator(quotes *quote.Service) *Generator {
	return &Generator{quotes: quotes}
}

// Generate renders the planner described by req and returns the PDF bytes.
func (g *Generator) Generate(req model.PlannerRequest) ([]byte, error) {
	return g.generateAt(req, time.Now())
}

func (g *Generator) generateAt(req model.PlannerRequest, today time.Time) ([]byte, error) {
	pdf := g.build(req, today)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render planner pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// build assembles the document: a cover page, then one page per day in the
// range. Overlong day content spills onto continuation pages via the auto
// page break.
func (g *Generator) build(req model.PlannerRequest, today time.Time) *fpdf.Fpdf {
	profile := style.Lookup(req.Style)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	q := req.Quote
	if q == "" && g.quotes != nil {
		q = g.quotes.Random()
	}

	coverPage(pdf, tr, profile, req, q, today)

	for _, day := range dates(req.TimeRange, today) {
		dayPage(pdf, tr, profile, day, req.Components, req.Habits)
	}

	return pdf
}

// Filename returns the attachment name for a generated planner.
func Filename(name string) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if base == "" {
		base = "my"
	}
	return base + "_planner.pdf"
}

// dates expands a time range into the calendar days to render: one for
// "day", seven consecutive starting today for "week", and every day of the
// current month otherwise. Month length comes from rolling over to the next
// month and stepping back one day.
func dates(timeRange string, today time.Time) []time.Time {
	switch timeRange {
	case "day":
		return []time.Time{today}
	case "week":
		days := make([]time.Time, 7)
		for i := range days {
			days[i] = today.AddDate(0, 0, i)
		}
		return days
	default: // month
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
		days := make([]time.Time, last.Day())
		for i := range days {
			days[i] = first.AddDate(0, 0, i)
		}
		return days
	}
}

// dateRangeLabel formats the cover-page date line for the requested range.
func dateRangeLabel(timeRange string, today time.Time) string {
	switch timeRange {
	case "day":
		return today.Format("Monday, January 02, 2006")
	case "week":
		end := today.AddDate(0, 0, 6)
		return today.Format("January 02") + " - " + end.Format("January 02, 2006")
	default:
		return today.Format("January 2006")
	}
}

func coverPage(pdf *fpdf.Fpdf, tr func(string) string, profile style.Profile, req model.PlannerRequest, quoteText string, today time.Time) {
	pdf.AddPage()

	r, g, b := hexToRGB(profile.PrimaryColor)
	pdf.SetFont(profile.Font, "B", 24)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(contentW, 12, tr(req.Name+"'s Planner"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	r, g, b = hexToRGB(profile.SecondaryColor)
	pdf.SetFont(profile.Font, "", 16)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(contentW, 9, tr(req.Theme), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(contentW, 9, dateRangeLabel(req.TimeRange, today), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	r, g, b = hexToRGB(profile.PrimaryColor)
	pdf.SetFont(profile.Font, "I", 10)
	pdf.SetTextColor(r, g, b)
	pdf.MultiCell(contentW, 6, tr(quoteText), "", "C", false)
}

func dayPage(pdf *fpdf.Fpdf, tr func(string) string, profile style.Profile, day time.Time, components map[string]bool, habits []string) {
	pdf.AddPage()

	r, g, b := hexToRGB(profile.PrimaryColor)
	pdf.SetFont(profile.Font, "B", 18)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(contentW, 10, day.Format("Monday, January 02, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if components["schedule"] {
		scheduleBlock(pdf, profile)
	}
	if components["todo"] {
		todoBlock(pdf, profile)
	}
	if components["habit_tracker"] && len(habits) > 0 {
		habitBlock(pdf, tr, profile, habits)
	}
	if components["notes"] {
		notesBlock(pdf, profile)
	}
}

func scheduleBlock(pdf *fpdf.Fpdf, profile style.Profile) {
	blockHeading(pdf, profile, "Daily Schedule")

	pdf.SetFont(profile.Font, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(128, 128, 128)
	pdf.CellFormat(25, scheduleRowH, "Time", "1", 0, "C", true, 0, "")
	pdf.CellFormat(contentW-25, scheduleRowH, "Activity", "1", 1, "C", true, 0, "")

	pdf.SetFont(profile.Font, "", 10)
	for hour := 6; hour <= 22; hour++ {
		pdf.CellFormat(25, scheduleRowH, hourLabel(hour), "1", 0, "C", false, 0, "")
		pdf.CellFormat(contentW-25, scheduleRowH, "", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)
}

// hourLabel formats a 24-hour value as a 12-hour AM/PM label.
func hourLabel(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	if display > 12 {
		display -= 12
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d %s", display, period)
}

func todoBlock(pdf *fpdf.Fpdf, profile style.Profile) {
	blockHeading(pdf, profile, "To-Do List")

	pdf.SetFont(profile.Font, "", 10)
	pdf.SetDrawColor(128, 128, 128)
	for i := 0; i < todoRows; i++ {
		checkboxCell(pdf, 10, scheduleRowH)
		pdf.CellFormat(contentW-10, scheduleRowH, "", "1", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

func habitBlock(pdf *fpdf.Fpdf, tr func(string) string, profile style.Profile, habits []string) {
	blockHeading(pdf, profile, "Habit Tracker")

	pdf.SetFont(profile.Font, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(128, 128, 128)
	pdf.CellFormat(contentW-25, scheduleRowH, "Habit", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, scheduleRowH, "Done", "1", 1, "C", true, 0, "")

	pdf.SetFont(profile.Font, "", 10)
	for _, habit := range habits {
		pdf.CellFormat(contentW-25, scheduleRowH, tr(habit), "1", 0, "L", false, 0, "")
		checkboxCell(pdf, 25, scheduleRowH)
		pdf.Ln(scheduleRowH)
	}
	pdf.Ln(5)
}

func notesBlock(pdf *fpdf.Fpdf, profile style.Profile) {
	blockHeading(pdf, profile, "Notes")

	pdf.SetDrawColor(128, 128, 128)
	x, y := pdf.GetXY()
	pdf.Rect(x, y, contentW, 80, "D")
	pdf.SetY(y + 80)
	pdf.Ln(5)
}

func blockHeading(pdf *fpdf.Fpdf, profile style.Profile, title string) {
	r, g, b := hexToRGB(profile.PrimaryColor)
	pdf.SetFont(profile.Font, "B", 14)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(contentW, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// checkboxCell draws a bordered cell containing a small empty square.
func checkboxCell(pdf *fpdf.Fpdf, w, h float64) {
	x, y := pdf.GetXY()
	pdf.CellFormat(w, h, "", "1", 0, "C", false, 0, "")
	const box = 3.5
	pdf.Rect(x+(w-box)/2, y+(h-box)/2, box, box, "D")
}

// hexToRGB parses a #RRGGBB color. Malformed values come back black.
func hexToRGB(hex string) (int, int, int) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

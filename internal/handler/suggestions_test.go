package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkravets/planik/internal/logging"
	"github.com/mkravets/planik/internal/model"
)

func decodeSuggestions(t *testing.T, rec *httptest.ResponseRecorder) []model.Suggestion {
	t.Helper()
	var resp struct {
		Suggestions []model.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp.Suggestions
}

func TestSuggestEmptyPrompt(t *testing.T) {
	h := NewSuggestionsHandler(newTestSettings(t), logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.Suggest, "/api/ai-suggestions", `{"prompt":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSuggestUnknownProvider(t *testing.T) {
	h := NewSuggestionsHandler(newTestSettings(t), logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.Suggest, "/api/ai-suggestions", `{"prompt":"fitness","provider":"bard"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSuggestUnconfiguredProvider(t *testing.T) {
	h := NewSuggestionsHandler(newTestSettings(t), logging.New(&bytes.Buffer{}, "error"))

	// defaults to openai, which has no key stored
	rec := postJSON(t, h.Suggest, "/api/ai-suggestions", `{"prompt":"fitness planner"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSuggestKeywordFallback(t *testing.T) {
	settings := newTestSettings(t)
	settings.SaveProviderCredentials("openai", "sk-test", "", "")

	h := NewSuggestionsHandler(settings, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.Suggest, "/api/ai-suggestions", `{"prompt":"planner for my gym sessions","provider":"openai"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	got := decodeSuggestions(t, rec)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}
	if got[0].Title != "Add Workout Log" {
		t.Errorf("first title = %q", got[0].Title)
	}
}

func TestSuggestLMStudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply := `[{"title":"Water Tracker","description":"Track hydration."}]`
		data, _ := json.Marshal(reply)
		w.Write([]byte(`{"choices":[{"message":{"content":` + string(data) + `}}]}`))
	}))
	defer srv.Close()

	settings := newTestSettings(t)
	settings.Set("lmstudio_base_url", srv.URL)

	h := NewSuggestionsHandler(settings, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.Suggest, "/api/ai-suggestions", `{"prompt":"hydration","provider":"lmstudio"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	got := decodeSuggestions(t, rec)
	if len(got) != 1 || got[0].Title != "Water Tracker" {
		t.Errorf("suggestions = %+v", got)
	}
}

func TestSuggestLMStudioUnreachable(t *testing.T) {
	settings := newTestSettings(t)
	settings.Set("lmstudio_base_url", "http://127.0.0.1:1/v1")

	h := NewSuggestionsHandler(settings, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.Suggest, "/api/ai-suggestions", `{"prompt":"anything","provider":"lmstudio"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

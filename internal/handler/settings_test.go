package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkravets/planik/internal/database"
	"github.com/mkravets/planik/internal/logging"
	"github.com/mkravets/planik/internal/store"
)

func newTestSettings(t *testing.T) *store.SettingsStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return store.NewSettingsStore(db)
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeKeyResponse(t *testing.T, rec *httptest.ResponseRecorder) keyResponse {
	t.Helper()
	var resp keyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}

func TestSaveKey(t *testing.T) {
	settings := newTestSettings(t)
	h := NewSettingsHandler(settings, nil, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.SaveKey, "/api/settings/save-key",
		`{"provider":"openai","api_key":"sk-test","base_url":"https://proxy.example/v1","model":"gpt-4"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeKeyResponse(t, rec)
	if !resp.Success {
		t.Error("Success = false")
	}
	if resp.Message != "API key for openai saved successfully" {
		t.Errorf("Message = %q", resp.Message)
	}

	key, ok := settings.ProviderAPIKey("openai")
	if !ok || key != "sk-test" {
		t.Errorf("stored key = %q, %v", key, ok)
	}
	if got := settings.ProviderModel("openai"); got != "gpt-4" {
		t.Errorf("stored model = %q", got)
	}
}

func TestSaveKeyMissingFields(t *testing.T) {
	h := NewSettingsHandler(newTestSettings(t), nil, logging.New(&bytes.Buffer{}, "error"))

	for _, body := range []string{
		`{}`,
		`{"provider":"openai"}`,
		`{"api_key":"sk-test"}`,
		`{"provider":"openai","api_key":"   "}`,
	} {
		rec := postJSON(t, h.SaveKey, "/api/settings/save-key", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestSaveKeyUnknownProvider(t *testing.T) {
	h := NewSettingsHandler(newTestSettings(t), nil, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.SaveKey, "/api/settings/save-key", `{"provider":"bard","api_key":"k"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTestKeyHostedProviderWithKey(t *testing.T) {
	h := NewSettingsHandler(newTestSettings(t), nil, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.TestKey, "/api/settings/test-key", `{"provider":"anthropic","api_key":"sk-ant"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeKeyResponse(t, rec)
	if resp.Message != "API key for anthropic is valid" {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestTestKeyHostedProviderWithoutKey(t *testing.T) {
	h := NewSettingsHandler(newTestSettings(t), nil, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.TestKey, "/api/settings/test-key", `{"provider":"anthropic"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestTestKeyLMStudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"Hi"}}]}`))
	}))
	defer srv.Close()

	h := NewSettingsHandler(newTestSettings(t), nil, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.TestKey, "/api/settings/test-key",
		`{"provider":"lmstudio","base_url":"`+srv.URL+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeKeyResponse(t, rec)
	if resp.Message != "Successfully connected to LM Studio" {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestTestKeyLMStudioUnreachable(t *testing.T) {
	h := NewSettingsHandler(newTestSettings(t), nil, logging.New(&bytes.Buffer{}, "error"))

	rec := postJSON(t, h.TestKey, "/api/settings/test-key",
		`{"provider":"lmstudio","base_url":"http://127.0.0.1:1/v1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

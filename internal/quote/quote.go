// Package quote fetches inspirational quotes for planner cover pages.
package quote

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// defaultQuotes are served whenever the remote quote service is unavailable.
var defaultQuotes = []string{
	`"The future depends on what you do today." - Mahatma Gandhi`,
	`"The only way to do great work is to love what you do." - Steve Jobs`,
	`"Believe you can and you're halfway there." - Theodore Roosevelt`,
}

// Service fetches a random quote from a Quotable-style API.
type Service struct {
	client  *http.Client
	baseURL string
}

func NewService() *Service {
	return &Service{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.quotable.io/random",
	}
}

type apiResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Random returns a formatted quote. A failed or malformed remote call falls
// back to a fixed local quote; Random never returns an error.
func (s *Service) Random() string {
	q, err := s.fetch()
	if err != nil {
		return defaultQuotes[rand.Intn(len(defaultQuotes))]
	}
	return q
}

func (s *Service) fetch() (string, error) {
	resp, err := s.client.Get(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("quote API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode quote response: %w", err)
	}
	if apiResp.Content == "" {
		return "", fmt.Errorf("quote API returned empty content")
	}

	return fmt.Sprintf(`"%s" - %s`, apiResp.Content, apiResp.Author), nil
}

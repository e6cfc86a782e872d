// Package weather fetches the city forecast shown on the planner form page.
// The upstream is an OpenWeatherMap-style forecast API, treated as opaque.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Config holds weather service configuration from environment variables.
// An empty APIKey leaves the service unconfigured; callers get no forecast
// and no error.
type Config struct {
	APIKey string
	City   string
}

// Forecast is one forecast slot from the upstream service.
type Forecast struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
}

// Service fetches weather forecasts.
type Service struct {
	config  Config
	client  *http.Client
	baseURL string
}

func NewService(cfg Config) *Service {
	return &Service{
		config:  cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.openweathermap.org/data/2.5/forecast",
	}
}

// Configured reports whether an API key and city are set.
func (s *Service) Configured() bool {
	return s.config.APIKey != "" && s.config.City != ""
}

type apiResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// GetForecast returns upcoming forecast slots for the configured city, or
// nil when the service is unconfigured or the upstream call fails. It never
// returns an error; the planner page simply omits the forecast.
func (s *Service) GetForecast() []Forecast {
	if !s.Configured() {
		return nil
	}

	forecasts, err := s.fetch()
	if err != nil {
		return nil
	}
	return forecasts
}

func (s *Service) fetch() ([]Forecast, error) {
	params := url.Values{}
	params.Set("q", s.config.City)
	params.Set("appid", s.config.APIKey)
	params.Set("units", "metric")

	resp, err := s.client.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("weather API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	forecasts := make([]Forecast, 0, len(apiResp.List))
	for _, slot := range apiResp.List {
		f := Forecast{
			Time:        slot.DtTxt,
			Temperature: slot.Main.Temp,
		}
		if len(slot.Weather) > 0 {
			f.Description = slot.Weather[0].Description
		}
		forecasts = append(forecasts, f)
	}
	return forecasts, nil
}

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mkravets/planik/internal/provider"
)

// SettingsStore persists key-value settings, chiefly provider credentials.
// Keys follow the <provider>_api_key / <provider>_base_url /
// <provider>_model scheme. Writes are last-writer-wins.
type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("setting %q not found", key)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *SettingsStore) GetAll() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("get all settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (s *SettingsStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// SaveProviderCredentials stores the API key for a provider, plus the base
// URL and model when supplied. The provider must be registered.
func (s *SettingsStore) SaveProviderCredentials(providerID, apiKey, baseURL, modelName string) error {
	if !provider.Known(providerID) {
		return fmt.Errorf("unknown provider %q", providerID)
	}
	if err := s.Set(providerID+"_api_key", apiKey); err != nil {
		return err
	}
	if baseURL != "" {
		if err := s.Set(providerID+"_base_url", baseURL); err != nil {
			return err
		}
	}
	if modelName != "" {
		if err := s.Set(providerID+"_model", modelName); err != nil {
			return err
		}
	}
	return nil
}

// ProviderAPIKey returns the stored API key for a provider, and whether one
// is set.
func (s *SettingsStore) ProviderAPIKey(providerID string) (string, bool) {
	key, err := s.Get(providerID + "_api_key")
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

// ProviderBaseURL returns the stored base URL for a provider, falling back
// to the registry default.
func (s *SettingsStore) ProviderBaseURL(providerID string) string {
	if url, err := s.Get(providerID + "_base_url"); err == nil && url != "" {
		return url
	}
	p, _ := provider.Get(providerID)
	return p.DefaultBaseURL
}

// ProviderModel returns the stored model for a provider, falling back to
// the registry's first model.
func (s *SettingsStore) ProviderModel(providerID string) string {
	if m, err := s.Get(providerID + "_model"); err == nil && m != "" {
		return m
	}
	return provider.DefaultModel(providerID)
}

// ProviderConfigured reports whether the provider can be used: either it
// does not require a key, or a key is stored.
func (s *SettingsStore) ProviderConfigured(providerID string) bool {
	p, ok := provider.Get(providerID)
	if !ok {
		return false
	}
	if !p.RequiresKey {
		return true
	}
	_, set := s.ProviderAPIKey(providerID)
	return set
}

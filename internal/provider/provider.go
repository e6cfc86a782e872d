// Package provider holds the static registry of supported AI chat providers.
// The registry is loaded once from an embedded YAML catalog.
package provider

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed providers.yml
var catalogYAML []byte

// Provider describes one chat-completion service.
type Provider struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	RequiresKey    bool     `yaml:"requires_key"`
	DefaultBaseURL string   `yaml:"default_base_url"`
	Models         []string `yaml:"models"`
}

type catalog struct {
	Providers []Provider `yaml:"providers"`
}

var (
	providers []Provider
	byID      map[string]Provider
)

func init() {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		panic(fmt.Sprintf("provider: parse embedded catalog: %v", err))
	}
	providers = c.Providers
	byID = make(map[string]Provider, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
	}
}

// All returns every registered provider in catalog order.
func All() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

// Get returns the provider with the given id.
func Get(id string) (Provider, bool) {
	p, ok := byID[id]
	return p, ok
}

// Known reports whether id names a registered provider.
func Known(id string) bool {
	_, ok := byID[id]
	return ok
}

// DefaultModel returns the first catalog model for the provider, or "" if
// the provider is unknown or lists none.
func DefaultModel(id string) string {
	p, ok := byID[id]
	if !ok || len(p.Models) == 0 {
		return ""
	}
	return p.Models[0]
}

// MaskKey renders an API key for display: first and last four characters
// with the middle starred. Short keys are fully starred.
func MaskKey(key string) string {
	if len(key) > 8 {
		return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
	}
	return "********"
}

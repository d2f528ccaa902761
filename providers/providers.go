/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package providers

import (
	"errors"
	"fmt"
	"os"
)

// Family selects the wire protocol used to reach a backend.
type Family string

const (
	// FamilyOpenAI covers OpenAI itself and any backend speaking the OpenAI
	// chat-completions protocol behind an alternate base URL.
	FamilyOpenAI Family = "openai"
	// FamilyAnthropic covers backends speaking the Anthropic messages protocol.
	FamilyAnthropic Family = "anthropic"
)

// DefaultMaxTokens is the response token budget used when a provider does not
// configure one. Message-style backends require an explicit cap.
const DefaultMaxTokens = 1000

// Provider describes one LLM backend: identity, model, protocol family, and how
// to resolve its credential. Values are immutable once registered.
type Provider struct {
	// Name is the display identifier, unique within a registry. Rankings and
	// aggregation key on it.
	Name string `yaml:"name"`

	// Model is the backend-specific model identifier.
	Model string `yaml:"model"`

	// Family selects the wire protocol.
	Family Family `yaml:"family"`

	// EnvVar names the environment variable holding the API key. Empty means
	// no environment lookup is attempted.
	EnvVar string `yaml:"env_var,omitempty"`

	// APIKey is a literal credential. It takes precedence over EnvVar.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL overrides the default endpoint for OpenAI-protocol-compatible
	// third-party backends.
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxTokens caps response length for families that require an explicit
	// budget. Zero means DefaultMaxTokens.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// NoAuth marks a provider that is allowed to run without any credential,
	// such as a local endpoint.
	NoAuth bool `yaml:"no_auth,omitempty"`

	// Optional downgrades a missing credential from a warning to a note in the
	// startup credential report.
	Optional bool `yaml:"optional,omitempty"`
}

// HasCredential reports whether a credential can be resolved for p. It never
// performs network I/O: a literal key counts, otherwise a non-empty value of
// the named environment variable. A provider with no credential source at all
// is available only when explicitly marked NoAuth.
func (p Provider) HasCredential() bool {
	if p.APIKey != "" {
		return true
	}
	if p.EnvVar == "" {
		return p.NoAuth
	}
	return os.Getenv(p.EnvVar) != ""
}

// Credential resolves the effective API key. The literal value wins over the
// environment lookup. Empty means no credential resolved.
func (p Provider) Credential() string {
	if p.APIKey != "" {
		return p.APIKey
	}
	if p.EnvVar == "" {
		return ""
	}
	return os.Getenv(p.EnvVar)
}

// ResponseTokenBudget returns the configured response token budget, falling
// back to DefaultMaxTokens.
func (p Provider) ResponseTokenBudget() int {
	if p.MaxTokens > 0 {
		return p.MaxTokens
	}
	return DefaultMaxTokens
}

// Registry is an ordered, validated set of providers.
type Registry struct {
	providers []Provider
}

// New validates the given providers and returns a Registry preserving their
// order. Duplicate names and unknown families indicate a configuration bug and
// fail construction.
func New(provs ...Provider) (*Registry, error) {
	seen := make(map[string]bool, len(provs))
	for _, p := range provs {
		if p.Name == "" {
			return nil, errors.New("provider with empty name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate provider name %q", p.Name)
		}
		seen[p.Name] = true

		switch p.Family {
		case FamilyOpenAI, FamilyAnthropic:
		default:
			return nil, fmt.Errorf("provider %q: unknown family %q", p.Name, p.Family)
		}
	}
	return &Registry{providers: append([]Provider(nil), provs...)}, nil
}

// MustNew is New that panics on invalid configuration. Use for static
// registries known at compile time.
func MustNew(provs ...Provider) *Registry {
	r, err := New(provs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	return append([]Provider(nil), r.providers...)
}

// Available returns the subset of providers that currently resolve a
// credential, in registration order.
func (r *Registry) Available() []Provider {
	var avail []Provider
	for _, p := range r.providers {
		if p.HasCredential() {
			avail = append(avail, p)
		}
	}
	return avail
}

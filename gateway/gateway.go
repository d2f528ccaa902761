/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"

	"chainguard.dev/arena/providers"
)

// Querier is the single capability the rest of the arena needs from a backend:
// send one prompt, get text back or nothing.
type Querier interface {
	// Query sends prompt to p as a single-turn user message and returns the
	// first completion's text. ok is false when the provider produced no
	// answer: either its declared credential did not resolve (skip, not fail)
	// or the backend replied with empty content. err reports transport faults,
	// and an UnknownFamilyError for providers whose family has no dispatch
	// path.
	Query(ctx context.Context, p providers.Provider, prompt string) (answer string, ok bool, err error)
}

// UnknownFamilyError reports a provider whose family has no dispatch path.
// It indicates a registry/configuration bug, so unlike every other per-call
// fault it is meant to propagate rather than be downgraded to "no answer".
type UnknownFamilyError struct {
	Provider string
	Family   providers.Family
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("provider %q: unknown family %q", e.Provider, e.Family)
}

// clientKey identifies one cached client. Clients must never be shared across
// distinct (endpoint, credential) pairs.
type clientKey struct {
	baseURL string
	apiKey  string
}

// Gateway issues single-turn backend queries, caching SDK clients per
// (endpoint, credential) pair so repeated calls reuse connections. The zero
// value is not usable; construct with New. Safe for concurrent use.
type Gateway struct {
	mu               sync.Mutex
	openaiClients    map[clientKey]openai.Client
	anthropicClients map[string]anthropic.Client
}

// New returns a Gateway with empty client caches.
func New() *Gateway {
	return &Gateway{
		openaiClients:    make(map[clientKey]openai.Client),
		anthropicClients: make(map[string]anthropic.Client),
	}
}

// Reset drops all cached clients. Call between independent runs or in tests.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.openaiClients)
	clear(g.anthropicClients)
}

// Query implements Querier.
func (g *Gateway) Query(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
	apiKey := p.Credential()
	if apiKey == "" && p.EnvVar != "" {
		// The provider declares a credential source that did not resolve.
		// Missing credentials are not exceptional: skip, not fail.
		return "", false, nil
	}

	switch p.Family {
	case providers.FamilyOpenAI:
		return g.queryOpenAI(ctx, p, apiKey, prompt)
	case providers.FamilyAnthropic:
		return g.queryAnthropic(ctx, p, apiKey, prompt)
	default:
		return "", false, &UnknownFamilyError{Provider: p.Name, Family: p.Family}
	}
}

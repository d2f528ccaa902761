/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"chainguard.dev/arena/providers"
)

// anthropicClient returns a cached client for the given credential, creating
// one on first use. Anthropic has no endpoint override, so the credential
// alone keys the cache.
func (g *Gateway) anthropicClient(apiKey string) anthropic.Client {
	g.mu.Lock()
	defer g.mu.Unlock()

	if client, ok := g.anthropicClients[apiKey]; ok {
		return client
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	g.anthropicClients[apiKey] = client
	return client
}

// queryAnthropic sends a single-turn message and returns the first content
// block's text. The messages protocol requires an explicit max-tokens budget,
// which comes from the provider descriptor.
func (g *Gateway) queryAnthropic(ctx context.Context, p providers.Provider, apiKey, prompt string) (string, bool, error) {
	client := g.anthropicClient(apiKey)

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.Model),
		MaxTokens: int64(p.ResponseTokenBudget()),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("querying %s: %w", p.Name, err)
	}

	if len(message.Content) == 0 {
		return "", false, nil
	}
	text := message.Content[0].Text
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"chainguard.dev/arena/providers"
)

// openaiClient returns a cached client for the given endpoint and credential,
// creating one on first use.
func (g *Gateway) openaiClient(baseURL, apiKey string) openai.Client {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := clientKey{baseURL: baseURL, apiKey: apiKey}
	if client, ok := g.openaiClients[key]; ok {
		return client
	}

	var opts []option.RequestOption
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client := openai.NewClient(opts...)
	g.openaiClients[key] = client
	return client
}

// queryOpenAI sends a single-turn chat completion and returns the first
// choice's message content. Empty content means the backend declined to
// answer, not a failure.
func (g *Gateway) queryOpenAI(ctx context.Context, p providers.Provider, apiKey, prompt string) (string, bool, error) {
	client := g.openaiClient(p.BaseURL, apiKey)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("querying %s: %w", p.Name, err)
	}

	if len(completion.Choices) == 0 {
		return "", false, nil
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", false, nil
	}
	return content, true, nil
}

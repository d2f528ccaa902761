/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"chainguard.dev/arena/providers"
)

func TestQuerySkipsUnresolvedCredential(t *testing.T) {
	g := New()

	// Declared credential source that does not resolve: absent, not an error.
	answer, ok, err := g.Query(context.Background(), providers.Provider{
		Name:   "p",
		Model:  "m",
		Family: providers.FamilyOpenAI,
		EnvVar: "ARENA_TEST_KEY_DOES_NOT_EXIST",
	}, "hello")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, answer)
}

func TestQueryUnknownFamily(t *testing.T) {
	g := New()

	_, _, err := g.Query(context.Background(), providers.Provider{
		Name:   "p",
		Model:  "m",
		Family: providers.Family("telepathy"),
		APIKey: "sk-test",
	}, "hello")

	var unknown *UnknownFamilyError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "p", unknown.Provider)
	require.Equal(t, providers.Family("telepathy"), unknown.Family)
}

func TestClientCacheKeying(t *testing.T) {
	g := New()

	g.openaiClient("", "key-a")
	g.openaiClient("", "key-a")
	require.Len(t, g.openaiClients, 1, "same (endpoint, credential) pair must reuse one client")

	g.openaiClient("", "key-b")
	g.openaiClient("https://api.groq.com/openai/v1", "key-a")
	require.Len(t, g.openaiClients, 3, "distinct pairs must not share clients")

	g.anthropicClient("key-a")
	g.anthropicClient("key-a")
	require.Len(t, g.anthropicClients, 1)

	g.Reset()
	require.Empty(t, g.openaiClients)
	require.Empty(t, g.anthropicClients)
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package providers

// Default returns the stock provider roster: the two OpenAI models that anchor
// the arena plus every OpenAI-protocol-compatible backend we route through an
// alternate base URL.
func Default() *Registry {
	return MustNew(
		Provider{
			Name:   "GPT-5.2",
			Model:  "gpt-5.2",
			Family: FamilyOpenAI,
			EnvVar: "OPENAI_API_KEY",
		},
		Provider{
			Name:   "GPT-5-mini",
			Model:  "gpt-5-mini",
			Family: FamilyOpenAI,
			EnvVar: "OPENAI_API_KEY",
		},
		Provider{
			Name:     "Claude Opus 4.6",
			Model:    "claude-opus-4-6",
			Family:   FamilyAnthropic,
			EnvVar:   "ANTHROPIC_API_KEY",
			Optional: true,
		},
		Provider{
			Name:     "Gemini 3.0 Flash",
			Model:    "gemini-3.0-flash",
			Family:   FamilyOpenAI,
			EnvVar:   "GOOGLE_API_KEY",
			BaseURL:  "https://generativelanguage.googleapis.com/v1beta/openai/",
			Optional: true,
		},
		Provider{
			Name:     "DeepSeek Chat",
			Model:    "deepseek-chat",
			Family:   FamilyOpenAI,
			EnvVar:   "DEEPSEEK_API_KEY",
			BaseURL:  "https://api.deepseek.com/v1",
			Optional: true,
		},
		Provider{
			Name:     "Groq GPT-OSS-120B",
			Model:    "openai/gpt-oss-120b",
			Family:   FamilyOpenAI,
			EnvVar:   "GROQ_API_KEY",
			BaseURL:  "https://api.groq.com/openai/v1",
			Optional: true,
		},
	)
}

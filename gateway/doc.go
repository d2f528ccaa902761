/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package gateway turns a provider descriptor plus a prompt into text from the
// backend, abstracting over the supported wire protocols.
//
// The Gateway owns credential resolution and an explicit client cache keyed by
// (endpoint, credential); callers receive it by injection rather than through
// a global, and tests can clear it with Reset. Missing credentials produce "no
// answer" rather than an error — only an unknown provider family, which means
// the registry and the dispatch table disagree, propagates.
package gateway

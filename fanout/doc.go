/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package fanout issues one backend query per provider in parallel and joins
// the results in input order. Per-call faults stay per-call: a slow or broken
// provider costs the batch nothing but its own slot.
package fanout

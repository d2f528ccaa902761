/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package providers defines the backend roster for an arena run: which models
// to query, over which wire protocol, and how each one authenticates.
//
// A Registry is an ordered, validated list of Provider descriptors. Credential
// resolution is purely local (a literal key or an environment variable); no
// network I/O happens here. Default returns the stock roster, and Load reads a
// roster from a YAML file with ${VAR} expansion for keys that should not live
// in the file itself.
package providers

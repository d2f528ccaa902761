/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package providers

import (
	"context"
	"os"

	"github.com/chainguard-dev/clog"
)

// LogCredentialStatus logs the resolution status of every unique credential
// environment variable across the registry. Missing credentials on optional
// providers log at info, required ones at warning. No network I/O.
func (r *Registry) LogCredentialStatus(ctx context.Context) {
	log := clog.FromContext(ctx)
	seen := make(map[string]bool)
	for _, p := range r.providers {
		if p.EnvVar == "" || seen[p.EnvVar] {
			continue
		}
		seen[p.EnvVar] = true

		switch {
		case os.Getenv(p.EnvVar) != "":
			log.With("env_var", p.EnvVar).Info("credential is set")
		case p.Optional:
			log.With("env_var", p.EnvVar).Info("credential not set (optional)")
		default:
			log.With("env_var", p.EnvVar).Warn("credential not set")
		}
	}
}

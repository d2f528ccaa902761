/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package fanout

import (
	"context"
	"errors"
	"time"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"

	"chainguard.dev/arena/gateway"
	"chainguard.dev/arena/providers"
)

// DefaultTimeout bounds each individual backend call.
const DefaultTimeout = 30 * time.Second

// Result pairs one provider with the outcome of its query.
type Result struct {
	Provider providers.Provider

	// Answer is the backend's reply. Empty when the provider was skipped,
	// failed, or declined to answer.
	Answer string

	// Skipped is true when the provider had no resolvable credential and was
	// never dispatched.
	Skipped bool

	// Err records a per-call failure. A timeout satisfies
	// errors.Is(Err, context.DeadlineExceeded).
	Err error
}

// Answered reports whether this provider produced an answer.
func (r Result) Answered() bool {
	return !r.Skipped && r.Err == nil && r.Answer != ""
}

// QueryAll sends prompt to every provider that currently resolves a
// credential, concurrently, bounding each call by timeout (DefaultTimeout when
// zero or negative). Credential-less providers are recorded as skipped and
// never queried.
//
// One provider's timeout or failure never cancels its siblings: each fault is
// captured in that provider's Result and the batch completes once every
// dispatched call has returned. Results preserve the input provider order
// regardless of completion order. The only batch-level error is an unknown
// provider family, which indicates a configuration bug rather than a runtime
// fault.
func QueryAll(ctx context.Context, q gateway.Querier, provs []providers.Provider, prompt string, timeout time.Duration) ([]Result, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := clog.FromContext(ctx)

	results := make([]Result, len(provs))
	g := new(errgroup.Group)
	for i, p := range provs {
		i, p := i, p
		results[i].Provider = p
		if !p.HasCredential() {
			results[i].Skipped = true
			log.With("provider", p.Name).Info("skipping provider without credential")
			continue
		}

		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			answer, ok, err := q.Query(callCtx, p, prompt)
			if err != nil {
				var unknown *gateway.UnknownFamilyError
				if errors.As(err, &unknown) {
					return err
				}
				if errors.Is(err, context.DeadlineExceeded) {
					log.With("provider", p.Name).
						With("timeout", timeout).
						Warn("provider timed out")
				} else {
					log.With("provider", p.Name).
						With("error", err.Error()).
						Warn("provider query failed")
				}
				results[i].Err = err
				return nil
			}
			if ok {
				results[i].Answer = answer
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package arena

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/arena/fanout"
	"chainguard.dev/arena/gateway"
	"chainguard.dev/arena/judging"
	"chainguard.dev/arena/providers"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	// OutcomeJudged means at least two competitors answered and judging ran.
	OutcomeJudged Outcome = "judged"
	// OutcomeNotEnoughCompetitors means fewer than two providers produced an
	// answer, so there was nothing to judge. Not an error.
	OutcomeNotEnoughCompetitors Outcome = "not_enough_competitors"
)

// SkippedProvider records one provider excluded from a run and why.
type SkippedProvider struct {
	Name   string
	Reason string
}

// Report is the transient state of one arena run. It is built over a single
// Run call and never persisted.
type Report struct {
	Question string
	Outcome  Outcome

	// Competitors lists providers that produced an answer, in registry order.
	Competitors []string
	// Answers is index-aligned with Competitors.
	Answers []string
	// Skipped lists providers excluded from the run, with the reason.
	Skipped []SkippedProvider

	// PerJudge maps judge name to its validated ranking; an abstaining judge
	// maps to an empty ranking. Nil until judging runs.
	PerJudge map[string]judging.Ranking
	// Aggregate is the cross-judge average-position leaderboard, best first.
	// Nil when judging did not run or every judge abstained.
	Aggregate []judging.ScoredEntry
}

// Runner executes arena runs against a provider registry.
type Runner struct {
	registry    *providers.Registry
	querier     gateway.Querier
	timeout     time.Duration
	maxInputLen int
}

// Option configures a Runner.
type Option func(*Runner) error

// WithTimeout sets the per-call timeout for both the competitor and judge
// phases.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		r.timeout = d
		return nil
	}
}

// WithMaxInputLen caps the question and answer lengths fed into the judge
// prompt. Zero disables truncation.
func WithMaxInputLen(n int) Option {
	return func(r *Runner) error {
		if n < 0 {
			return fmt.Errorf("max input length cannot be negative, got %d", n)
		}
		r.maxInputLen = n
		return nil
	}
}

// WithQuerier injects the backend querier. Tests use this to substitute a
// fake; the default is a fresh Gateway.
func WithQuerier(q gateway.Querier) Option {
	return func(r *Runner) error {
		if q == nil {
			return errors.New("querier cannot be nil")
		}
		r.querier = q
		return nil
	}
}

// NewRunner builds a Runner over the given registry.
func NewRunner(registry *providers.Registry, opts ...Option) (*Runner, error) {
	if registry == nil {
		return nil, errors.New("registry cannot be nil")
	}
	r := &Runner{
		registry:    registry,
		querier:     gateway.New(),
		timeout:     fanout.DefaultTimeout,
		maxInputLen: judging.DefaultMaxInputLen,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	return r, nil
}

// Run executes one full arena pass: fan the question out to every available
// provider, retain those that answered as both competitors and judges, then
// have the judges rank the answers and aggregate the votes.
//
// A run with fewer than two answers reports OutcomeNotEnoughCompetitors
// without issuing any judge calls. The only error Run returns is an unknown
// provider family; every environmental fault is downgraded to a missing data
// point in the Report.
func (r *Runner) Run(ctx context.Context, question string) (*Report, error) {
	question = judging.TruncateInput(question, r.maxInputLen)
	report := &Report{Question: question}

	results, err := fanout.QueryAll(ctx, r.querier, r.registry.Providers(), question, r.timeout)
	if err != nil {
		return nil, err
	}

	// Only providers that answered advance; they form both the competitor
	// list and the judge pool.
	var judgePool []providers.Provider
	for _, res := range results {
		switch {
		case res.Answered():
			report.Competitors = append(report.Competitors, res.Provider.Name)
			report.Answers = append(report.Answers, judging.TruncateInput(res.Answer, r.maxInputLen))
			judgePool = append(judgePool, res.Provider)
		case res.Skipped:
			report.Skipped = append(report.Skipped, SkippedProvider{Name: res.Provider.Name, Reason: "no credential"})
		case errors.Is(res.Err, context.DeadlineExceeded):
			report.Skipped = append(report.Skipped, SkippedProvider{Name: res.Provider.Name, Reason: "timed out"})
		case res.Err != nil:
			report.Skipped = append(report.Skipped, SkippedProvider{Name: res.Provider.Name, Reason: "query failed"})
		default:
			report.Skipped = append(report.Skipped, SkippedProvider{Name: res.Provider.Name, Reason: "no answer"})
		}
	}

	if len(report.Competitors) < 2 {
		clog.FromContext(ctx).
			With("competitors", len(report.Competitors)).
			Warn("not enough competitors to judge")
		report.Outcome = OutcomeNotEnoughCompetitors
		return report, nil
	}

	perJudge, aggregate, err := judging.JudgeAll(ctx, r.querier, question, report.Competitors, report.Answers, judgePool, r.timeout)
	if err != nil {
		return nil, err
	}
	report.Outcome = OutcomeJudged
	report.PerJudge = perJudge
	report.Aggregate = aggregate
	return report, nil
}

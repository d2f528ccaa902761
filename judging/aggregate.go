/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judging

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/arena/fanout"
	"chainguard.dev/arena/gateway"
	"chainguard.dev/arena/providers"
)

// ScoredEntry pairs a competitor with its average rank position. Lower is
// better; math.Inf(1) marks a competitor no successful judge ranked.
type ScoredEntry struct {
	Score float64
	Name  string
}

// AverageRankings averages each competitor's assigned position across the
// given rankings and returns one entry per competitor, sorted ascending by
// score. A competitor mentioned by zero rankings scores +Inf and sorts last.
// The sort is stable, so ties keep the relative order of competitors.
func AverageRankings(rankings []Ranking, competitors []string) []ScoredEntry {
	totals := make(map[string]float64, len(competitors))
	counts := make(map[string]int, len(competitors))
	for _, ranking := range rankings {
		for _, entry := range ranking {
			totals[entry.Name] += float64(entry.Position)
			counts[entry.Name]++
		}
	}

	scored := make([]ScoredEntry, 0, len(competitors))
	for _, name := range competitors {
		score := math.Inf(1)
		if counts[name] > 0 {
			score = totals[name] / float64(counts[name])
		}
		scored = append(scored, ScoredEntry{Score: score, Name: name})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
	return scored
}

// JudgeOne has a single provider judge all answers: build the prompt, query
// the backend, validate the reply. A judge whose credential does not resolve
// fails with KindJudgeUnavailable; every validation failure comes back as a
// *VoteError.
func JudgeOne(ctx context.Context, q gateway.Querier, judge providers.Provider, question string, competitors, answers []string) (Ranking, error) {
	prompt := BuildJudgePrompt(question, competitors, answers)

	reply, ok, err := q.Query(ctx, judge, prompt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &VoteError{
			Kind:   KindJudgeUnavailable,
			Detail: fmt.Sprintf("judge %s produced no reply", judge.Name),
		}
	}
	return ParseRanking(reply, competitors)
}

// JudgeAll has every judge rank the answers concurrently, then averages the
// surviving votes.
//
// The judge prompt is built once and fanned out with the same isolation
// guarantee as the competitor phase: a judge that times out, fails, or returns
// an invalid ranking contributes an empty ranking to the per-judge map and is
// excluded from aggregation — it never contributes partial scores. When every
// judge abstains the aggregate is nil, which is distinct from all-tied. The
// only returned error is an unknown provider family.
func JudgeAll(ctx context.Context, q gateway.Querier, question string, competitors, answers []string, judges []providers.Provider, timeout time.Duration) (map[string]Ranking, []ScoredEntry, error) {
	log := clog.FromContext(ctx)
	prompt := BuildJudgePrompt(question, competitors, answers)

	results, err := fanout.QueryAll(ctx, q, judges, prompt, timeout)
	if err != nil {
		return nil, nil, err
	}

	perJudge := make(map[string]Ranking, len(judges))
	successful := make([]Ranking, 0, len(judges))
	for _, res := range results {
		name := res.Provider.Name
		if !res.Answered() {
			// fanout already logged the skip, timeout, or transport failure.
			perJudge[name] = Ranking{}
			continue
		}

		ranking, err := ParseRanking(res.Answer, competitors)
		if err != nil {
			log.With("judge", name).
				With("error", err.Error()).
				Warn("discarding invalid judge vote")
			perJudge[name] = Ranking{}
			continue
		}
		perJudge[name] = ranking
		successful = append(successful, ranking)
	}

	if len(successful) == 0 {
		return perJudge, nil, nil
	}
	return perJudge, AverageRankings(successful, competitors), nil
}

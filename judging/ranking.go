/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judging

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VoteErrorKind classifies why a judge's vote was rejected.
type VoteErrorKind string

const (
	// KindMalformedOutput means the reply did not parse as the expected JSON
	// shape.
	KindMalformedOutput VoteErrorKind = "malformed_judge_output"
	// KindMissingResults means the JSON object lacks the "results" key.
	KindMissingResults VoteErrorKind = "missing_results_key"
	// KindNonIntegerRank means a results entry could not be coerced to an
	// integer.
	KindNonIntegerRank VoteErrorKind = "non_integer_rank"
	// KindRankOutOfRange means a results entry referenced a competitor number
	// outside [1, N].
	KindRankOutOfRange VoteErrorKind = "rank_out_of_range"
	// KindDuplicateCompetitor means a competitor number appeared twice.
	KindDuplicateCompetitor VoteErrorKind = "duplicate_competitor"
	// KindJudgeUnavailable means the judge produced no reply to validate,
	// typically because its credential did not resolve at vote time.
	KindJudgeUnavailable VoteErrorKind = "judge_unavailable"
)

// VoteError reports a rejected judge vote. A rejected vote is discarded whole:
// no partial ranking is ever usable.
type VoteError struct {
	Kind   VoteErrorKind
	Detail string
	// Raw is the judge's reply text, retained for diagnostics.
	Raw string
}

func (e *VoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// RankedEntry assigns one competitor a 1-indexed position.
type RankedEntry struct {
	Position int
	Name     string
}

// Ranking is a best-to-worst ordering of competitors, produced either by one
// judge or by aggregation over judges.
type Ranking []RankedEntry

// ExtractJSON recovers a JSON object candidate from a model reply that may
// wrap it in prose or code fences. Best effort: when nothing object-shaped is
// found the trimmed input comes back as-is, and the downstream parse reports
// the failure. Idempotent on replies that are already bare JSON.
func ExtractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		return trimmed
	}

	// A fenced code block, with or without a language tag. The brace scan
	// inside the fence also skips the tag, since tags carry no braces.
	if open := strings.Index(trimmed, "```"); open >= 0 {
		rest := trimmed[open+3:]
		if closing := strings.Index(rest, "```"); closing >= 0 {
			if span, ok := braceSpan(rest[:closing]); ok {
				return span
			}
		}
	}

	if span, ok := braceSpan(trimmed); ok {
		return span
	}
	return trimmed
}

// braceSpan returns the span from the first '{' to the last '}' in s.
func braceSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// coerceIndex converts one results entry to an integer the way a lenient
// parser would: JSON numbers truncate, numeric strings convert.
func coerceIndex(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// ParseRanking validates one judge's reply against the competitor list and
// returns the full ranking, or a *VoteError describing the first violation.
// The reply must reference each competitor exactly once; duplicates,
// out-of-range numbers, non-integer entries, and omissions all void the vote.
func ParseRanking(text string, competitors []string) (Ranking, error) {
	candidate := ExtractJSON(text)

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, &VoteError{
			Kind:   KindMalformedOutput,
			Detail: fmt.Sprintf("invalid JSON: %v", err),
			Raw:    text,
		}
	}

	raw, ok := payload["results"]
	if !ok {
		return nil, &VoteError{
			Kind:   KindMissingResults,
			Detail: `judge JSON missing "results" key`,
			Raw:    text,
		}
	}

	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, &VoteError{
			Kind:   KindMalformedOutput,
			Detail: fmt.Sprintf(`"results" is not an array: %v`, err),
			Raw:    text,
		}
	}

	n := len(competitors)
	seen := make(map[int]bool, n)
	ranking := make(Ranking, 0, len(values))
	for pos, v := range values {
		num, ok := coerceIndex(v)
		if !ok {
			return nil, &VoteError{
				Kind:   KindNonIntegerRank,
				Detail: fmt.Sprintf("non-integer rank value %v at position %d", v, pos+1),
				Raw:    text,
			}
		}
		idx := num - 1
		if idx < 0 || idx >= n {
			return nil, &VoteError{
				Kind:   KindRankOutOfRange,
				Detail: fmt.Sprintf("rank %d out of range [1, %d]", num, n),
				Raw:    text,
			}
		}
		if seen[idx] {
			return nil, &VoteError{
				Kind:   KindDuplicateCompetitor,
				Detail: fmt.Sprintf("competitor %d ranked more than once", num),
				Raw:    text,
			}
		}
		seen[idx] = true
		ranking = append(ranking, RankedEntry{Position: pos + 1, Name: competitors[idx]})
	}

	if len(ranking) != n {
		return nil, &VoteError{
			Kind:   KindMalformedOutput,
			Detail: fmt.Sprintf("ranking mentions %d of %d competitors", len(ranking), n),
			Raw:    text,
		}
	}
	return ranking, nil
}

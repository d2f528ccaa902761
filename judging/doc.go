/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package judging implements the arena's judging pipeline: render one prompt
embedding the question and every competitor answer, have each judge rank the
answers, validate the semi-structured replies into strict permutations, and
average the surviving votes into a single leaderboard.

Model replies are hostile input twice over. The prompt builder delimits
question and answer content and instructs judges to ignore instructions inside
the delimiters. The validator accepts JSON wrapped in prose or code fences but
rejects any vote that is not a duplicate-free, in-range, complete ranking — a
rejected vote is discarded whole, never partially counted.

Aggregation tolerates partial failure: judges that time out, error, or return
garbage abstain, and the average runs over whoever is left. Ties keep
competitor order, and a competitor no judge ranked sorts last with a +Inf
sentinel score.
*/
package judging

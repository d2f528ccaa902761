/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main is a line-oriented front-end for the arena: it reads one
// question, runs the competition, and prints the leaderboard. It consumes only
// the core entry points (provider availability, the fan-out query, and
// judging).
package main

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"chainguard.dev/arena"
	"chainguard.dev/arena/providers"
)

type config struct {
	// ProvidersFile points at a YAML provider roster; empty uses the stock one.
	ProvidersFile string `env:"ARENA_PROVIDERS"`

	QueryTimeout time.Duration `env:"ARENA_QUERY_TIMEOUT,default=30s"`
	MaxInputLen  int           `env:"ARENA_MAX_INPUT_LENGTH,default=2000"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Credentials commonly live in a local .env during development. Absence is
	// fine; the environment may already be populated.
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	registry := providers.Default()
	if cfg.ProvidersFile != "" {
		var err error
		registry, err = providers.Load(cfg.ProvidersFile)
		if err != nil {
			clog.FatalContextf(ctx, "loading providers: %v", err)
		}
	}
	registry.LogCredentialStatus(ctx)

	question := strings.Join(os.Args[1:], " ")
	if strings.TrimSpace(question) == "" {
		fmt.Print("Question: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			clog.FatalContextf(ctx, "reading question: %v", scanner.Err())
		}
		question = scanner.Text()
	}
	if strings.TrimSpace(question) == "" {
		clog.FatalContextf(ctx, "no question given")
	}

	runner, err := arena.NewRunner(registry,
		arena.WithTimeout(cfg.QueryTimeout),
		arena.WithMaxInputLen(cfg.MaxInputLen),
	)
	if err != nil {
		clog.FatalContextf(ctx, "building runner: %v", err)
	}

	report, err := runner.Run(ctx, question)
	if err != nil {
		clog.FatalContextf(ctx, "running arena: %v", err)
	}

	printReport(report)
}

func printReport(report *arena.Report) {
	for _, skipped := range report.Skipped {
		fmt.Printf("skipped %s: %s\n", skipped.Name, skipped.Reason)
	}

	if report.Outcome == arena.OutcomeNotEnoughCompetitors {
		fmt.Printf("cannot judge: only %d provider(s) answered\n", len(report.Competitors))
		return
	}

	fmt.Printf("\nAnswers from %d competitors:\n", len(report.Competitors))
	for i, name := range report.Competitors {
		fmt.Printf("\n== %s ==\n%s\n", name, report.Answers[i])
	}

	if len(report.Aggregate) == 0 {
		fmt.Println("\nno ranking: every judge abstained")
		return
	}

	fmt.Println("\nLeaderboard (average rank, lower is better):")
	for i, entry := range report.Aggregate {
		if math.IsInf(entry.Score, 1) {
			fmt.Printf("%2d. %s (unranked)\n", i+1, entry.Name)
			continue
		}
		fmt.Printf("%2d. %s (%.2f)\n", i+1, entry.Name, entry.Score)
	}
}

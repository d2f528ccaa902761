/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package fanout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"chainguard.dev/arena/gateway"
	"chainguard.dev/arena/providers"
)

// querierFunc adapts a function to gateway.Querier.
type querierFunc func(ctx context.Context, p providers.Provider, prompt string) (string, bool, error)

func (f querierFunc) Query(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
	return f(ctx, p, prompt)
}

func prov(name string) providers.Provider {
	return providers.Provider{Name: name, Model: "m", Family: providers.FamilyOpenAI, APIKey: "sk-" + name}
}

func TestQueryAllPreservesOrder(t *testing.T) {
	// Completion order is reversed by per-provider delays; result order must
	// still match input order.
	q := querierFunc(func(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
		switch p.Name {
		case "slow":
			time.Sleep(50 * time.Millisecond)
		case "medium":
			time.Sleep(20 * time.Millisecond)
		}
		return "answer from " + p.Name, true, nil
	})

	provs := []providers.Provider{prov("slow"), prov("medium"), prov("fast")}
	results, err := QueryAll(context.Background(), q, provs, "q", time.Second)
	if err != nil {
		t.Fatalf("QueryAll() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"slow", "medium", "fast"} {
		if results[i].Provider.Name != want {
			t.Errorf("results[%d] = %q, want %q", i, results[i].Provider.Name, want)
		}
		if got := "answer from " + want; results[i].Answer != got {
			t.Errorf("results[%d].Answer = %q, want %q", i, results[i].Answer, got)
		}
	}
}

func TestQueryAllSkipsWithoutCredential(t *testing.T) {
	var queried []string
	q := querierFunc(func(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
		queried = append(queried, p.Name)
		return "ok", true, nil
	})

	provs := []providers.Provider{
		prov("has-key"),
		{Name: "no-key", Model: "m", Family: providers.FamilyOpenAI, EnvVar: "ARENA_TEST_KEY_DOES_NOT_EXIST"},
	}
	results, err := QueryAll(context.Background(), q, provs, "q", time.Second)
	if err != nil {
		t.Fatalf("QueryAll() error: %v", err)
	}

	if results[0].Skipped || !results[0].Answered() {
		t.Errorf("credentialed provider: %+v, want answered", results[0])
	}
	if !results[1].Skipped || results[1].Answered() {
		t.Errorf("credential-less provider: %+v, want skipped", results[1])
	}
	if len(queried) != 1 || queried[0] != "has-key" {
		t.Errorf("queried %v, want only the credentialed provider dispatched", queried)
	}
}

func TestQueryAllTimeoutIsolation(t *testing.T) {
	q := querierFunc(func(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
		if p.Name == "hang" {
			<-ctx.Done()
			return "", false, ctx.Err()
		}
		return "quick answer", true, nil
	})

	provs := []providers.Provider{prov("hang"), prov("quick")}
	results, err := QueryAll(context.Background(), q, provs, "q", 20*time.Millisecond)
	if err != nil {
		t.Fatalf("QueryAll() error: %v", err)
	}

	if !errors.Is(results[0].Err, context.DeadlineExceeded) {
		t.Errorf("hanging provider Err = %v, want deadline exceeded", results[0].Err)
	}
	if results[0].Answered() {
		t.Error("hanging provider reported as answered")
	}
	if !results[1].Answered() || results[1].Answer != "quick answer" {
		t.Errorf("sibling affected by timeout: %+v", results[1])
	}
}

func TestQueryAllFailureIsolation(t *testing.T) {
	q := querierFunc(func(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
		switch p.Name {
		case "broken":
			return "", false, fmt.Errorf("querying %s: connection refused", p.Name)
		case "silent":
			return "", false, nil // backend declined to answer
		}
		return "fine", true, nil
	})

	provs := []providers.Provider{prov("broken"), prov("silent"), prov("healthy")}
	results, err := QueryAll(context.Background(), q, provs, "q", time.Second)
	if err != nil {
		t.Fatalf("QueryAll() error: %v", err)
	}

	if results[0].Err == nil || results[0].Answered() {
		t.Errorf("broken provider: %+v, want captured error", results[0])
	}
	if results[1].Err != nil || results[1].Skipped || results[1].Answered() {
		t.Errorf("silent provider: %+v, want clean no-answer", results[1])
	}
	if !results[2].Answered() {
		t.Errorf("healthy provider: %+v, want answered", results[2])
	}
}

func TestQueryAllUnknownFamilyPropagates(t *testing.T) {
	q := querierFunc(func(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
		return "", false, &gateway.UnknownFamilyError{Provider: p.Name, Family: p.Family}
	})

	_, err := QueryAll(context.Background(), q, []providers.Provider{prov("misconfigured")}, "q", time.Second)
	var unknown *gateway.UnknownFamilyError
	if !errors.As(err, &unknown) {
		t.Fatalf("QueryAll() error = %v, want UnknownFamilyError to propagate", err)
	}
}

func TestQueryAllEmptyProviders(t *testing.T) {
	q := querierFunc(func(ctx context.Context, p providers.Provider, prompt string) (string, bool, error) {
		t.Fatal("querier must not be called")
		return "", false, nil
	})

	results, err := QueryAll(context.Background(), q, nil, "q", time.Second)
	if err != nil {
		t.Fatalf("QueryAll() error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}

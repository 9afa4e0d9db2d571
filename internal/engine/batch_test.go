package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestForEachUser_VisitsEveryUser(t *testing.T) {
	users := make([]string, 20)
	for i := range users {
		users[i] = fmt.Sprintf("user-%d", i)
	}

	var mu sync.Mutex
	seen := make(map[string]bool)

	err := ForEachUser(context.Background(), users, 4, func(_ context.Context, id string) error {
		mu.Lock()
		seen[id] = true
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != len(users) {
		t.Fatalf("visited %d users, want %d", len(seen), len(users))
	}
}

func TestForEachUser_BoundsConcurrency(t *testing.T) {
	users := make([]string, 30)
	for i := range users {
		users[i] = fmt.Sprintf("user-%d", i)
	}

	const limit = 5
	var inFlight, peak atomic.Int32

	err := ForEachUser(context.Background(), users, limit, func(_ context.Context, _ string) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := peak.Load(); p > limit {
		t.Fatalf("observed %d concurrent workers, limit %d", p, limit)
	}
}

func TestForEachUser_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	users := []string{"a", "b", "c", "d"}

	err := ForEachUser(context.Background(), users, 2, func(_ context.Context, id string) error {
		if id == "b" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}
}

func TestForEachUser_ZeroConcurrencyStillRuns(t *testing.T) {
	var count atomic.Int32
	err := ForEachUser(context.Background(), []string{"a", "b"}, 0, func(_ context.Context, _ string) error {
		count.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Load() != 2 {
		t.Fatalf("ran %d times, want 2", count.Load())
	}
}

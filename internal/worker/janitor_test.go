package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopfront/internal/cart"
	"github.com/shopfront/internal/catalog"
	"github.com/shopfront/internal/checkout"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep(time.Duration) int {
	s.calls.Add(1)
	return 0
}

func TestJanitorSweepOnceEvictsIdleEntries(t *testing.T) {
	carts := cart.NewRegistry(catalog.Default().FindByID, nil)
	checkouts := checkout.NewRegistry()
	_ = carts.Get(context.Background(), "anon-1")
	_ = carts.Get(context.Background(), "anon-2")
	_ = checkouts.Get("anon-1")

	time.Sleep(5 * time.Millisecond)
	j := NewJanitor(time.Minute, time.Millisecond, carts, checkouts)
	gotCarts, gotCheckouts := j.SweepOnce()
	if gotCarts != 2 || gotCheckouts != 1 {
		t.Fatalf("want 2/1 evicted got %d/%d", gotCarts, gotCheckouts)
	}
	if carts.Len() != 0 || checkouts.Len() != 0 {
		t.Fatalf("registries should be empty, got %d/%d", carts.Len(), checkouts.Len())
	}
}

func TestJanitorRunsUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewJanitor(time.Millisecond, time.Hour, sweeper, nil)

	done := make(chan error, 1)
	go func() { done <- j.Start(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor did not sweep in time")
		}
		time.Sleep(time.Millisecond)
	}
	if err := j.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	_ = j.Stop(context.Background())
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("janitor did not stop")
	}
}

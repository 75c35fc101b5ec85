package antitamper

import (
	"context"
	"testing"
	"time"
)

func TestNewMonitorInterval(t *testing.T) {
	m := NewMonitor()
	if m.minInterval != 5*time.Second || m.jitter != 5*time.Second {
		t.Fatalf("interval %s + up to %s, want 5s + up to 5s", m.minInterval, m.jitter)
	}
}

func TestMonitorRunsUntilCancelled(t *testing.T) {
	k := &kernel{}
	g := newTestGuard(k.trace, 21)
	m := &Monitor{
		minInterval: time.Millisecond,
		jitter:      time.Millisecond,
		guard:       func() *Guard { return g },
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		m.Start(ctx)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for m.Passes() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d passes within 5 seconds", m.Passes())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}

	if want := m.Passes() * uint64(totalIterations()); g.Count() != want {
		t.Fatalf("Count() = %d, want %d for %d passes", g.Count(), want, m.Passes())
	}
}

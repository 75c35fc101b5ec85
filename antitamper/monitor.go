package antitamper

import (
	"context"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"
)

// Monitor runs the multi-check periodically on a dedicated thread.
type Monitor struct {
	passes atomic.Uint64

	minInterval time.Duration
	jitter      time.Duration
	guard       func() *Guard
}

// NewMonitor creates a Monitor that checks every 5 to 10 seconds.
func NewMonitor() *Monitor {
	return &Monitor{
		minInterval: 5 * time.Second,
		jitter:      5 * time.Second,
		guard:       Current,
	}
}

// Start runs the monitoring loop, locking the calling goroutine to its OS
// thread for the duration. It is usually run in a goroutine of its own.
// Returns when ctx is cancelled; a failed check ends the process instead.
func (m *Monitor) Start(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	g := m.guard()

	// Check immediately at startup before entering the loop.
	g.MultiTraceMeOrDie()
	m.passes.Add(1)

	for {
		// Random interval so the checks cannot be anticipated.
		wait := m.minInterval + time.Duration(rand.Int63n(int64(m.jitter)+1))
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			g.MultiTraceMeOrDie()
			m.passes.Add(1)
		}
	}
}

// Passes returns the number of multi-checks the Monitor has completed.
func (m *Monitor) Passes() uint64 {
	return m.passes.Load()
}

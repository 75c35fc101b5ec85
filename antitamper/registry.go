package antitamper

import (
	"runtime"
	"sync"
	"time"
)

var (
	// guards maps an OS thread ID to a threadEntry. A thread that ends leaves
	// its entry behind; the start time tells a later thread reusing the ID
	// apart from it.
	guards sync.Map

	newThreadGuard = func() *Guard {
		return newGuard(uint32(time.Now().UnixNano()))
	}
)

type threadEntry struct {
	start uint64 // thread start time in clock ticks since boot
	guard *Guard
}

// Current returns the Guard of the calling OS thread, creating it the first
// time the thread asks. The goroutine must stay locked to its thread for as
// long as it uses the result.
func Current() *Guard {
	tid := threadID()
	start := threadStart(tid)
	if v, ok := guards.Load(tid); ok {
		if e := v.(threadEntry); e.start == start {
			return e.guard
		}
	}
	// Only the thread owning tid writes its key, so a plain Store is enough.
	g := newThreadGuard()
	guards.Store(tid, threadEntry{start: start, guard: g})
	return g
}

// TraceMeOrDie runs one PTRACE_TRACEME check on whatever thread the calling
// goroutine is on. The first call on a thread must see the kernel accept the
// request and every later call must see it refused; anything else ends the
// process.
func TraceMeOrDie() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	Current().TraceMeOrDie()
}

// MultiTraceMeOrDie runs the full multi-check on whatever thread the calling
// goroutine is on and returns only if it passes.
func MultiTraceMeOrDie() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	Current().MultiTraceMeOrDie()
}

// Go runs fn in a new goroutine that stays locked to one OS thread until fn
// returns, and hands it that thread's Guard. fn should start with one of the
// Guard's checks.
func Go(fn func(g *Guard)) {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		fn(Current())
	}()
}

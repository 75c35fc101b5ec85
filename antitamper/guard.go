package antitamper

import (
	"math"

	"github.com/tusharlock10/sentinel-guard/internal/xorshift"
)

// Guard is the anti-debug state of one OS thread.
//
// The kernel tracks the tracer of each thread on its own, so a Guard is only
// meaningful on the thread it belongs to. Get one from Current or Go and keep
// the goroutine locked (runtime.LockOSThread) while you use it. A Guard is not
// safe for concurrent use.
type Guard struct {
	claimed bool
	count   uint64
	rng     xorshift.Rand
	seeds   *[seedTableSize]uint32

	trace func() error
	die   func()
	inert bool
}

func newGuard(seed uint32) *Guard {
	return &Guard{
		rng:   xorshift.New(seed),
		seeds: &seedTable,
		trace: RequestTrace,
		die:   Terminate,
		inert: !supported,
	}
}

// Claimed reports whether the thread's first PTRACE_TRACEME has been seen to
// succeed.
func (g *Guard) Claimed() bool {
	return g.claimed
}

// Count returns how many checks have passed on the thread. It saturates at
// math.MaxUint64.
func (g *Guard) Count() uint64 {
	return g.count
}

// TraceMeOrDie issues one PTRACE_TRACEME and terminates the process unless the
// result is the expected one: success on the thread's first check, failure on
// every later check.
func (g *Guard) TraceMeOrDie() {
	if g.inert {
		return
	}
	g.observe(g.trace())
}

// observe feeds one PTRACE_TRACEME outcome into the state machine:
//
//	unclaimed, success -> claim
//	unclaimed, failure -> a tracer got there first: die
//	claimed,   success -> cannot happen untouched: die
//	claimed,   failure -> steady state
func (g *Guard) observe(err error) {
	if !g.claimed {
		if err != nil {
			g.die()
			return
		}
		g.claimed = true
	} else if err == nil {
		g.die()
		return
	}

	if g.count < math.MaxUint64 {
		g.count++
	}
}

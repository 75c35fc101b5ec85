package antitamper

import (
	"testing"
)

func totalIterations() int {
	n := 0
	for _, it := range roundIterations {
		n += it
	}
	return n
}

// closedForm is an independent oracle for a round checksum: every value
// contributes 10*v plus the sum of the seed table.
func closedForm(values []uint32, seeds *[seedTableSize]uint32) uint32 {
	var s uint32
	for _, seed := range seeds {
		s += seed
	}
	var sum uint32
	for _, v := range values {
		sum += seedTableSize*v + s
	}
	return sum
}

func TestRoundIterationsInRange(t *testing.T) {
	for i, it := range roundIterations {
		if it < minInner || it > maxInner {
			t.Fatalf("round %d: %d iterations, want [%d, %d]", i, it, minInner, maxInner)
		}
	}
}

func TestFoldAgreesWithVerify(t *testing.T) {
	values := []uint32{0xffffffff, 7, 0x80000000, 12345, 0xdeadbeef}
	g := newTestGuard(nil, 1)

	for n := 0; n <= maxInner; n++ {
		var buf [maxInner]uint32
		var acc accumulator
		acc.reset(buf[:])
		for _, v := range values[:n] {
			acc.drawn = append(acc.drawn, v)
			acc.offset = foldValue(acc.offset, v, g.seeds)
		}

		if want := closedForm(values[:n], g.seeds); acc.offset != want {
			t.Fatalf("length %d: offset %#x, closed form %#x", n, acc.offset, want)
		}
		if dies(func() { g.verify(&acc) }) {
			t.Fatalf("length %d: verify rejected a matching checksum", n)
		}
	}
}

func TestVerifyRejectsMismatch(t *testing.T) {
	g := newTestGuard(nil, 1)
	var buf [maxInner]uint32
	var acc accumulator
	acc.reset(buf[:])
	acc.drawn = append(acc.drawn, 42)
	acc.offset = foldValue(0, 42, g.seeds) + 1

	if !dies(func() { g.verify(&acc) }) {
		t.Fatal("verify accepted a wrong checksum")
	}
}

func TestMultiCheckPasses(t *testing.T) {
	k := &kernel{}
	g := newTestGuard(k.trace, 99)

	if dies(g.MultiTraceMeOrDie) {
		t.Fatal("multi-check terminated on an untraced thread")
	}
	want := totalIterations()
	if k.calls != want {
		t.Fatalf("issued %d requests, want %d", k.calls, want)
	}
	if g.Count() != uint64(want) || !g.Claimed() {
		t.Fatalf("claimed=%v count=%d, want claimed and %d", g.Claimed(), g.Count(), want)
	}

	// A second pass on the same thread only sees refusals.
	if dies(g.MultiTraceMeOrDie) {
		t.Fatal("second multi-check terminated")
	}
	if g.Count() != uint64(2*want) {
		t.Fatalf("Count() = %d, want %d", g.Count(), 2*want)
	}
}

func TestMultiCheckAfterSingleCheck(t *testing.T) {
	k := &kernel{}
	g := newTestGuard(k.trace, 5)

	if dies(g.TraceMeOrDie) || dies(g.MultiTraceMeOrDie) {
		t.Fatal("mixed checks terminated")
	}
	if g.Count() != uint64(1+totalIterations()) {
		t.Fatalf("Count() = %d, want %d", g.Count(), 1+totalIterations())
	}
}

// An unexpected trap result anywhere ends the check on the spot.
func TestMultiCheckStopsAtFirstAnomaly(t *testing.T) {
	total := totalIterations()
	for _, at := range []int{1, 2, roundIterations[0] + 1, total / 2, total} {
		k := &kernel{failAt: at}
		g := newTestGuard(k.trace, 3)

		if !dies(g.MultiTraceMeOrDie) {
			t.Fatalf("anomaly at request %d: multi-check returned", at)
		}
		if k.calls != at {
			t.Fatalf("anomaly at request %d: %d requests issued, want none after it", at, k.calls)
		}
	}
}

func TestMultiCheckTracedFromStart(t *testing.T) {
	k := &kernel{traced: true}
	g := newTestGuard(k.trace, 3)

	if !dies(g.MultiTraceMeOrDie) {
		t.Fatal("multi-check under a tracer returned")
	}
	if k.calls != 1 {
		t.Fatalf("%d requests issued, want 1", k.calls)
	}
}

// Changing the seed table in the middle of a round makes the recomputed
// checksum disagree with the running one; the round must not complete.
func TestMultiCheckChecksumMismatchDies(t *testing.T) {
	seeds := seedTable
	k := &kernel{}
	g := newTestGuard(func() error {
		if k.calls == 1 {
			seeds[0]++
		}
		return k.trace()
	}, 3)
	g.seeds = &seeds

	if !dies(g.MultiTraceMeOrDie) {
		t.Fatal("multi-check survived a checksum mismatch")
	}
	if k.calls != roundIterations[0] {
		t.Fatalf("%d requests issued, want %d (first round only)", k.calls, roundIterations[0])
	}
}

func TestMultiCheckDeterministic(t *testing.T) {
	a := newTestGuard((&kernel{}).trace, 0xc0ffee)
	b := newTestGuard((&kernel{}).trace, 0xc0ffee)

	if dies(a.MultiTraceMeOrDie) || dies(b.MultiTraceMeOrDie) {
		t.Fatal("multi-check terminated")
	}
	if a.rng != b.rng {
		t.Fatal("equal seeds left the generators in different states")
	}
}

// A rejected trap result ends the check before the generator is touched.
func TestStepDrawsOnlyAfterAcceptedResult(t *testing.T) {
	g := newTestGuard(script(errTraced), 5)
	before := g.rng

	var buf [maxInner]uint32
	var acc accumulator
	acc.reset(buf[:])
	if !dies(func() { g.step(&acc) }) {
		t.Fatal("step accepted a failed first request")
	}
	if g.rng != before {
		t.Fatal("generator advanced for a rejected result")
	}
	if len(acc.drawn) != 0 || acc.offset != 0 {
		t.Fatalf("round state changed: drawn %v offset %d", acc.drawn, acc.offset)
	}
}

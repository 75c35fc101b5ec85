package antitamper

const (
	// Rounds is the number of rounds in one multi-check.
	Rounds = 16

	// Bounds of the per-round inner iteration count picked by seedgen.
	minInner = 2
	maxInner = 5

	seedTableSize = 10
)

// rounds_gen.go must provide exactly one inner count per round and be
// generated for this seed table size and these bounds.
var (
	_ [Rounds - len(roundIterations)]struct{}
	_ [len(roundIterations) - Rounds]struct{}

	_ [seedTableSize - genSeedTableSize]struct{}
	_ [genSeedTableSize - seedTableSize]struct{}
	_ [minInner - genMinInner]struct{}
	_ [genMinInner - minInner]struct{}
	_ [maxInner - genMaxInner]struct{}
	_ [genMaxInner - maxInner]struct{}
)

// accumulator is the verification state of one round: the generator values
// drawn so far, in order, and their running fold.
type accumulator struct {
	drawn  []uint32
	offset uint32
}

func (a *accumulator) reset(buf []uint32) {
	a.drawn = buf[:0]
	a.offset = 0
}

// MultiTraceMeOrDie runs the full multi-check on the calling thread. Each of
// the Rounds rounds issues between 2 and 5 PTRACE_TRACEME requests, classifies
// every result like TraceMeOrDie does and closes with a checksum comparison.
// It returns only if all of them came out as expected.
func (g *Guard) MultiTraceMeOrDie() {
	if g.inert {
		return
	}
	g.multiCheck()
}

// step is one inner iteration: a trap and, once its result has been accepted,
// a generator draw folded into the round offset.
func (g *Guard) step(a *accumulator) {
	g.observe(g.trace())
	v := g.rng.Next()
	a.drawn = append(a.drawn, v)
	a.offset = foldValue(a.offset, v, g.seeds)
}

// verify rebuilds the round checksum from the recorded draws and dies if it
// does not match the running offset.
func (g *Guard) verify(a *accumulator) {
	var check uint32
	for i := 0; i < len(a.drawn); i++ {
		for j := 0; j < seedTableSize; j++ {
			check += a.drawn[i] + g.seeds[j]
		}
	}
	if check != a.offset {
		g.die()
	}
}

// foldValue adds v+seed to offset for every seed, with wrapping arithmetic.
func foldValue(offset, v uint32, seeds *[seedTableSize]uint32) uint32 {
	for _, s := range seeds {
		offset += v + s
	}
	return offset
}

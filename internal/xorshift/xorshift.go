// Package xorshift implements Marsaglia's 128-bit xorshift generator.
//
// It is not a source of secrets. The anti-debug checks only need a cheap,
// reproducible stream so that checksum paths differ from run to run.
package xorshift

// Initial state words from Marsaglia's "Xorshift RNGs" paper.
const (
	initX uint32 = 123456789
	initY uint32 = 362436069
	initZ uint32 = 521288629
	initW uint32 = 88675123
)

// Rand holds the four state words. The zero value is not usable; call New.
type Rand struct {
	x, y, z, w uint32
}

// New returns a generator whose first two state words are mixed with seed.
// Equal seeds produce equal streams.
func New(seed uint32) Rand {
	return Rand{
		x: initX ^ seed,
		y: initY ^ seed,
		z: initZ,
		w: initW,
	}
}

// Next advances the state and returns the new w word.
func (r *Rand) Next() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w ^= (r.w >> 19) ^ t ^ (t >> 8)
	return r.w
}

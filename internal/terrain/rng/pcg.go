// Package rng implements the deterministic, splittable pseudo-random stream
// used across the terrain pipeline (continent seeding, fractal noise
// gradients, erosion droplet initial directions).
package rng

// state128 is the 128-bit generator state used by the PCG-XSL-RR step.
// Go has no native u128, so the state is kept as two uint64 halves.
type state128 struct {
	hi, lo uint64
}

// pcgMulHi and pcgMulLo are the two 64-bit halves of the 128-bit LCG
// multiplier recommended by O'Neill's PCG paper for the 128-in/64-out
// generator.
const (
	pcgMulHi uint64 = 2549297995355413924
	pcgMulLo uint64 = 4865540595714422341
)

// mul128 computes the low 128 bits of (a.hi:a.lo) * (b.hi:b.lo) using
// 64x64->128 partial products, discarding bits above bit 127.
func mul128(a, b state128) state128 {
	loHi, loLo := bits64Mul(a.lo, b.lo)
	// Only the low 64 bits of the hi*lo cross terms survive in a 128-bit
	// product; the high 64 bits of those cross terms would overflow past
	// bit 127 and are discarded, same as the upper 64 bits of lo*lo's
	// product being folded into loHi above.
	hi := loHi + a.hi*b.lo + a.lo*b.hi
	return state128{hi: hi, lo: loLo}
}

func bits64Mul(a, b uint64) (hi, lo uint64) {
	const mask32 = 0xFFFFFFFF
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	lo = aLo * bLo
	mid1 := aHi * bLo
	mid2 := aLo * bHi
	hi = aHi * bHi

	carry := (lo >> 32) + (mid1 & mask32) + (mid2 & mask32)
	lo = (lo & mask32) | (carry << 32)
	hi += (mid1 >> 32) + (mid2 >> 32) + (carry >> 32)
	return hi, lo
}

func add128(a, b state128) state128 {
	lo := a.lo + b.lo
	carry := uint64(0)
	if lo < a.lo {
		carry = 1
	}
	return state128{hi: a.hi + b.hi + carry, lo: lo}
}

// step advances the 128-bit LCG state by one position: state = state*mult + inc.
func step128(state, inc state128) state128 {
	return add128(mul128(state, state128{hi: pcgMulHi, lo: pcgMulLo}), inc)
}

// output applies the XSL-RR (xorshift-low, random-rotate) finalization that
// turns the 128-bit LCG state into a well-distributed 64-bit output.
func output(state state128) uint64 {
	xored := state.hi ^ state.lo
	rot := uint(state.hi >> 58) // top 6 bits select the rotation amount
	return rotr64(xored, rot)
}

func rotr64(v uint64, k uint) uint64 {
	k &= 63
	if k == 0 {
		return v
	}
	return (v >> k) | (v << (64 - k))
}

package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Seed is the 128-bit seed value the whole generator is a deterministic
// function of. It is represented as two uint64 halves, mirroring the
// generator's 128-bit LCG state.
type Seed struct {
	Hi, Lo uint64
}

// DefaultSeed returns the fixed constant used when no seed is supplied,
// so default runs are reproducible across machines.
func DefaultSeed() Seed {
	return Seed{Hi: 0x9E3779B97F4A7C15, Lo: 0xC2B2AE3D27D4EB4F}
}

// NewSeed draws a fresh 128-bit seed from OS entropy.
func NewSeed() (Seed, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Seed{}, err
	}
	return Seed{
		Hi: binary.LittleEndian.Uint64(buf[0:8]),
		Lo: binary.LittleEndian.Uint64(buf[8:16]),
	}, nil
}

// Stream is an independent PCG-128/64 stream. The zero value is not usable;
// construct one with New or derive one with Sub.
type Stream struct {
	state state128
	inc   state128 // must be odd in the low half per PCG's stream-selection rule
}

// New creates the root stream for a run from the 128-bit seed. The seed
// selects the increment and is also added into the starting state, so
// seeds that differ in any bit, the lowest included, give different
// streams.
func New(seed Seed) Stream {
	s := Stream{
		state: state128{},
		inc:   state128{hi: seed.Hi, lo: seed.Lo | 1},
	}
	s.state = step128(s.state, s.inc)
	s.state = step128(add128(s.state, state128{hi: seed.Hi, lo: seed.Lo}), s.inc)
	return s
}

// Next64 advances the stream and returns the next pseudo-random uint64.
// Equal streams produce equal sequences; this is the sole source of
// randomness in the whole pipeline, so two runs with equal seed and equal
// Args always draw the same values in the same order.
func (s *Stream) Next64() uint64 {
	out := output(s.state)
	s.state = step128(s.state, s.inc)
	return out
}

// NextFloat64 returns a uniform value in [0, 1).
func (s *Stream) NextFloat64() float64 {
	// Use the top 53 bits, the widest mantissa that maps exactly into
	// [0,1) without bias.
	return float64(s.Next64()>>11) / (1 << 53)
}

// NextIntBetween returns a uniform integer in [lo, hi], inclusive on
// both ends. Uses Lemire's multiply-shift bounded technique to avoid
// modulo bias.
func (s *Stream) NextIntBetween(lo, hi int32) int32 {
	if hi <= lo {
		return lo
	}
	span := uint64(hi-lo) + 1
	hiBits, loBits := bits64Mul(s.Next64(), span)
	if loBits < span {
		threshold := (^span + 1) % span // (2^64 - span) % span
		for loBits < threshold {
			hiBits, loBits = bits64Mul(s.Next64(), span)
		}
	}
	return lo + int32(hiBits)
}

// Vec3 is a 3-space vector, used for continent rotation axes and cube/sphere
// positions.
type Vec3 struct{ X, Y, Z float64 }

// NextUnitVec3 draws a uniform-on-the-sphere unit vector via Marsaglia's
// 1972 rejection method.
func (s *Stream) NextUnitVec3() Vec3 {
	for {
		x1 := 2*s.NextFloat64() - 1
		x2 := 2*s.NextFloat64() - 1
		d2 := x1*x1 + x2*x2
		if d2 >= 1 {
			continue
		}
		root := math.Sqrt(1 - d2)
		return Vec3{
			X: 2 * x1 * root,
			Y: 2 * x2 * root,
			Z: 1 - 2*d2,
		}
	}
}

// Sub derives an independent child stream from (parent state, label). Equal
// (state, label) pairs always yield equal children, and the derivation does
// not depend on how many values were drawn from the parent afterward, since
// it hashes the state at the moment of the call plus the label only.
//
// Sub-streams are what let parallel per-face work stay bit-identical to a
// sequential run: each goroutine is handed a stream keyed by a
// deterministic index (face id, pixel index, octave) rather than sharing
// one stream.
func (s Stream) Sub(label string) Stream {
	h := xxhash.New()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], s.state.hi)
	binary.LittleEndian.PutUint64(buf[8:16], s.state.lo)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(label))
	digest := h.Sum64()

	childSeed := Seed{
		Hi: digest,
		Lo: digest ^ (s.inc.hi<<1 | s.inc.lo>>63) ^ 0xD6E8FEB86659FD93,
	}
	return New(childSeed)
}

package tinydecomp

import "math/bits"

// bitsRequired returns the number of bits needed to store value: 1 for
// value == 0, otherwise 1 + floor(log2(value)) (equivalently
// ceil(log2(value + 1))). Used by the Arithmetic BASC table decoder and by
// Golomb's truncated-binary remainder.
//
// The reference decoder computes this with a hand-rolled population-count
// trick (OnesCount/FloorLog2 in Decompressor.c); bits.Len32 already
// computes exactly 1+floor(log2(v)) for v > 0 and 0 for v == 0, so it
// replaces that trick outright rather than porting it.
func bitsRequired(value uint32) uint {
	if value == 0 {
		return 1
	}
	return uint(bits.Len32(value))
}

// Package tinydecomp implements the decoder half of a small family of
// self-describing compression formats designed for memory-constrained
// embedded targets: Huffman, Arithmetic (range) coding, LZ77, and LZCL, a
// composite LZ77-over-entropy-coder format.
//
// Every format is self-describing: a header carries enough information
// (symbol counts, code lengths, table sizes) to decode the stream without
// any side channel, at the cost of re-scanning small embedded tables from
// the bitstream rather than materializing them in RAM. That trade runs
// through every decoder in this package.
//
// Only decoding is implemented; there is no encoder here.
package tinydecomp

package tinydecomp

import "errors"

var (
	// ErrCorruptStream is returned when a read walks past the end of the
	// source data, a Huffman table walk never resolves to a symbol, or a
	// BASC table scan reaches an impossible state.
	ErrCorruptStream = errors.New("tinydecomp: corrupt stream")

	// ErrInsufficientDestination is returned when an LZ77 or LZCL back
	// reference would need a window larger than the caller supplied.
	ErrInsufficientDestination = errors.New("tinydecomp: insufficient destination")

	// ErrInvalidHeader is returned when a header field is outside the
	// range this package can act on (an unknown sub-codec type, an empty
	// Huffman length range, and so on).
	ErrInvalidHeader = errors.New("tinydecomp: invalid header")
)

// EndToken is the sentinel the reference decoder returns from its
// incremental APIs once all output has been produced. This package signals
// the same condition with io.EOF; EndToken is kept as a named constant for
// the open-ended-run bookkeeping LZCL sub-codecs need (see lzcl.go).
const EndToken = 0xFFFFFFFF

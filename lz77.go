package tinydecomp

import "io"

// LZ77Decoder decodes a literal/run-pair stream over a caller-supplied
// circular back-reference window. The window holds only the bytes needed
// to resolve future copies; it is not where the caller reads final output
// from — NextBlock hands back a copy of each block's bytes directly. This
// package splits window and output rather than overloading one buffer for
// both, as the reference C does, because a window sized only for the
// longest permitted back-reference is usually far smaller than the full
// decompressed output on an embedded target.
type LZ77Decoder struct {
	br         *BitReader
	byteIndex  uint32
	byteLength uint32

	window []byte

	minLength     uint32
	maxDistance   uint32
	maxToken      uint32 // parsed, never consulted — the reference decoder discards it too
	bitsPerSymbol uint
	bitsPerToken  uint
}

// NewLZ77Decoder parses an LZ77 header from source. window must hold at
// least maxDistance+1 bytes (the header's own maxDistance field, known only
// after parsing) for every back-reference in the stream to resolve;
// NextBlock returns ErrInsufficientDestination the first time a copy needs
// more than len(window) bytes of history.
func NewLZ77Decoder(source []byte, window []byte) (*LZ77Decoder, error) {
	d := &LZ77Decoder{br: NewBitReader(source), window: window}

	byteLength, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return nil, err
	}
	bitsPerSymbol, err := decodeLomont1(d.br, 3, 0)
	if err != nil {
		return nil, err
	}
	bitsPerToken, err := decodeLomont1(d.br, 5, 0)
	if err != nil {
		return nil, err
	}
	minLength, err := decodeLomont1(d.br, 2, 0)
	if err != nil {
		return nil, err
	}
	maxToken, err := decodeLomont1(d.br, 25, -10)
	if err != nil {
		return nil, err
	}
	maxDistance, err := decodeLomont1(d.br, 14, -7)
	if err != nil {
		return nil, err
	}

	d.byteLength = byteLength
	d.bitsPerSymbol = uint(bitsPerSymbol) + 1
	d.bitsPerToken = uint(bitsPerToken) + 1
	d.minLength = minLength
	d.maxToken = maxToken
	d.maxDistance = maxDistance
	return d, nil
}

// Len returns the total number of decompressed bytes the stream declares.
func (d *LZ77Decoder) Len() uint32 { return d.byteLength }

// NextBlock decodes one literal or one copy run, writes it into the
// circular window at the appropriate positions, and returns a copy of the
// bytes produced. It returns (nil, io.EOF) once byteLength bytes have been
// produced.
func (d *LZ77Decoder) NextBlock() ([]byte, error) {
	if d.byteIndex >= d.byteLength {
		return nil, io.EOF
	}

	isRun, err := d.br.Read(1)
	if err != nil {
		return nil, err
	}
	if isRun == 0 {
		lit, err := d.br.Read(d.bitsPerSymbol)
		if err != nil {
			return nil, err
		}
		d.window[d.byteIndex%uint32(len(d.window))] = byte(lit)
		d.byteIndex++
		return []byte{byte(lit)}, nil
	}

	token, err := d.br.Read(d.bitsPerToken)
	if err != nil {
		return nil, err
	}
	length := token/(d.maxDistance+1) + d.minLength
	distance := token % (d.maxDistance + 1)
	return d.copyRun(distance, length)
}

// copyRun performs an LZ77 back-reference copy of length bytes from
// distance bytes back, writing into the circular window and returning the
// produced bytes.
func (d *LZ77Decoder) copyRun(distance, length uint32) ([]byte, error) {
	out, newIndex, err := circularCopy(d.window, d.byteIndex, distance, length)
	d.byteIndex = newIndex
	return out, err
}

// circularCopy performs one LZ77-style back-reference copy over a circular
// window: length bytes are copied from distance bytes back (relative to
// byteIndex) to the current position, advancing byteIndex by length.
// Shared, unchanged, by LZCL's token/distance+length dispatch, since LZCL's
// copy semantics are bit-identical to LZ77's.
func circularCopy(window []byte, byteIndex, distance, length uint32) (out []byte, newIndex uint32, err error) {
	windowLen := uint32(len(window))
	if distance >= windowLen {
		return nil, byteIndex, ErrInsufficientDestination
	}
	delta := windowLen - distance - 1
	out = make([]byte, length)
	for i := uint32(0); i < length; i++ {
		src := window[(byteIndex+delta)%windowLen]
		window[byteIndex%windowLen] = src
		out[i] = src
		byteIndex++
	}
	return out, byteIndex, nil
}

// DecodeLZ77 decodes source in full, using window as back-reference
// scratch, and returns the complete decompressed output.
func DecodeLZ77(source []byte, window []byte) ([]byte, error) {
	d, err := NewLZ77Decoder(source, window)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, d.byteLength)
	for uint32(len(out)) < d.byteLength {
		block, err := d.NextBlock()
		if err != nil {
			return out, err
		}
		out = append(out, block...)
	}
	return out, nil
}

package tinydecomp

import "io"

// subCodecKind tags which of the four entropy coders an LZCL sub-stream
// uses.
type subCodecKind uint8

const (
	subCodecFixed      subCodecKind = 0
	subCodecArithmetic subCodecKind = 1
	subCodecHuffman    subCodecKind = 2
	subCodecGolomb     subCodecKind = 3
)

// subCodec holds exactly one of the four embedded decoders active at a
// time, selected by kind. Modeled as a Go struct with one field per variant
// (rather than the reference's in-place union) since Go has no overlapping
// storage for structs — the tag plus a type switch on every call is the
// idiomatic substitute.
type subCodec struct {
	kind       subCodecKind
	fixed      *fixedDecoder
	arithmetic *ArithmeticDecoder
	huffman    *HuffmanDecoder
	golomb     *golombDecoder
}

// readSubCodec consumes one embedded sub-codec declaration from parent: a
// 2-bit type tag, a Lomont1(6,0) bit length covering the sub-stream's
// header and body, then that codec's own header (parsed via a fresh
// BitReader sharing parent's underlying data but starting at parent's
// current position). parent's cursor is then advanced by bitLength from the
// start of that header, skipping over both header and body — the body is
// walked independently by the returned subCodec's own reader as symbols are
// decoded.
func readSubCodec(parent *BitReader) (*subCodec, error) {
	kindBits, err := parent.Read(2)
	if err != nil {
		return nil, err
	}
	bitLength, err := decodeLomont1(parent, 6, 0)
	if err != nil {
		return nil, err
	}

	sub := &subCodec{kind: subCodecKind(kindBits)}
	br := NewBitReader(parent.data)
	br.SetPos(parent.Pos())

	switch sub.kind {
	case subCodecFixed:
		sub.fixed = &fixedDecoder{br: br}
		err = sub.fixed.readHeader()
	case subCodecArithmetic:
		sub.arithmetic = &ArithmeticDecoder{br: br}
		_, err = sub.arithmetic.readHeader()
		sub.arithmetic.symbolsLeft = EndToken // open-ended run inside LZCL
	case subCodecHuffman:
		sub.huffman = &HuffmanDecoder{br: br}
		err = sub.huffman.readHeader()
		sub.huffman.bytesRemaining = EndToken // open-ended run inside LZCL
	case subCodecGolomb:
		sub.golomb = &golombDecoder{br: br}
		err = sub.golomb.readHeader()
	default:
		return nil, ErrInvalidHeader
	}
	if err != nil {
		return nil, err
	}

	parent.SetPos(parent.Pos() + bitLength)
	return sub, nil
}

func (s *subCodec) nextSymbol() (uint32, error) {
	switch s.kind {
	case subCodecFixed:
		return s.fixed.nextSymbol()
	case subCodecArithmetic:
		return s.arithmetic.NextSymbol()
	case subCodecHuffman:
		return s.huffman.NextSymbol()
	case subCodecGolomb:
		return s.golomb.nextSymbol()
	default:
		return 0, ErrInvalidHeader
	}
}

// LZCLDecoder dispatches a structural header to one of the four sub-coders
// for literals, for copy decisions (or run-length-encoded decisions), and
// for distances/lengths (or combined tokens).
type LZCLDecoder struct {
	br         *BitReader
	byteIndex  uint32
	byteLength uint32

	window []byte

	minLength   uint32
	maxDistance uint32

	useDecisionRuns  bool
	initialValue     uint32
	decisionCodec    *subCodec // used when !useDecisionRuns
	decisionRunCodec *subCodec // used when useDecisionRuns

	literalCodec *subCodec

	useTokens     bool
	tokenCodec    *subCodec // used when useTokens
	distanceCodec *subCodec // used when !useTokens
	lengthCodec   *subCodec // used when !useTokens

	curRun   int32 // -1 until the first run is decoded
	runsLeft uint32
}

// NewLZCLDecoder parses an LZCL structural header from source. window must
// hold at least maxDistance+1 bytes, mirroring LZ77Decoder's window
// contract.
func NewLZCLDecoder(source []byte, window []byte) (*LZCLDecoder, error) {
	d := &LZCLDecoder{br: NewBitReader(source), window: window, curRun: -1}

	byteLength, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return nil, err
	}
	maxDistance, err := decodeLomont1(d.br, 10, 0)
	if err != nil {
		return nil, err
	}
	minLength, err := decodeLomont1(d.br, 2, 0)
	if err != nil {
		return nil, err
	}
	d.byteLength = byteLength
	d.maxDistance = maxDistance
	d.minLength = minLength

	useRuns, err := d.br.Read(1)
	if err != nil {
		return nil, err
	}
	if useRuns == 0 {
		d.useDecisionRuns = false
		if d.decisionCodec, err = readSubCodec(d.br); err != nil {
			return nil, err
		}
	} else {
		d.useDecisionRuns = true
		if d.initialValue, err = d.br.Read(1); err != nil {
			return nil, err
		}
		if d.decisionRunCodec, err = readSubCodec(d.br); err != nil {
			return nil, err
		}
	}

	if d.literalCodec, err = readSubCodec(d.br); err != nil {
		return nil, err
	}

	useTokens, err := d.br.Read(1)
	if err != nil {
		return nil, err
	}
	if useTokens == 0 {
		d.useTokens = true
		if d.tokenCodec, err = readSubCodec(d.br); err != nil {
			return nil, err
		}
	} else {
		d.useTokens = false
		if d.distanceCodec, err = readSubCodec(d.br); err != nil {
			return nil, err
		}
		if d.lengthCodec, err = readSubCodec(d.br); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Len returns the total number of decompressed bytes the stream declares.
func (d *LZCLDecoder) Len() uint32 { return d.byteLength }

// decision decodes the next literal-vs-copy bit, either directly from
// decisionCodec or by unpacking the next run from decisionRunCodec.
func (d *LZCLDecoder) decision() (uint32, error) {
	if !d.useDecisionRuns {
		return d.decisionCodec.nextSymbol()
	}
	if d.curRun == -1 {
		d.curRun = int32(d.initialValue)
		runsLeft, err := d.decisionRunCodec.nextSymbol()
		if err != nil {
			return 0, err
		}
		d.runsLeft = runsLeft
	}
	if d.runsLeft == 0 {
		d.curRun ^= 1
		runsLeft, err := d.decisionRunCodec.nextSymbol()
		if err != nil {
			return 0, err
		}
		d.runsLeft = runsLeft
	}
	d.runsLeft--
	return uint32(d.curRun), nil
}

// decodedToken decodes the next copy's (distance, length) pair, either from
// a single combined token or from separate distance/length sub-codecs.
func (d *LZCLDecoder) decodedToken() (distance, length uint32, err error) {
	if d.useTokens {
		token, err := d.tokenCodec.nextSymbol()
		if err != nil {
			return 0, 0, err
		}
		length = token/(d.maxDistance+1) + d.minLength
		distance = token % (d.maxDistance + 1)
		return distance, length, nil
	}
	distance, err = d.distanceCodec.nextSymbol()
	if err != nil {
		return 0, 0, err
	}
	rawLength, err := d.lengthCodec.nextSymbol()
	if err != nil {
		return 0, 0, err
	}
	return distance, rawLength + d.minLength, nil
}

// NextBlock decodes one output byte's worth of work: either a single
// literal or a full copy run, and returns the bytes produced. It returns
// (nil, io.EOF) once byteLength bytes have been produced.
func (d *LZCLDecoder) NextBlock() ([]byte, error) {
	if d.byteIndex >= d.byteLength {
		return nil, io.EOF
	}

	decision, err := d.decision()
	if err != nil {
		return nil, err
	}
	if decision == 0 {
		symbol, err := d.literalCodec.nextSymbol()
		if err != nil {
			return nil, err
		}
		d.window[d.byteIndex%uint32(len(d.window))] = byte(symbol)
		d.byteIndex++
		return []byte{byte(symbol)}, nil
	}

	distance, length, err := d.decodedToken()
	if err != nil {
		return nil, err
	}
	out, newIndex, err := circularCopy(d.window, d.byteIndex, distance, length)
	d.byteIndex = newIndex
	return out, err
}

// DecodeLZCL decodes source in full, using window as back-reference
// scratch, and returns the complete decompressed output.
func DecodeLZCL(source []byte, window []byte) ([]byte, error) {
	d, err := NewLZCLDecoder(source, window)
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

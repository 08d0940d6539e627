package tinydecomp

import "io"

// HuffmanDecoder decodes a canonical-style Huffman stream whose codebook is
// stored directly in the bitstream: for each length L from minLen to
// maxLen, a bitsPerLengthCount-wide count of codewords of that length,
// followed by that many bitsPerSymbol-wide symbols.
//
// The table is never materialized into a slice; each symbol decode walks
// the bitstream at tableStart from scratch. That is the reference decoder's
// deliberate RAM-vs-CPU trade (DecompressHuffmanSymbol in Decompressor.c),
// kept here unchanged.
type HuffmanDecoder struct {
	br             *BitReader
	tableStart     uint32
	bytesRemaining uint32 // EndToken marks an open-ended run (LZCL sub-codec)
	bitsPerSymbol  uint
	minLen, maxLen uint
	bitsPerLength  uint // width of each length's codeword count
}

// NewHuffmanDecoder parses a Huffman header (leading decompressed byte
// count, then the codebook) from source and returns a decoder ready to
// produce symbols with NextSymbol.
func NewHuffmanDecoder(source []byte) (*HuffmanDecoder, error) {
	br := NewBitReader(source)
	byteLength, err := decodeLomont1(br, 6, 0)
	if err != nil {
		return nil, err
	}
	d := &HuffmanDecoder{br: br, bytesRemaining: byteLength}
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	return d, nil
}

// readHeader parses the codebook header starting at the reader's current
// position, leaving byteLength (and thus bytesRemaining) untouched — used
// both by NewHuffmanDecoder (which already read byteLength) and by the LZCL
// sub-codec reader (which never has a byteLength field at all).
func (d *HuffmanDecoder) readHeader() error {
	bitsPerSymbol, err := decodeLomont1(d.br, 3, 0)
	if err != nil {
		return err
	}
	bitsPerLength, err := decodeLomont1(d.br, 3, 0)
	if err != nil {
		return err
	}
	minLen, err := decodeLomont1(d.br, 2, 0)
	if err != nil {
		return err
	}
	deltaLen, err := decodeLomont1(d.br, 4, -1)
	if err != nil {
		return err
	}

	d.bitsPerSymbol = uint(bitsPerSymbol) + 1
	d.bitsPerLength = uint(bitsPerLength) + 1
	d.minLen = uint(minLen) + 1
	d.maxLen = d.minLen + uint(deltaLen) + 1
	if d.minLen < 1 || d.maxLen < d.minLen {
		return ErrInvalidHeader
	}

	d.tableStart = d.br.Pos()
	// Walk the table once to advance the cursor past it; the decode loop
	// re-reads it from tableStart for every symbol.
	for length := d.minLen; length <= d.maxLen; length++ {
		count, err := d.br.Read(d.bitsPerLength)
		if err != nil {
			return err
		}
		for i := uint32(0); i < count; i++ {
			if _, err := d.br.Read(d.bitsPerSymbol); err != nil {
				return err
			}
		}
	}
	return nil
}

// NextSymbol decodes one symbol via the canonical bit-accumulator walk. It
// returns io.EOF once bytesRemaining (when tracked) reaches zero, and
// ErrCorruptStream if the cursor runs off the table before a codeword
// matches.
func (d *HuffmanDecoder) NextSymbol() (uint32, error) {
	if d.bytesRemaining == 0 {
		return EndToken, io.EOF
	}
	if d.bytesRemaining != EndToken {
		d.bytesRemaining--
	}

	accumulator, err := d.br.Read(d.minLen)
	if err != nil {
		return 0, err
	}
	firstOnRow := uint32(0)

	tableIndex := d.tableStart
	for length := d.minLen; length <= d.maxLen; length++ {
		count, next, err := d.br.ReadAt(tableIndex, d.bitsPerLength)
		if err != nil {
			return 0, err
		}
		tableIndex = next

		if count > 0 && accumulator-firstOnRow < count {
			itemIndex := accumulator - firstOnRow
			symPos := tableIndex + itemIndex*uint32(d.bitsPerSymbol)
			symbol, _, err := d.br.ReadAt(symPos, d.bitsPerSymbol)
			if err != nil {
				return 0, err
			}
			return symbol, nil
		}
		firstOnRow += count
		tableIndex += count * uint32(d.bitsPerSymbol)

		bit, err := d.br.Read(1)
		if err != nil {
			return 0, ErrCorruptStream
		}
		accumulator = 2*accumulator + bit
		firstOnRow <<= 1
	}
	return 0, ErrCorruptStream
}

// DecodeHuffman decodes source in full into dest, returning the number of
// bytes written. It returns ErrInsufficientDestination if dest is smaller
// than the stream's declared decompressed length.
func DecodeHuffman(source []byte, dest []byte) (int, error) {
	d, err := NewHuffmanDecoder(source)
	if err != nil {
		return 0, err
	}
	total := d.bytesRemaining
	if total == EndToken {
		return 0, ErrInvalidHeader
	}
	if uint32(len(dest)) < total {
		return 0, ErrInsufficientDestination
	}
	n := 0
	for uint32(n) < total {
		symbol, err := d.NextSymbol()
		if err != nil {
			return n, err
		}
		dest[n] = byte(symbol)
		n++
	}
	return n, nil
}

package tinydecomp

import "io"

// 31-bit range constants used by the arithmetic coder's renormalization,
// named for the fraction of the 31-bit range [0, range100Percent) they
// mark.
const (
	range25Percent  = 0x20000000
	range50Percent  = 0x40000000
	range75Percent  = 0x60000000
	range100Percent = 0x80000000
)

// ArithmeticDecoder is a 30-bit range coder whose cumulative-frequency
// table is BASC-encoded in the bitstream and re-scanned from scratch for
// every symbol — a deliberate RAM-vs-CPU trade for memory-constrained
// targets.
type ArithmeticDecoder struct {
	br               *BitReader
	low, high, total uint32
	buffer           uint32
	bitLength        uint32 // bits in the compressed region
	bitsRead         uint32 // bits consumed from the compressed region so far
	symbolMin        uint32
	tableStart       uint32

	symbolsLeft uint32 // EndToken marks an open-ended run (LZCL sub-codec)
}

// NewArithmeticDecoder parses an Arithmetic header from source and returns
// a decoder ready to produce symbols with NextSymbol, along with the total
// symbol count declared by the header (the caller is expected to request
// exactly that many symbols; there is no end-of-stream marker inside the
// coded data itself). Unlike Huffman/LZ77/LZCL, the Arithmetic header has no
// separate leading byte-length field — its first field, total, already
// doubles as the decompressed symbol count, one byte per symbol.
func NewArithmeticDecoder(source []byte) (*ArithmeticDecoder, uint32, error) {
	d := &ArithmeticDecoder{br: NewBitReader(source)}
	count, err := d.readHeader()
	if err != nil {
		return nil, 0, err
	}
	d.symbolsLeft = count
	return d, count, nil
}

// readHeader parses the Arithmetic header starting at the reader's current
// position — at the very start of the stream when called from
// NewArithmeticDecoder, or just after the sub-codec tag and bit-length field
// when parsed as an LZCL sub-codec. It mirrors ReadArithmeticHeaderNoLength in
// Decompressor.c.
func (d *ArithmeticDecoder) readHeader() (uint32, error) {
	d.low = 0
	d.high = range100Percent - 1

	total, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return 0, err
	}
	d.total = total
	if d.total == 0 {
		return 0, ErrInvalidHeader
	}

	bitLength, err := decodeLomont1(d.br, 8, -1)
	if err != nil {
		return 0, err
	}
	d.bitLength = bitLength
	d.bitsRead = 0

	startPos := d.br.Pos()
	if err := d.readTableHeader(); err != nil {
		return 0, err
	}
	d.bitsRead = d.br.Pos() - startPos

	d.buffer = 0
	for i := 0; i < 31; i++ {
		b, err := d.readArithmeticBit()
		if err != nil {
			return 0, err
		}
		d.buffer = (d.buffer << 1) | b
	}
	return d.total, nil
}

// readTableHeader reads the BASC table's bounds (symbolMin, symbolMax,
// tableBitLength), records where the table body starts, and skips the
// cursor past it — the body itself is only ever read by lookupCount's
// from-scratch rescan.
func (d *ArithmeticDecoder) readTableHeader() error {
	symbolMin, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return err
	}
	d.symbolMin = symbolMin
	if _, err := decodeLomont1(d.br, 6, 0); err != nil { // symbolMax, unused by lookupCount
		return err
	}
	tableBitLength, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return err
	}
	d.tableStart = d.br.Pos()
	d.br.SetPos(d.br.Pos() + tableBitLength)
	return nil
}

// readArithmeticBit reads one bit from the compressed region, or returns
// zero once bitsRead has reached bitLength — this is what lets a
// shorter-than-31-bit compressed region still yield a deterministic
// 31-bit lookahead buffer.
func (d *ArithmeticDecoder) readArithmeticBit() (uint32, error) {
	inRegion := d.bitsRead < d.bitLength
	d.bitsRead++
	if inRegion {
		return d.br.Read(1)
	}
	return 0, nil
}

// lookupCount scans the BASC-encoded frequency table for the symbol whose
// cumulative range contains cumCount, restoring the reader's cursor
// afterward. Ported directly from LookupArithmeticLowMemoryCount in
// Decompressor.c, including its documented quirk: symbol is only updated
// when a table entry's count (x) is nonzero, so a table whose first entry
// has x == 0 would yield a stale symbol. The compressor this format pairs
// with never emits that leading zero.
func (d *ArithmeticDecoder) lookupCount(cumCount uint32) (symbol, lowCount, highCount uint32, err error) {
	saved := d.br.Pos()
	defer d.br.SetPos(saved)
	d.br.SetPos(d.tableStart)

	length, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	if length == 0 {
		return 0, 0, 0, nil
	}

	b0, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	b := uint(b0)
	x, err := d.br.Read(b)
	if err != nil {
		return 0, 0, 0, err
	}

	low := uint32(0)
	high := x
	symbol = d.symbolMin
	i := d.symbolMin

	for high <= cumCount {
		decision, err := d.br.Read(1)
		if err != nil {
			return 0, 0, 0, err
		}
		if decision == 0 {
			x, err = d.br.Read(b)
			if err != nil {
				return 0, 0, 0, err
			}
		} else {
			delta := uint(0)
			for {
				decision, err = d.br.Read(1)
				if err != nil {
					return 0, 0, 0, err
				}
				delta++
				if decision == 0 {
					break
				}
			}
			b += delta
			x, err = d.br.Read(b - 1)
			if err != nil {
				return 0, 0, 0, err
			}
			x |= 1 << (b - 1)
		}
		b = bitsRequired(x)

		low = high
		high += x
		i++
		if x != 0 {
			symbol = i
		}
	}
	return symbol, low, high, nil
}

// NextSymbol decodes one symbol and advances the coder's low/high/buffer
// state through E1/E2 and E3 renormalization.
func (d *ArithmeticDecoder) NextSymbol() (uint32, error) {
	if d.symbolsLeft == 0 {
		return EndToken, io.EOF
	}
	if d.symbolsLeft != EndToken {
		d.symbolsLeft--
	}

	step := (d.high - d.low + 1) / d.total
	symbol, lowCount, highCount, err := d.lookupCount((d.buffer - d.low) / step)
	if err != nil {
		return 0, err
	}

	d.high = d.low + step*highCount - 1
	d.low = d.low + step*lowCount

	for d.high < range50Percent || d.low >= range50Percent {
		if d.high < range50Percent {
			d.low = 2 * d.low
			d.high = 2*d.high + 1
			bit, err := d.readArithmeticBit()
			if err != nil {
				return 0, err
			}
			d.buffer = 2*d.buffer + bit
		} else {
			d.low = 2 * (d.low - range50Percent)
			d.high = 2*(d.high-range50Percent) + 1
			bit, err := d.readArithmeticBit()
			if err != nil {
				return 0, err
			}
			d.buffer = 2*(d.buffer-range50Percent) + bit
		}
	}

	for d.low >= range25Percent && d.high < range75Percent {
		d.low = 2 * (d.low - range25Percent)
		d.high = 2*(d.high-range25Percent) + 1
		bit, err := d.readArithmeticBit()
		if err != nil {
			return 0, err
		}
		d.buffer = 2*(d.buffer-range25Percent) + bit
	}

	return symbol, nil
}

// DecodeArithmetic decodes source in full into dest. It returns
// ErrInsufficientDestination if dest is smaller than the header's declared
// symbol count.
func DecodeArithmetic(source []byte, dest []byte) (int, error) {
	d, count, err := NewArithmeticDecoder(source)
	if err != nil {
		return 0, err
	}
	if uint32(len(dest)) < count {
		return 0, ErrInsufficientDestination
	}
	for i := uint32(0); i < count; i++ {
		symbol, err := d.NextSymbol()
		if err != nil {
			return int(i), err
		}
		dest[i] = byte(symbol)
	}
	return int(count), nil
}

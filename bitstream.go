package tinydecomp

/*
 * The bitstream format underlying every codec in this package is MSB-first
 * within each byte: bit 0 is the top bit of data[0]. Reading k bits returns
 * an unsigned integer whose high bit corresponds to the smaller bit
 * position. This mirrors Chris Lomont's reference decoder (ReadBitstream /
 * ReadFromBitstreamPosition in Decompressor.c), generalized from a single
 * package-level function pair into a small value type. Huffman table
 * lookups peek with ReadAt without touching the reader in use by the rest
 * of the decode; the Arithmetic BASC rescan saves the cursor, moves it with
 * SetPos, and restores it afterward.
 */

// maxReadBits bounds a single Read/ReadAt call; the reference decoder's
// ReadBitstream accumulates into a uint32 one bit at a time, so 32 is the
// natural ceiling here too.
const maxReadBits = 32

// BitReader is an MSB-first bit cursor over a caller-owned byte slice. The
// zero value is not usable; construct one with NewBitReader.
type BitReader struct {
	data []byte
	pos  uint32 // next bit to read, 0-indexed from data[0]'s top bit
}

// NewBitReader returns a cursor positioned at bit 0 of data.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// Pos returns the current bit position.
func (r *BitReader) Pos() uint32 { return r.pos }

// SetPos moves the cursor to an arbitrary bit position without reading.
func (r *BitReader) SetPos(pos uint32) { r.pos = pos }

// Len returns the number of addressable bits in the underlying data.
func (r *BitReader) Len() uint32 { return uint32(len(r.data)) * 8 }

// Read returns the next n bits (n <= 32), high bit first, and advances the
// cursor by n. It returns ErrCorruptStream if fewer than n bits remain.
func (r *BitReader) Read(n uint) (uint32, error) {
	v, next, err := r.readAt(r.pos, n)
	if err != nil {
		return 0, err
	}
	r.pos = next
	return v, nil
}

// ReadAt reads n bits starting at bit position pos without disturbing the
// reader's own cursor, and returns the position just past the bits read.
// This is the explicit peek-from-position operation the Huffman table
// lookup uses: a save/restore without aliasing the live cursor.
func (r *BitReader) ReadAt(pos uint32, n uint) (value uint32, next uint32, err error) {
	return r.readAt(pos, n)
}

func (r *BitReader) readAt(pos uint32, n uint) (uint32, uint32, error) {
	if n == 0 {
		return 0, pos, nil
	}
	if n > maxReadBits {
		return 0, pos, ErrCorruptStream
	}
	if uint64(pos)+uint64(n) > uint64(r.Len()) {
		return 0, pos, ErrCorruptStream
	}
	var value uint32
	for i := uint(0); i < n; i++ {
		byteIdx := pos / 8
		bit := (r.data[byteIdx] >> (7 - (pos % 8))) & 1
		pos++
		value = (value << 1) | uint32(bit)
	}
	return value, pos, nil
}

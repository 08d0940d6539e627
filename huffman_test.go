package tinydecomp

import "testing"

// Builds a codebook with min_len=2, max_len=4, counts=[0,2,4] (for lengths
// 2,3,4), symbols=[0,1,2,3,4,5]. With bits_per_symbol=3 and
// bits_per_length_count=3, the canonical walk yields:
//
//	"000"  -> symbol 0 (3 bits)
//	"001"  -> symbol 1 (3 bits)
//	"0100" -> symbol 2 (4 bits)
//	"0101" -> symbol 3 (4 bits)
//	"0110" -> symbol 4 (4 bits)
//	"0111" -> symbol 5 (4 bits)
//
// hand-traced from the canonical-walk algorithm: the first bit splits off
// the empty length-2 row, the next splits the two length-3 codewords from
// the four length-4 ones, and the length-4 row is indexed by the remaining
// two bits.
func buildHuffmanStream(symbols []uint32) []byte {
	w := &bitWriter{}
	writeLomont1(w, uint32(len(symbols)), 6, 0) // byteLength
	writeLomont1(w, 2, 3, 0)                    // bits_per_symbol-1 = 2 -> 3
	writeLomont1(w, 2, 3, 0)                    // bits_per_length_count-1 = 2 -> 3
	writeLomont1(w, 1, 2, 0)                    // min_len-1 = 1 -> 2
	writeLomont1(w, 1, 4, -1)                   // delta_len-1 = 1 -> delta_len=2, max_len=4

	w.writeBits(0, 3) // count at length 2
	w.writeBits(2, 3) // count at length 3
	w.writeBits(0, 3) // symbol 0
	w.writeBits(1, 3) // symbol 1
	w.writeBits(4, 3) // count at length 4
	w.writeBits(2, 3) // symbol 2
	w.writeBits(3, 3) // symbol 3
	w.writeBits(4, 3) // symbol 4
	w.writeBits(5, 3) // symbol 5

	codewords := map[uint32]struct {
		value uint32
		bits  uint
	}{
		0: {0b000, 3},
		1: {0b001, 3},
		2: {0b0100, 4},
		3: {0b0101, 4},
		4: {0b0110, 4},
		5: {0b0111, 4},
	}
	for _, s := range symbols {
		cw := codewords[s]
		w.writeBits(cw.value, cw.bits)
	}
	return w.bytes()
}

func TestHuffmanCanonicalWalk(t *testing.T) {
	want := []uint32{0, 1, 2, 3, 4, 5}
	source := buildHuffmanStream(want)

	d, err := NewHuffmanDecoder(source)
	if err != nil {
		t.Fatalf("NewHuffmanDecoder: %v", err)
	}
	for i, w := range want {
		got, err := d.NextSymbol()
		if err != nil {
			t.Fatalf("NextSymbol(%d): %v", i, err)
		}
		if got != w {
			t.Fatalf("symbol %d: got %d, want %d", i, got, w)
		}
	}
	if _, err := d.NextSymbol(); err == nil {
		t.Fatal("expected io.EOF after declared byteLength symbols")
	}
}

func TestDecodeHuffmanOneShot(t *testing.T) {
	want := []byte{0, 5, 1, 4, 2, 3}
	wantU32 := make([]uint32, len(want))
	for i, b := range want {
		wantU32[i] = uint32(b)
	}
	source := buildHuffmanStream(wantU32)

	dest := make([]byte, len(want))
	n, err := DecodeHuffman(source, dest)
	if err != nil {
		t.Fatalf("DecodeHuffman: %v", err)
	}
	if n != len(want) {
		t.Fatalf("n = %d, want %d", n, len(want))
	}
	for i := range want {
		if dest[i] != want[i] {
			t.Fatalf("dest[%d] = %d, want %d", i, dest[i], want[i])
		}
	}
}

func TestDecodeHuffmanInsufficientDestination(t *testing.T) {
	source := buildHuffmanStream([]uint32{0, 1})
	dest := make([]byte, 1)
	if _, err := DecodeHuffman(source, dest); err != ErrInsufficientDestination {
		t.Fatalf("err = %v, want ErrInsufficientDestination", err)
	}
}

package tinydecomp

import "testing"

func TestDecompressedSize(t *testing.T) {
	w := &bitWriter{}
	writeLomont1(w, 12345, 6, 0)
	w.writeBits(0, 4) // trailing header bits DecompressedSize must not touch

	got, err := DecompressedSize(w.bytes())
	if err != nil {
		t.Fatalf("DecompressedSize: %v", err)
	}
	if got != 12345 {
		t.Fatalf("got %d, want 12345", got)
	}
}

// DecompressedSize must agree with the count a full Huffman decode reports,
// since both read the same leading field.
func TestDecompressedSizeMatchesHuffman(t *testing.T) {
	want := []uint32{0, 1, 2, 3, 4, 5}
	source := buildHuffmanStream(want)

	size, err := DecompressedSize(source)
	if err != nil {
		t.Fatalf("DecompressedSize: %v", err)
	}
	if size != uint32(len(want)) {
		t.Fatalf("got %d, want %d", size, len(want))
	}
}

package tinydecomp

import "testing"

// Reading 8 bits from a stream whose first byte is 0xA5 must return 0xA5:
// MSB-first within a byte means the first bit read is the top bit.
func TestBitReaderMSBFirst(t *testing.T) {
	r := NewBitReader([]byte{0xA5})
	v, err := r.Read(8)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != 0xA5 {
		t.Fatalf("got %#x, want 0xa5", v)
	}
	if r.Pos() != 8 {
		t.Fatalf("Pos() = %d, want 8", r.Pos())
	}
}

func TestBitReaderCrossesByteBoundary(t *testing.T) {
	// 0b10110010_1101____ -> read 4, read 8, read 4
	r := NewBitReader([]byte{0xB2, 0xD0})
	a, err := r.Read(4)
	if err != nil || a != 0xB {
		t.Fatalf("a = %#x, err = %v, want 0xb", a, err)
	}
	b, err := r.Read(8)
	if err != nil || b != 0x2D {
		t.Fatalf("b = %#x, err = %v, want 0x2d", b, err)
	}
	c, err := r.Read(4)
	if err != nil || c != 0x0 {
		t.Fatalf("c = %#x, err = %v, want 0x0", c, err)
	}
}

// ReadAt must not disturb the reader's own cursor.
func TestBitReaderReadAtDoesNotDisturbCursor(t *testing.T) {
	r := NewBitReader([]byte{0xFF, 0x00})
	if _, err := r.Read(4); err != nil {
		t.Fatalf("Read: %v", err)
	}
	before := r.Pos()

	v, next, err := r.ReadAt(0, 8)
	if err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if v != 0xFF {
		t.Fatalf("ReadAt value = %#x, want 0xff", v)
	}
	if next != 8 {
		t.Fatalf("ReadAt next = %d, want 8", next)
	}
	if r.Pos() != before {
		t.Fatalf("ReadAt disturbed cursor: %d != %d", r.Pos(), before)
	}
}

func TestBitReaderOutOfBoundsIsCorrupt(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	if _, err := r.Read(9); err == nil {
		t.Fatal("expected error reading past end of data")
	}
}

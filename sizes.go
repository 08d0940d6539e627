package tinydecomp

// DecompressedSize reads only the first Lomont1(6,0) field of source and
// returns it without parsing the rest of the header. For Huffman, LZ77, and
// LZCL this field is an explicit byte-length; Arithmetic has no separate
// byte-length field, but its first field (total) already equals the
// decompressed symbol count, one byte per symbol, so the same leading read
// gives the right answer there too. Ported from GetDecompressedSize in
// Decompressor.c, which callers use to size a destination buffer before
// committing to a full decode.
func DecompressedSize(source []byte) (uint32, error) {
	br := NewBitReader(source)
	return decodeLomont1(br, 6, 0)
}

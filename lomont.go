package tinydecomp

// decodeLomont1 decodes one value of the Lomont1 universal code: a
// chunked, self-delimiting prefix code parameterized by an initial chunk
// width and a signed per-chunk width delta. Every header field in every
// codec in this package is read with this function, each with its own
// fixed (chunkSize, deltaChunk) pair.
//
// Ported directly from DecodeUniversalLomont1 in Decompressor.c: read one
// continuation bit, read chunkSize bits, accumulate, adjust chunkSize by
// deltaChunk (clamped to a minimum of 1), repeat while the continuation bit
// is set.
func decodeLomont1(r *BitReader, chunkSize int, deltaChunk int) (uint32, error) {
	var value uint32
	shift := 0
	for {
		b, err := r.Read(1)
		if err != nil {
			return 0, err
		}
		chunk, err := r.Read(uint(chunkSize))
		if err != nil {
			return 0, err
		}
		value += chunk << uint(shift)
		shift += chunkSize

		if deltaChunk != 0 {
			chunkSize += deltaChunk
			if chunkSize <= 0 {
				chunkSize = 1
			}
		}

		if b == 0 {
			return value, nil
		}
	}
}

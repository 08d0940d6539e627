package tinydecomp

// golombDecoder is the second LZCL-only sub-codec: a unary quotient
// followed by a truncated-binary remainder. Like fixedDecoder, it only
// ever appears embedded in an LZCL stream, selected by sub-codec tag 3.
type golombDecoder struct {
	br        *BitReader
	parameter uint32
}

func (d *golombDecoder) readHeader() error {
	v, err := decodeLomont1(d.br, 6, 0)
	if err != nil {
		return err
	}
	d.parameter = v
	return nil
}

// decodeTruncated reads one truncated-binary-coded value in the range
// [0, n): the near-optimal fixed-range integer code that uses
// bitsRequired(n)-1 bits for the first 2^bitsRequired(n)-n values and
// bitsRequired(n) bits for the rest.
func decodeTruncated(br *BitReader, n uint32) (uint32, error) {
	k := bitsRequired(n)
	u := (uint32(1) << k) - n // number of values coded in the short (k-1 bit) form

	x, err := br.Read(k - 1)
	if err != nil {
		return 0, err
	}
	if x >= u {
		bit, err := br.Read(1)
		if err != nil {
			return 0, err
		}
		x = 2*x + bit - u
	}
	return x, nil
}

func (d *golombDecoder) nextSymbol() (uint32, error) {
	q := uint32(0)
	for {
		bit, err := d.br.Read(1)
		if err != nil {
			return 0, err
		}
		if bit != 1 {
			break
		}
		q++
	}
	r, err := decodeTruncated(d.br, d.parameter)
	if err != nil {
		return 0, err
	}
	return q*d.parameter + r, nil
}

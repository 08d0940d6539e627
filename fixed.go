package tinydecomp

// fixedDecoder is the simplest LZCL sub-codec: every symbol is a raw
// bitsPerSymbol-wide field. It has no public API of its own — it only ever
// appears embedded in an LZCL stream, selected by sub-codec tag 0.
type fixedDecoder struct {
	br            *BitReader
	bitsPerSymbol uint
}

func (d *fixedDecoder) readHeader() error {
	v, err := decodeLomont1(d.br, 3, 0)
	if err != nil {
		return err
	}
	d.bitsPerSymbol = uint(v) + 1
	return nil
}

func (d *fixedDecoder) nextSymbol() (uint32, error) {
	return d.br.Read(d.bitsPerSymbol)
}

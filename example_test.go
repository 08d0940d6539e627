package tinydecomp

import "fmt"

func ExampleDecodeLZCL() {
	source := buildLZCLFixedStream()
	window := make([]byte, 16)
	out, err := DecodeLZCL(source, window)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output: B
}

func ExampleDecodeHuffman() {
	source := buildHuffmanStream([]uint32{0, 1, 2, 3, 4, 5})
	dest := make([]byte, 6)
	if _, err := DecodeHuffman(source, dest); err != nil {
		panic(err)
	}
	fmt.Println(dest)
	// Output: [0 1 2 3 4 5]
}

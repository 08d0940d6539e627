// Command tinydecomp decodes one of the tinydecomp codec formats from an
// input file to an output file.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/clcodec/tinydecomp"
)

func main() {
	inputFile := flag.String("i", "", "input file")
	outputFile := flag.String("o", "", "output file")
	format := flag.String("format", "", "codec: huffman, arithmetic, lz77, or lzcl")
	window := flag.Int("window", 65536, "back-reference window size in bytes (lz77/lzcl only)")
	verify := flag.Bool("verify", false, "print an xxhash64 checksum of the decoded output")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" || *format == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	source, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := decode(*format, source, *window)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*outputFile, decoded, 0644); err != nil {
		log.Fatal(err)
	}

	if *verify {
		log.Printf("decoded %d bytes, xxhash64=%x", len(decoded), xxhash.Sum64(decoded))
	}
}

func decode(format string, source []byte, windowSize int) ([]byte, error) {
	switch format {
	case "huffman":
		size, err := tinydecomp.DecompressedSize(source)
		if err != nil {
			return nil, err
		}
		dest := make([]byte, size)
		n, err := tinydecomp.DecodeHuffman(source, dest)
		return dest[:n], err
	case "arithmetic":
		size, err := tinydecomp.DecompressedSize(source)
		if err != nil {
			return nil, err
		}
		dest := make([]byte, size)
		n, err := tinydecomp.DecodeArithmetic(source, dest)
		return dest[:n], err
	case "lz77":
		window := make([]byte, windowSize)
		return tinydecomp.DecodeLZ77(source, window)
	case "lzcl":
		window := make([]byte, windowSize)
		return tinydecomp.DecodeLZCL(source, window)
	default:
		log.Fatalf("unknown format %q", format)
		return nil, nil
	}
}

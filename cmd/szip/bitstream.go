package main

import (
	"io"

	szblock "github.com/dot5enko/agonzip/block"
	"github.com/dot5enko/agonzip/bits"
)

func newBitWriter() *bits.BitWriter {
	w := bits.NewEncodeBuffer(make([]byte, 0, 1<<16), szblock.Order)
	w.EnableGrowing()
	return &w
}

func newBitReader(r io.Reader) *bits.BitsReader {
	return bits.NewReader(r, szblock.Order)
}

package model

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/dot5enko/agonzip/bits"
)

func TestRunLengthRoundTrip(t *testing.T) {
	runs := []uint32{1, 2, 254, 255, 256, 257, 510, 511, 512, 1000}

	w := bits.NewEncodeBuffer(make([]byte, 1), binary.BigEndian)
	w.EnableGrowing()

	tEnc := newFreqTable(runAlphabetSize)
	enc := newRangeEncoder(&w)
	for _, run := range runs {
		encodeRunLength(enc, tEnc, run, 4)
	}
	enc.finish()

	r := bits.NewReader(bytes.NewReader(w.Bytes()), binary.BigEndian)
	tDec := newFreqTable(runAlphabetSize)
	dec := newRangeDecoder(r)
	for i, want := range runs {
		got := decodeRunLength(dec, tDec, 4)
		if got != want {
			t.Fatalf("run %d: got %d, want %d", i, got, want)
		}
	}
}

package model

import "github.com/dot5enko/agonzip/bits"

// renormThreshold mirrors the reference coder's carry-less renormalization
// condition: once (low^high) drops below this, their shared top byte is
// final and can be shifted out.
const renormThreshold = uint32(1) << 24

// rangeEncoder is the carry-less 32-bit range coder from
// other_examples/LessUp-Encoding__rangecoder.go, generalized two ways:
// the cumulative table is a per-symbol argument instead of a single
// static table (letting the caller rebuild it adaptively between
// symbols), and coded bytes are written straight through to the shared
// container stream as they're produced instead of being buffered and
// length-prefixed — mirroring the reference encoder's putchar-per-byte
// behavior, which is what lets a szip-coded block's body carry no
// explicit payload length (spec §6.2: the directory's length field is
// the block's raw byte count, not the coded size).
type rangeEncoder struct {
	low, high uint32
	w         *bits.BitWriter
}

func newRangeEncoder(w *bits.BitWriter) *rangeEncoder {
	return &rangeEncoder{low: 0, high: 0xFFFFFFFF, w: w}
}

func (e *rangeEncoder) encodeSymbol(sym uint32, t *freqTable) {
	rng := uint64(e.high) - uint64(e.low) + 1
	total := uint64(t.total)
	symLow := uint64(t.cum[sym])
	symHigh := uint64(t.cum[sym+1])

	e.high = e.low + uint32((rng*symHigh)/total-1)
	e.low = e.low + uint32((rng*symLow)/total)

	for (e.low ^ e.high) < renormThreshold {
		e.w.PutU8(byte(e.low >> 24))
		e.low <<= 8
		e.high = (e.high << 8) | 0xFF
	}
}

func (e *rangeEncoder) finish() {
	for i := 0; i < 4; i++ {
		e.w.PutU8(byte(e.low >> 24))
		e.low <<= 8
	}
}

// rangeDecoder mirrors rangeEncoder, pulling coded bytes one at a time
// from the shared container stream rather than a pre-sliced payload —
// it stops consuming exactly when the block-level decode loop (driven
// by the directory's raw byte count, see pipeline.DecodeBlock) stops
// asking for symbols, leaving the stream cursor positioned at the start
// of the next directory entry.
type rangeDecoder struct {
	low, high, code uint32
	r               *bits.BitsReader
}

func newRangeDecoder(r *bits.BitsReader) *rangeDecoder {
	d := &rangeDecoder{low: 0, high: 0xFFFFFFFF, r: r}
	for i := 0; i < 4; i++ {
		d.code = (d.code << 8) | uint32(d.readByte())
	}
	return d
}

func (d *rangeDecoder) readByte() byte {
	b, err := d.r.ReadU8()
	if err != nil {
		return 0
	}
	return b
}

func (d *rangeDecoder) decodeSymbol(t *freqTable) uint32 {
	rng := uint64(d.high) - uint64(d.low) + 1
	total := uint64(t.total)
	offset := uint64(d.code - d.low)
	value := ((offset+1)*total - 1) / rng

	sym := t.symbolAt(uint32(value))

	symLow := uint64(t.cum[sym])
	symHigh := uint64(t.cum[sym+1])

	d.high = d.low + uint32((rng*symHigh)/total-1)
	d.low = d.low + uint32((rng*symLow)/total)

	for (d.low ^ d.high) < renormThreshold {
		d.low <<= 8
		d.high = (d.high << 8) | 0xFF
		d.code = (d.code << 8) | uint32(d.readByte())
	}

	return sym
}

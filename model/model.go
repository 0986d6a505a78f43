// Package model implements the adaptive statistical coder behind szip's
// block bodies (spec §4.8, §6.3): two independently adaptive frequency
// tables, one over the byte alphabet and one over run lengths, coded
// through a carry-less range coder streamed directly against the
// container's shared writer/reader.
package model

import (
	"github.com/dot5enko/agonzip/alphabet"
	"github.com/dot5enko/agonzip/bits"
)

// freshIncrement weights symbol observations heavily right after a
// block starts, so the model adapts to the block's statistics within a
// handful of symbols; steadyIncrement is the gentler weight used once
// fix_after_first has been called. Both values are implementer-defined
// (spec §4.8: "implementation-defined but deterministic") but fixed, so
// encode and decode always agree.
const (
	freshIncrement  = 8
	steadyIncrement = 1
)

// Encoder implements the encode/fix_after_first/finish side of the
// model contract (spec §6.3), writing coded bytes directly to w.
type Encoder struct {
	rc        *rangeEncoder
	byteTable *freqTable
	runTable  *freqTable
	increment uint32
}

// NewEncoder prepares a fresh model for one block (spec §6.3 "init"),
// coding straight into w.
func NewEncoder(w *bits.BitWriter) *Encoder {
	return &Encoder{
		rc:        newRangeEncoder(w),
		byteTable: newFreqTable(alphabet.Size),
		runTable:  newFreqTable(runAlphabetSize),
		increment: freshIncrement,
	}
}

// Encode codes one (symbol, run_length) pair.
func (e *Encoder) Encode(symbol byte, runLength uint32) {
	e.rc.encodeSymbol(uint32(symbol), e.byteTable)
	e.byteTable.update(uint32(symbol), e.increment)

	encodeRunLength(e.rc, e.runTable, runLength, e.increment)
}

// FixAfterFirst is the one-shot transition from the fresh-block update
// weight to the steady-state weight, called immediately after the first
// pair is coded (spec §4.8).
func (e *Encoder) FixAfterFirst() {
	e.increment = steadyIncrement
}

// Finish flushes the coder's final bytes to the underlying writer.
func (e *Encoder) Finish() {
	e.rc.finish()
}

// Decoder implements the decode/fix_after_first side of the model
// contract, pulling coded bytes directly from r.
type Decoder struct {
	rc        *rangeDecoder
	byteTable *freqTable
	runTable  *freqTable
	increment uint32
}

func NewDecoder(r *bits.BitsReader) *Decoder {
	return &Decoder{
		rc:        newRangeDecoder(r),
		byteTable: newFreqTable(alphabet.Size),
		runTable:  newFreqTable(runAlphabetSize),
		increment: freshIncrement,
	}
}

// Decode decodes the next (symbol, run_length) pair.
func (d *Decoder) Decode() (byte, uint32) {
	sym := d.rc.decodeSymbol(d.byteTable)
	d.byteTable.update(sym, d.increment)

	run := decodeRunLength(d.rc, d.runTable, d.increment)

	return byte(sym), run
}

// FixAfterFirst mirrors Encoder.FixAfterFirst; both sides must call it
// at the same logical point (immediately after the first pair) for the
// models to stay in lockstep.
func (d *Decoder) FixAfterFirst() {
	d.increment = steadyIncrement
}

// Package alphabet holds the compile-time choice of byte-alphabet size
// (spec §6.3: "A is a compile-time choice in {64, 256}"), shared by the
// sort/unsort context tables and the statistical coder's frequency
// tables so both sides of the codec agree on A without threading it
// through every call.
//
// Build with `-tags alpha64` to select the 64-symbol alphabet; the
// default build uses the full byte range.
package alphabet

// Size is the number of distinct byte values the coder and sorter model.
// Order2Size is Size*Size, the span of a 2-byte rolling context.
const (
	Size       = size
	Bits       = bits
	Order2Size = size * size
	Order2Mask = size*size - 1
)

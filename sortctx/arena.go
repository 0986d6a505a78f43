// Package sortctx implements the n-order block sort and its inverse, the
// BW (order-0) fallback, and the optional fast order-4 variant (spec
// §4.4-§4.7).
package sortctx

import (
	"github.com/dot5enko/agonzip/alphabet"
	"github.com/dot5enko/agonzip/bits"
)

// Arena is the sort's reusable scratch space: the permutation being built
// ("index"), the permutation from the previous pass ("oldIndex"), the
// 2-byte context cursor table, and the unsort side's flag bitmaps and
// successor table. Grounded on the teacher's manager.Manager: a struct
// created once per process and grown on demand, never shrunk, handed to
// every Sort/Unsort call instead of being reallocated per block.
//
// The original implementation packs the permutation into 1024-entry
// "ptrblock" pages linked through a free list (spec §3 "Pointer
// blocks"); the spec's own redesign note licenses a flat slice instead
// ("an implementer may replace it with a flat Vec<u32> of length L and a
// cumulative-offset array; the algorithm is identical"), which is what a
// GC'd language reaches for in place of hand-rolled page management.
type Arena struct {
	index    []uint32
	oldIndex []uint32
	o2Counts []uint32

	table       []uint32
	flags1      bits.BitSet
	flags2      bits.BitSet
	flagsLength int

	bwTransVec []uint32

	o4Counters []uint32
	o4Context  []uint16
	o4Symbols  []byte
}

// NewArena returns an empty, ungrown arena. Ensure grows it lazily.
func NewArena() *Arena {
	return &Arena{}
}

// Ensure grows the sort-side slices (permutation + 2-byte context
// cursors) to cover at least length+order positions. Shrinking never
// happens: a later, smaller block reuses the larger backing array.
func (a *Arena) Ensure(length int) {
	if cap(a.index) < length {
		a.index = make([]uint32, length)
		a.oldIndex = make([]uint32, length)
	} else {
		a.index = a.index[:length]
		a.oldIndex = a.oldIndex[:length]
	}

	if cap(a.o2Counts) < alphabet.Order2Size {
		a.o2Counts = make([]uint32, alphabet.Order2Size)
	} else {
		a.o2Counts = a.o2Counts[:alphabet.Order2Size]
		for i := range a.o2Counts {
			a.o2Counts[i] = 0
		}
	}
}

func (a *Arena) swap() {
	a.index, a.oldIndex = a.oldIndex, a.index
}

// ensureFlags grows the unsort side's flag bitmaps and successor table to
// cover length+1 positions (the extra slot holds the INDIRECT sentinel).
func (a *Arena) ensureFlags(length int) {
	if a.flagsLength < length {
		a.flags1 = bits.NewBitSet(length + 64)
		a.flags2 = bits.NewBitSet(length + 64)
		a.flagsLength = length
	} else {
		a.flags1.Reset()
		a.flags2.Reset()
	}

	if cap(a.table) < length+1 {
		a.table = make([]uint32, length+1)
	} else {
		a.table = a.table[:length+1]
	}
}

func (a *Arena) ensureBW(length int) {
	if cap(a.bwTransVec) < length {
		a.bwTransVec = make([]uint32, length)
	} else {
		a.bwTransVec = a.bwTransVec[:length]
	}
}

func (a *Arena) ensureFastOrder4() {
	if a.o4Counters == nil {
		a.o4Counters = make([]uint32, order16Size)
	} else {
		for i := range a.o4Counters {
			a.o4Counters[i] = 0
		}
	}
}

func (a *Arena) ensureFastOrder4Buffers(length int) {
	if cap(a.o4Context) < length {
		a.o4Context = make([]uint16, length)
		a.o4Symbols = make([]byte, length)
	} else {
		a.o4Context = a.o4Context[:length]
		a.o4Symbols = a.o4Symbols[:length]
	}
}

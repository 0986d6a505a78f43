package sortctx

import (
	"errors"

	"github.com/dot5enko/agonzip/alphabet"
	"github.com/dot5enko/agonzip/bits"
	"github.com/dot5enko/agonzip/ops"
)

// Indirect is the high-bit sentinel distinguishing a chained successor
// slot from a direct one in the unsort permutation table (spec §3
// "INDIRECT").
const Indirect uint32 = 0x800000

var ErrNotCyclic = errors.New("sortctx: unsort walk did not return to indexlast")

// Unsort reverses Sort: given the sorted last-symbol column, indexlast,
// and order, it reconstructs the original block. counts may be nil, in
// which case it is derived from in. Grounded on sz_srt.c's sz_unsrt:
// makeorder2 seeds the order-2 context boundaries, increaseorder raises
// them to order-1, maketable builds the successor table, and the final
// walk follows direct/INDIRECT links starting from indexlast (spec
// §4.5).
func Unsort(a *Arena, in []byte, length int, indexlast uint32, counts []uint32, order int) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}

	var ownCounts [alphabet.Size]uint32
	if counts == nil {
		counts = ownCounts[:]
		ops.CountBytes(in[:length], counts)
	} else {
		copy(ownCounts[:], counts)
		counts = ownCounts[:]
	}
	ops.PrefixSum(counts, counts)

	a.ensureFlags(length)

	makeOrder2(&a.flags1, in, counts, length)

	cur, next := &a.flags1, &a.flags2
	for k := 2; k < order-1; k++ {
		next.Reset()
		increaseOrder(cur, next, in, counts, length)
		cur, next = next, cur
	}

	makeTable(cur, a.table, in, counts, length)
	a.table[length] = Indirect

	out := make([]byte, length)
	j := indexlast
	for i := 0; i < length; i++ {
		tmp := a.table[j]
		if tmp&Indirect != 0 {
			slot := tmp &^ Indirect
			j = a.table[slot]
			a.table[slot]++
		} else {
			a.table[j]++
			j = tmp
		}
		out[i] = in[j]
	}
	if j != indexlast {
		return nil, ErrNotCyclic
	}

	return out, nil
}

// makeOrder2 sets a bit at the start of every order-2 context run (spec
// §4.5 step 2).
func makeOrder2(flags *bits.BitSet, in []byte, counts []uint32, length int) {
	var ct [alphabet.Size]uint32
	copy(ct[:], counts)

	for i := 0; i < alphabet.Size; i++ {
		flags.Set(int(ct[i]))
	}

	j := 0
	for i := 0; i < alphabet.Size-1; i++ {
		k := int(counts[i+1])
		for ; j < k; j++ {
			ct[in[j]]++
		}
		for kk := 0; kk < alphabet.Size; kk++ {
			flags.Set(int(ct[kk]))
		}
	}
}

// increaseOrder derives outFlags (order k+1 boundaries) from inFlags
// (order k boundaries), marking a new boundary wherever a byte is seen
// for the first time within its current context (spec §4.5 step 3).
func increaseOrder(inFlags, outFlags *bits.BitSet, in []byte, counts []uint32, length int) {
	var ct [alphabet.Size]uint32
	copy(ct[:], counts)

	var lastSeen [alphabet.Size]int
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	contextStart := 0
	for i := 0; i < length; i++ {
		if inFlags.Get(i) == 1 {
			contextStart = i
		}
		ch := in[i]
		if lastSeen[ch] != contextStart {
			lastSeen[ch] = contextStart
			outFlags.Set(int(ct[ch]))
		}
		ct[ch]++
	}
}

// makeTable builds the successor table: table[i] is either a direct
// bucket cursor (first occurrence of in[i] within its context) or an
// INDIRECT pointer chaining to the slot tracking subsequent occurrences
// (spec §4.5 step 4).
func makeTable(inFlags *bits.BitSet, table []uint32, in []byte, counts []uint32, length int) {
	var ct [alphabet.Size]uint32
	copy(ct[:], counts)

	var firstSeen [alphabet.Size]int

	contextStart := 0
	for i := 0; i < length; i++ {
		if inFlags.Get(i) == 1 {
			contextStart = i
		}
		ch := in[i]
		if firstSeen[ch] <= contextStart {
			table[i] = ct[ch]
			firstSeen[ch] = i + 1
		} else {
			table[i] = uint32(firstSeen[ch]-1) | Indirect
		}
		ct[ch]++
	}
}

package sortctx

import (
	"sort"

	"github.com/dot5enko/agonzip/alphabet"
	"github.com/dot5enko/agonzip/ops"
)

// SortBW is the order-0 Burrows-Wheeler fallback (spec §4.7): a full
// sort over the block's cyclic rotations. It returns indexfirst, the
// sorted-order row of the identity rotation (the one starting at
// position 0), and overwrites block[0:length] with the BWT's last
// column.
//
// sz_srt.c builds this via a first-byte radix bucket plus a qsort_u4
// comparator offset by whether the bucket's byte equals block[0]; that
// indirection exists to avoid re-comparing the already-matched first
// byte; it is an optimization of the same cyclic suffix sort performed
// here directly with sort.Slice, which is the canonical, and
// considerably more readable, construction of the same transform.
func SortBW(block []byte, length int) uint32 {
	rotations := make([]int, length)
	for i := range rotations {
		rotations[i] = i
	}

	sort.Slice(rotations, func(a, b int) bool {
		ia, ib := rotations[a], rotations[b]
		for k := 0; k < length; k++ {
			ba := block[(ia+k)%length]
			bb := block[(ib+k)%length]
			if ba != bb {
				return ba < bb
			}
		}
		return false
	})

	var indexfirst uint32
	last := make([]byte, length)
	for row, start := range rotations {
		if start == 0 {
			indexfirst = uint32(row)
		}
		last[row] = block[(start-1+length)%length]
	}

	copy(block[:length], last)
	return indexfirst
}

// UnsortBW reverses SortBW via the standard transformation-vector
// construction (spec §4.7): trans[i] = Counts[in[i]]++, built as a
// single pass over i in ascending row order so ties among equal bytes
// rank consistently with SortBW's cyclic ordering.
//
// trans is the LF (predecessor) mapping: trans[row] is the sorted row
// of the character preceding in[row] in the original block. Walking it
// from indexfirst therefore yields the original bytes in reverse
// (block[length-1] down to block[0]), so the walk fills out back to
// front instead of reversing a forward fill afterward.
func UnsortBW(a *Arena, in []byte, length int, indexfirst uint32, counts []uint32) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}

	var ownCounts [alphabet.Size]uint32
	if counts == nil {
		ops.CountBytes(in[:length], ownCounts[:])
	} else {
		copy(ownCounts[:], counts)
	}
	ops.PrefixSum(ownCounts[:], ownCounts[:])

	a.ensureBW(length)
	trans := a.bwTransVec

	for i := 0; i < length; i++ {
		trans[i] = ownCounts[in[i]]
		ownCounts[in[i]]++
	}

	out := make([]byte, length)
	ic := indexfirst
	for i := 0; i < length; i++ {
		out[length-1-i] = in[ic]
		ic = trans[ic]
	}
	if ic != indexfirst {
		return nil, ErrNotCyclic
	}

	return out, nil
}

package sortctx

import (
	"errors"

	"github.com/dot5enko/agonzip/alphabet"
	"github.com/dot5enko/agonzip/ops"
)

var (
	ErrInvalidOrder     = errors.New("sortctx: order must be 0 or in [3, 255]")
	ErrBlockTooSmall    = errors.New("sortctx: block shorter than order")
	ErrWorkspaceTooTiny = errors.New("sortctx: block slice needs length+order bytes of workspace")
)

// Sort permutes block[0:length] into n-order context order, per spec
// §4.4. block must have length+order bytes of capacity: the trailing
// order bytes are workspace, overwritten with a copy of block's front
// and left undefined on return. order must be >= 3 (order 0 routes to
// SortBW, order 1/2 are rejected by the CLI before reaching here).
//
// Grounded step-for-step on sz_srt.c's sz_srt/sortorder2/incsortorder/
// finishsort, generalized from the fixed ptrblock arena to Arena's flat
// slices (spec §3's licensed substitution).
func Sort(a *Arena, block []byte, length int, order int) (uint32, error) {
	if order < 3 {
		return 0, ErrInvalidOrder
	}
	if length < order {
		return 0, ErrBlockTooSmall
	}
	if len(block) < length+order {
		return 0, ErrWorkspaceTooTiny
	}

	a.Ensure(length + order)

	var counts [alphabet.Size]uint32
	var indexlast uint32

	sortOrder2(a, block, length, order, counts[:], &indexlast)
	for k := order - 2; k > 1; k-- {
		incSortOrder(a, block, length, counts[:], k, &indexlast)
	}
	finishSort(a, block, length, counts[:], &indexlast)

	return indexlast, nil
}

// sortOrder2 is the sort's seed pass: it derives both the single-byte
// and the 2-byte rolling-context frequency tables directly from block,
// then places every position into the arena at its 2-byte context's
// cursor (spec §4.4 step 1).
func sortOrder2(a *Arena, in []byte, length int, order int, counts []uint32, indexlast *uint32) {
	for i := range counts {
		counts[i] = 0
	}
	o2 := a.o2Counts

	context := uint32(in[length-1]) << alphabet.Bits
	for i := 0; i < length; i++ {
		context = (context >> alphabet.Bits) | (uint32(in[i]) << alphabet.Bits)
		counts[in[i]]++
		o2[context]++
	}

	ops.PrefixSum(o2, o2)
	ops.PrefixSum(counts, counts)

	offset := order
	context = (uint32(in[length-offset]) << alphabet.Bits) | uint32(in[length-offset-1])
	if context == alphabet.Order2Mask {
		*indexlast = uint32(length - 1)
	} else {
		*indexlast = o2[context+1] - 1
	}

	offset--

	i := 0
	for ; i < offset; i++ {
		in[i+length] = in[i]
		context = (context >> alphabet.Bits) | (uint32(in[i+length-offset]) << alphabet.Bits)
		a.index[o2[context]] = uint32(i + length)
		o2[context]++
	}
	for ; i < length; i++ {
		context = (context >> alphabet.Bits) | (uint32(in[i-offset]) << alphabet.Bits)
		a.index[o2[context]] = uint32(i)
		o2[context]++
	}
}

// incSortOrder raises the sort order by one: it re-buckets every
// permutation entry from the previous pass by the byte `offset`
// positions further back (spec §4.4 step 2). The arena's index/oldIndex
// roles swap each call.
func incSortOrder(a *Arena, in []byte, length int, counts []uint32, offset int, indexlast *uint32) {
	var ct [alphabet.Size]uint32
	copy(ct[:], counts)

	a.swap()

	var ch byte
	il := *indexlast

	var i uint32
	for i = 0; i <= il; i++ {
		tmp := a.oldIndex[i]
		ch = in[int(tmp)-offset]
		a.index[ct[ch]] = tmp
		ct[ch]++
	}
	*indexlast = ct[ch] - 1

	for ; i < uint32(length); i++ {
		tmp := a.oldIndex[i]
		ch = in[int(tmp)-offset]
		a.index[ct[ch]] = tmp
		ct[ch]++
	}
}

// finishSort is the sort's output pass: each permutation entry's
// preceding byte becomes the emitted "last symbol" at that bucket's
// cursor, and the result is copied back into block (spec §4.4 step 3).
func finishSort(a *Arena, in []byte, length int, counts []uint32, indexlast *uint32) {
	var ct [alphabet.Size]uint32
	copy(ct[:], counts)

	a.swap()

	var ch byte
	il := *indexlast

	var i uint32
	for i = 0; i <= il; i++ {
		tmp := a.oldIndex[i]
		ch = in[int(tmp)-1]
		a.index[ct[ch]] = uint32(in[tmp])
		ct[ch]++
	}
	*indexlast = ct[ch] - 1

	for ; i < uint32(length); i++ {
		tmp := a.oldIndex[i]
		ch = in[int(tmp)-1]
		a.index[ct[ch]] = uint32(in[tmp])
		ct[ch]++
	}

	for i := 0; i < length; i++ {
		in[i] = byte(a.index[i])
	}
}

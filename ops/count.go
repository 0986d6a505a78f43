// Package ops holds the block's byte-level scan primitives: tallying one
// counter per byte value, the basis for both the sort's bucket offsets
// and the statistical coder's frequency tables (spec §3 "Counts").
package ops

// CountBytes tallies arr into counts, one bucket per distinct byte value
// present (counts must have at least 256 entries). Grounded on the
// 8-way manually unrolled scan idiom of CompareNumericValuesAreEqual /
// CompareValuesAreInRangeUnsignedInts, generalized from "collect matching
// indices" to "accumulate one counter per value" — same unroll-by-8 shape,
// no branch per element.
func CountBytes(arr []byte, counts []uint32) {
	n := len(arr)
	i := 0

	for ; i+7 < n; i += 8 {
		counts[arr[i+0]]++
		counts[arr[i+1]]++
		counts[arr[i+2]]++
		counts[arr[i+3]]++
		counts[arr[i+4]]++
		counts[arr[i+5]]++
		counts[arr[i+6]]++
		counts[arr[i+7]]++
	}

	for ; i < n; i++ {
		counts[arr[i]]++
	}
}

// PrefixSum turns a frequency table into cumulative start offsets: on
// return, out[v] is the number of elements strictly less than v. out may
// alias counts.
func PrefixSum(counts []uint32, out []uint32) {
	var running uint32
	for v := range counts {
		c := counts[v]
		out[v] = running
		running += c
	}
}

// ReversePrefixSum turns a frequency table into descending cumulative
// counts (a suffix sum): out[v] is the number of elements with value
// >= v. out may alias counts. The sort's bucket passes use PrefixSum,
// not this function.
func ReversePrefixSum(counts []uint32, out []uint32) {
	var running uint32
	for v := len(counts) - 1; v >= 0; v-- {
		c := counts[v]
		running += c
		out[v] = running
	}
}

package sortctx

// Mode is the sum type over the three sort variants sharing one public
// contract: BW returns indexfirst, the others return indexlast (spec
// §9 "tagged variants").
type Mode uint8

const (
	ModeNOrder Mode = iota
	ModeBW
	ModeFastOrder4
)

// ModeForOrder maps the order byte stored in a szip block header to the
// sort variant that produced it: 0 selects BW, 4 selects the fast path
// only when it was enabled for this process, anything else is the
// general n-order sort (spec §9).
func ModeForOrder(order uint8) Mode {
	switch {
	case order == 0:
		return ModeBW
	case order == 4 && EnableFastOrder4Unsort:
		return ModeFastOrder4
	default:
		return ModeNOrder
	}
}

// SortBlock runs the variant selected by order and returns the
// index (indexlast, or indexfirst for BW) needed to invert it.
//
// order==4 is routed through ModeForOrder, the same dispatch
// UnsortBlock uses, so the fast path is only ever exercised as a
// matched sort/unsort pair gated by EnableFastOrder4Unsort: with the
// flag off (the default) both sides use the general n-order code,
// which is known correct; only opting in pairs SortFastOrder4 with
// UnsortFastOrder4 on both sides at once.
func SortBlock(a *Arena, block []byte, length int, order int) (uint32, error) {
	switch ModeForOrder(uint8(order)) {
	case ModeBW:
		return SortBW(block, length), nil
	case ModeFastOrder4:
		return SortFastOrder4(a, block, length), nil
	default:
		return Sort(a, block, length, order)
	}
}

// UnsortBlock inverts a block encoded by SortBlock with the given order.
func UnsortBlock(a *Arena, in []byte, length int, index uint32, counts []uint32, order int) ([]byte, error) {
	switch ModeForOrder(uint8(order)) {
	case ModeBW:
		return UnsortBW(a, in, length, index, counts)
	case ModeFastOrder4:
		return UnsortFastOrder4(a, in, length, index, counts)
	default:
		return Unsort(a, in, length, index, counts, order)
	}
}

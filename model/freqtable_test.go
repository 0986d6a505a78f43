package model

import "testing"

func TestFreqTableInitialUniform(t *testing.T) {
	tb := newFreqTable(8)
	for i := 0; i < 8; i++ {
		if tb.freq[i] != 1 {
			t.Fatalf("freq[%d] = %d, want 1", i, tb.freq[i])
		}
	}
	if tb.total != 8 {
		t.Fatalf("total = %d, want 8", tb.total)
	}
}

func TestFreqTableUpdateShiftsCumulative(t *testing.T) {
	tb := newFreqTable(4)
	tb.update(2, 8)
	if tb.freq[2] != 9 {
		t.Fatalf("freq[2] = %d, want 9", tb.freq[2])
	}
	if tb.total != 12 {
		t.Fatalf("total = %d, want 12", tb.total)
	}
	if tb.cum[0] != 0 || tb.cum[4] != tb.total {
		t.Fatalf("cum bounds wrong: %v", tb.cum)
	}
}

func TestFreqTableSymbolAtMatchesCumulative(t *testing.T) {
	tb := newFreqTable(4)
	tb.update(1, 20)
	tb.update(3, 5)

	for sym := uint32(0); sym < 4; sym++ {
		lo, hi := tb.cum[sym], tb.cum[sym+1]
		for v := lo; v < hi; v++ {
			got := tb.symbolAt(v)
			if got != sym {
				t.Fatalf("symbolAt(%d) = %d, want %d (range [%d,%d))", v, got, sym, lo, hi)
			}
		}
	}
}

func TestFreqTableRescaleOnOverflow(t *testing.T) {
	tb := newFreqTable(2)
	tb.freq[0] = maxTotal - 2
	tb.freq[1] = 1
	tb.total = maxTotal - 1
	tb.rebuild()

	tb.update(0, 8) // would overflow maxTotal, forcing a rescale first

	if tb.total > maxTotal {
		t.Fatalf("total = %d, should be <= maxTotal after rescale", tb.total)
	}
	if tb.freq[0] == 0 || tb.freq[1] == 0 {
		t.Fatalf("rescale must never zero out a symbol: %v", tb.freq)
	}
}

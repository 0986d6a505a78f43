package sortctx

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestFastOrder4RoundTripViaGeneralUnsort(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	data := make([]byte, 600)
	rng.Read(data)

	block := append([]byte(nil), data...)
	a := NewArena()

	indexlast := SortFastOrder4(a, block, len(data))

	out, err := UnsortFastOrder4(a, block, len(data), indexlast, nil)
	if err != nil {
		t.Fatalf("UnsortFastOrder4: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch")
	}
}

func TestFastOrder4MultisetPreserved(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, the quick brown fox")
	block := append([]byte(nil), data...)
	a := NewArena()

	SortFastOrder4(a, block, len(data))

	if tally(data) != tally(block) {
		t.Fatal("byte multiset changed by fast order-4 sort")
	}
}

// TestFastOrder4RoundTripRepetitiveContexts exercises SortFastOrder4
// paired with UnsortFastOrder4 (which delegates to the general n-order
// Unsort) on data
// where most 4-byte contexts repeat many times over, unlike the 600
// random bytes above where contexts are essentially unique and never
// force the sort to break ties among equal contexts.
func TestFastOrder4RoundTripRepetitiveContexts(t *testing.T) {
	chunk := []byte("abcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcd")
	data := bytes.Repeat(chunk, 20)

	block := append([]byte(nil), data...)
	a := NewArena()

	indexlast := SortFastOrder4(a, block, len(data))

	out, err := UnsortFastOrder4(a, block, len(data), indexlast, nil)
	if err != nil {
		t.Fatalf("UnsortFastOrder4: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch on repetitive-context data")
	}
}

// TestSortBlockUnsortBlockOrder4MatchedPair exercises SortBlock/
// UnsortBlock's order-4 dispatch directly (the path cmd/szip actually
// drives), under both settings of EnableFastOrder4Unsort, confirming
// each setting produces a matched, round-tripping pair rather than
// encode silently using one algorithm and decode another.
func TestSortBlockUnsortBlockOrder4MatchedPair(t *testing.T) {
	chunk := []byte("abcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcd")
	data := bytes.Repeat(chunk, 20)

	prev := EnableFastOrder4Unsort
	defer func() { EnableFastOrder4Unsort = prev }()

	for _, flag := range []bool{false, true} {
		EnableFastOrder4Unsort = flag

		block := make([]byte, len(data)+4)
		copy(block, data)
		a := NewArena()

		indexlast, err := SortBlock(a, block, len(data), 4)
		if err != nil {
			t.Fatalf("flag=%v: SortBlock: %v", flag, err)
		}

		out, err := UnsortBlock(a, block, len(data), indexlast, nil, 4)
		if err != nil {
			t.Fatalf("flag=%v: UnsortBlock: %v", flag, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("flag=%v: round trip mismatch", flag)
		}
	}
}

func TestModeForOrderDispatch(t *testing.T) {
	if ModeForOrder(0) != ModeBW {
		t.Fatal("order 0 should select BW")
	}
	if ModeForOrder(6) != ModeNOrder {
		t.Fatal("order 6 should select n-order")
	}

	prev := EnableFastOrder4Unsort
	defer func() { EnableFastOrder4Unsort = prev }()

	EnableFastOrder4Unsort = false
	if ModeForOrder(4) != ModeNOrder {
		t.Fatal("order 4 with fast path disabled should select n-order")
	}

	EnableFastOrder4Unsort = true
	if ModeForOrder(4) != ModeFastOrder4 {
		t.Fatal("order 4 with fast path enabled should select fast order-4")
	}
}

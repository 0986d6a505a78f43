package pipeline

import "testing"

func checkRoundTrip(t *testing.T, data []byte, w int) {
	t.Helper()
	reordered := Reorder(data, len(data), w)
	back := Unreorder(reordered, len(reordered), w)
	if len(back) != len(data) {
		t.Fatalf("length mismatch: got %d want %d", len(back), len(data))
	}
	for i := range data {
		if back[i] != data[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, back[i], data[i])
		}
	}
}

func TestReorderRoundTripDivides(t *testing.T) {
	data := []byte("ABCDEFGHIJKL") // 12 bytes, w=4 -> 3 full records
	checkRoundTrip(t, data, 4)
}

func TestReorderRoundTripUneven(t *testing.T) {
	data := []byte("ABCDEFG") // 7 bytes, w=3 -> 2 full records + 1 partial
	checkRoundTrip(t, data, 3)
}

func TestReorderIdentityWidthOne(t *testing.T) {
	data := []byte("hello world")
	out := Reorder(data, len(data), 1)
	for i := range data {
		if out[i] != data[i] {
			t.Fatalf("width-1 reorder should be identity at %d", i)
		}
	}
}

func TestReorderIsPermutation(t *testing.T) {
	data := make([]byte, 50)
	for i := range data {
		data[i] = byte(i)
	}
	for w := 1; w <= 7; w++ {
		out := Reorder(data, len(data), w)
		seen := make([]bool, len(data))
		for _, b := range out {
			if seen[b] {
				t.Fatalf("w=%d: duplicate byte value %d in output", w, b)
			}
			seen[b] = true
		}
	}
}

func TestReorderWidthLargerThanBlock(t *testing.T) {
	data := []byte("ab")
	checkRoundTrip(t, data, 127)
}

package bits

import (
	"encoding/binary"
	"testing"
)

func TestBitWriterPutU24RoundTrip(t *testing.T) {
	buf := make([]byte, 0, 16)
	w := NewEncodeBuffer(buf[:16], binary.BigEndian)

	w.PutU24(0x0102_03)
	w.PutU24(0xFFFFFF)

	got := w.Bytes()
	want := []byte{0x01, 0x02, 0x03, 0xFF, 0xFF, 0xFF}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestBitWriterGrows(t *testing.T) {
	w := NewEncodeBuffer(make([]byte, 1), binary.BigEndian)
	w.EnableGrowing()

	for i := 0; i < 64; i++ {
		w.PutU8(uint8(i))
	}

	got := w.Bytes()
	if len(got) != 64 {
		t.Fatalf("len = %d, want 64", len(got))
	}
	for i, b := range got {
		if int(b) != i {
			t.Fatalf("byte %d = %d, want %d", i, b, i)
		}
	}
}

func TestBitWriterPanicsWhenGrowingDisabled(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when writer is full and growing disabled")
		}
	}()

	w := NewEncodeBuffer(make([]byte, 1), binary.BigEndian)
	w.PutU8(1)
	w.PutU8(2)
}

func TestBitWriterLittleEndian(t *testing.T) {
	w := NewEncodeBuffer(make([]byte, 8), binary.LittleEndian)
	w.PutU32(0x01020304)
	got := w.Bytes()
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

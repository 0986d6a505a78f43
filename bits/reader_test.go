package bits

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestBitsReaderRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	w := NewEncodeBuffer(buf, binary.BigEndian)
	w.PutU8(0x7F)
	w.PutU16(0xCAFE)
	w.PutU24(0x010203)
	w.PutU32(0xDEADBEEF)
	w.PutU64(0x0102030405060708)

	r := NewReader(bytes.NewReader(w.Bytes()), binary.BigEndian)

	if v := r.MustReadU8(); v != 0x7F {
		t.Fatalf("u8 = %#x", v)
	}
	if v := r.MustReadU16(); v != 0xCAFE {
		t.Fatalf("u16 = %#x", v)
	}
	if v := r.MustReadU24(); v != 0x010203 {
		t.Fatalf("u24 = %#x", v)
	}
	v32, err := r.ReadU32()
	if err != nil || v32 != 0xDEADBEEF {
		t.Fatalf("u32 = %#x, err = %v", v32, err)
	}
	if v := r.MustReadU64(); v != 0x0102030405060708 {
		t.Fatalf("u64 = %#x", v)
	}
}

func TestBitsReaderPeek1(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x42, 0x48}), binary.BigEndian)

	peeked, err := r.Peek1()
	if err != nil || peeked != 0x42 {
		t.Fatalf("peek = %#x, err = %v", peeked, err)
	}

	// Peek again without consuming.
	peeked, err = r.Peek1()
	if err != nil || peeked != 0x42 {
		t.Fatalf("second peek = %#x, err = %v", peeked, err)
	}

	got := r.MustReadU8()
	if got != 0x42 {
		t.Fatalf("read after peek = %#x, want 0x42", got)
	}

	got2 := r.MustReadU8()
	if got2 != 0x48 {
		t.Fatalf("read after peek = %#x, want 0x48", got2)
	}
}

func TestBitsReaderPeekThenMultiByteRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}), binary.BigEndian)

	if _, err := r.Peek1(); err != nil {
		t.Fatal(err)
	}

	v, err := r.ReadU32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x01020304 {
		t.Fatalf("v = %#x", v)
	}
}

func TestBitsReaderEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), binary.BigEndian)
	if _, err := r.Peek1(); !errors.Is(err, ErrEOF) {
		t.Fatalf("err = %v, want ErrEOF", err)
	}
}

func TestBitsReaderShortReadIsError(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}), binary.BigEndian)
	if _, err := r.ReadU32(); err == nil {
		t.Fatal("expected error on short read")
	}
}

package block

import (
	"bytes"
	"testing"

	"github.com/dot5enko/agonzip/bits"
)

func TestStoredBlockRoundTrip(t *testing.T) {
	data := []byte("hello world")

	buf := make([]byte, 0, 64)
	w := bits.NewEncodeBuffer(buf[:64], Order)
	WriteStoredBlock(&w, data)

	body := w.Bytes()[1:] // strip kind byte, ReadStoredBlock is called post-kind-dispatch in ReadBlockBody
	r := bits.NewReader(bytes.NewReader(body), Order)

	got, err := ReadStoredBlock(r, uint32(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Data, data) {
		t.Fatalf("data = %q, want %q", got.Data, data)
	}
}

func TestReadBlockBodyDispatchStored(t *testing.T) {
	data := []byte("x")
	buf := make([]byte, 0, 16)
	w := bits.NewEncodeBuffer(buf[:16], Order)
	WriteStoredBlock(&w, data)

	r := bits.NewReader(bytes.NewReader(w.Bytes()), Order)
	kind, stored, _, err := ReadBlockBody(r, uint32(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if kind != KindStored {
		t.Fatalf("kind = %d", kind)
	}
	if !bytes.Equal(stored.Data, data) {
		t.Fatalf("data = %q", stored.Data)
	}
}

func TestSzipHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 0, 32)
	w := bits.NewEncodeBuffer(buf[:32], Order)
	WriteSzipHeader(&w, SzipHeader{IndexLast: 12345, Order: 6})

	r := bits.NewReader(bytes.NewReader(w.Bytes()), Order)
	kind, _, szip, err := ReadBlockBody(r, 0)
	if err != nil {
		t.Fatal(err)
	}
	if kind != KindSzip {
		t.Fatalf("kind = %d", kind)
	}
	if szip.IndexLast != 12345 || szip.Order != 6 {
		t.Fatalf("szip = %+v", szip)
	}
}

func TestReadBlockBodyUnknownKind(t *testing.T) {
	r := bits.NewReader(bytes.NewReader([]byte{0x09}), Order)
	if _, _, _, err := ReadBlockBody(r, 1); err != ErrUnknownKind {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestStoredBlockTailMismatch(t *testing.T) {
	body := []byte{0x00, 0x00, 0x00} // bogus tail implying a length that doesn't match what was requested
	r := bits.NewReader(bytes.NewReader(body), Order)
	if _, err := ReadStoredBlock(r, 0); err == nil {
		t.Fatal("expected tail mismatch error")
	}
}

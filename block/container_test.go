package block

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/dot5enko/agonzip/bits"
)

func TestGlobalHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 6)
	w := bits.NewEncodeBuffer(buf, Order)
	WriteGlobalHeader(&w, GlobalHeader{VMajor: VMajor, VMinor: VMinor})

	got := w.Bytes()
	want := []byte{GlobalMagic0, GlobalMagic1, GlobalMagic2, GlobalMagic3, VMajor, VMinor}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}

	r := bits.NewReader(bytes.NewReader(got), Order)
	h, err := ReadGlobalHeader(r)
	if err != nil {
		t.Fatal(err)
	}
	if h.VMajor != VMajor || h.VMinor != VMinor {
		t.Fatalf("h = %+v", h)
	}
}

func TestReadGlobalHeaderBadMagic(t *testing.T) {
	r := bits.NewReader(bytes.NewReader([]byte{0x00, 0x5A, 0x0A, 0x04, 1, 0}), Order)
	if _, err := ReadGlobalHeader(r); err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestReadGlobalHeaderFutureVersion(t *testing.T) {
	r := bits.NewReader(bytes.NewReader([]byte{GlobalMagic0, GlobalMagic1, GlobalMagic2, GlobalMagic3, VMajor + 1, 0}), Order)
	if _, err := ReadGlobalHeader(r); err != ErrFutureVersion {
		t.Fatalf("err = %v, want ErrFutureVersion", err)
	}
}

func TestBlockDirRoundTrip(t *testing.T) {
	buf := make([]byte, 6)
	w := bits.NewEncodeBuffer(buf, Order)
	WriteBlockDir(&w, BlockDir{Length: 0xABCDEF & 0xFFFFFF})

	got := w.Bytes()

	r := bits.NewReader(bytes.NewReader(got), Order)
	d, err := ReadBlockDir(r)
	if err != nil {
		t.Fatal(err)
	}
	if d.Length != 0xABCDEF&0xFFFFFF {
		t.Fatalf("length = %#x", d.Length)
	}
}

func TestPeekEventDispatch(t *testing.T) {
	r := bits.NewReader(bytes.NewReader([]byte{DirMagic0}), Order)
	ev, b, err := PeekEvent(r)
	if err != nil || ev != EventBlockDir || b != DirMagic0 {
		t.Fatalf("ev=%v b=%#x err=%v", ev, b, err)
	}

	r2 := bits.NewReader(bytes.NewReader([]byte{GlobalMagic0}), Order)
	ev2, _, err := PeekEvent(r2)
	if err != nil || ev2 != EventGlobalHeader {
		t.Fatalf("ev2=%v err=%v", ev2, err)
	}

	r3 := bits.NewReader(bytes.NewReader(nil), Order)
	ev3, _, err := PeekEvent(r3)
	if err != nil || ev3 != EventEOF {
		t.Fatalf("ev3=%v err=%v", ev3, err)
	}

	r4 := bits.NewReader(bytes.NewReader([]byte{0x99}), Order)
	if _, _, err := PeekEvent(r4); err == nil {
		t.Fatal("expected fatal error on unexpected byte")
	}
}

func TestOrderIsBigEndian(t *testing.T) {
	if Order != binary.BigEndian {
		t.Fatal("container order must be big-endian per spec")
	}
}

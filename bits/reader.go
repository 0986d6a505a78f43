package bits

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	ErrEOF          = errors.New("end of file")
	ErrReadMismatch = errors.New("read size mismatch")
)

const MaxBinReaderBufferSize = 256

// BitsReader is a buffered binary reader keyed by an explicit byte order,
// mirroring BitWriter. Peek1 backs the container reader's "look at the
// first byte before deciding what it is" dispatch (global header vs block
// directory vs EOF, spec ch.4.1) without needing a bufio.Reader underneath.
type BitsReader struct {
	readBuffer [MaxBinReaderBufferSize]byte

	buf     io.Reader
	order   binary.ByteOrder
	peeked  bool
	peekVal byte
}

func NewReader(buf io.Reader, order binary.ByteOrder) *BitsReader {
	return &BitsReader{buf: buf, order: order}
}

func (r *BitsReader) fill(dst []byte) error {
	if r.peeked && len(dst) > 0 {
		dst[0] = r.peekVal
		r.peeked = false
		if len(dst) == 1 {
			return nil
		}
		n, err := io.ReadFull(r.buf, dst[1:])
		if err != nil {
			return err
		}
		if n != len(dst)-1 {
			return ErrReadMismatch
		}
		return nil
	}

	n, err := io.ReadFull(r.buf, dst)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return ErrReadMismatch
	}
	return nil
}

// Peek1 reads one byte without consuming it from the logical stream; the
// next Read* call returns it first.
func (r *BitsReader) Peek1() (byte, error) {
	if r.peeked {
		return r.peekVal, nil
	}
	var b [1]byte
	n, err := r.buf.Read(b[:])
	if n == 1 {
		r.peekVal = b[0]
		r.peeked = true
		return b[0], nil
	}
	if err == nil || err == io.EOF {
		err = ErrEOF
	}
	return 0, err
}

func (r *BitsReader) ReadU8() (uint8, error) {
	if err := r.fill(r.readBuffer[:1]); err != nil {
		return 0, err
	}
	return r.readBuffer[0], nil
}

func (r *BitsReader) MustReadU8() uint8 {
	u, er := r.ReadU8()
	if er != nil {
		panic(er)
	}
	return u
}

func (r *BitsReader) ReadU16() (uint16, error) {
	if err := r.fill(r.readBuffer[:2]); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.readBuffer[:2]), nil
}

func (r *BitsReader) MustReadU16() uint16 {
	u, er := r.ReadU16()
	if er != nil {
		panic(er)
	}
	return u
}

// ReadU24 reads a 3-byte unsigned integer in the reader's byte order. Used
// for the block directory length and the szip block's indexlast field.
func (r *BitsReader) ReadU24() (uint32, error) {
	if err := r.fill(r.readBuffer[:3]); err != nil {
		return 0, err
	}
	if r.order == binary.BigEndian {
		return uint32(r.readBuffer[0])<<16 | uint32(r.readBuffer[1])<<8 | uint32(r.readBuffer[2]), nil
	}
	return uint32(r.readBuffer[0]) | uint32(r.readBuffer[1])<<8 | uint32(r.readBuffer[2])<<16, nil
}

func (r *BitsReader) MustReadU24() uint32 {
	u, er := r.ReadU24()
	if er != nil {
		panic(er)
	}
	return u
}

func (r *BitsReader) ReadU32() (uint32, error) {
	if err := r.fill(r.readBuffer[:4]); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.readBuffer[:4]), nil
}

func (r *BitsReader) ReadU64() (uint64, error) {
	if err := r.fill(r.readBuffer[:8]); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.readBuffer[:8]), nil
}

func (r *BitsReader) MustReadU64() uint64 {
	u, er := r.ReadU64()
	if er != nil {
		panic(er)
	}
	return u
}

func (r *BitsReader) ReadBytes(n int, out []byte) error {
	return r.fill(out[:n])
}

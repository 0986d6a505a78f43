package bits

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// BitWriter is a growable binary output buffer keyed by an explicit byte
// order, so the same type serves the szip container (big-endian) and the
// turbo container (little-endian) without duplicating the growth logic.
type BitWriter struct {
	pos   int
	data  []byte
	size  int
	order binary.ByteOrder

	growingEnabled bool
}

func NewEncodeBuffer(buf []byte, order binary.ByteOrder) BitWriter {

	result := BitWriter{}

	result.data = buf
	result.pos = 0
	result.size = len(buf)
	result.order = order

	return result
}

func (this *BitWriter) EnableGrowing() {
	this.growingEnabled = true
}

func (this *BitWriter) Reset() {
	this.pos = 0
}

func (this BitWriter) Position() int {
	return this.pos
}

func (this *BitWriter) grow(atLeast int) {

	newSize := this.size * 2
	if this.pos+atLeast > newSize {
		newSize += atLeast
	}
	if newSize == 0 {
		newSize = atLeast
	}

	newBuf := make([]byte, newSize)

	copy(newBuf, this.data[:this.pos])
	this.data = newBuf
	this.size = newSize
}

func (this *BitWriter) tryGrow(n int) {
	if (this.pos + n) > this.size {
		if this.growingEnabled {
			this.grow(n)
		} else {
			panic(fmt.Sprintf("bit writer growing is disabled on pos : %d, try grow %d, from size : %d", this.pos, n, this.size))
		}
	}
}

func (this *BitWriter) Write(p []byte) (n int, err error) {

	oldl := len(p)
	this.tryGrow(oldl)

	n = copy(this.data[this.pos:], p)

	if oldl != n {
		return 0, errors.New("not enough space")
	}

	this.pos += n

	return
}

func (this *BitWriter) Bytes() []byte {
	return this.data[:this.pos]
}

func (this *BitWriter) PutU8(u uint8) {
	this.tryGrow(1)
	this.data[this.pos] = u
	this.pos++
}

func (this *BitWriter) PutU16(v uint16) {
	this.tryGrow(2)
	this.order.PutUint16(this.data[this.pos:], v)
	this.pos += 2
}

// PutU24 writes the low 24 bits of v in the writer's byte order. szip's
// block directory length and indexlast fields are both u24.
func (this *BitWriter) PutU24(v uint32) {
	this.tryGrow(3)
	if this.order == binary.BigEndian {
		this.data[this.pos+0] = byte(v >> 16)
		this.data[this.pos+1] = byte(v >> 8)
		this.data[this.pos+2] = byte(v)
	} else {
		this.data[this.pos+0] = byte(v)
		this.data[this.pos+1] = byte(v >> 8)
		this.data[this.pos+2] = byte(v >> 16)
	}
	this.pos += 3
}

func (this *BitWriter) PutU32(v uint32) {
	this.tryGrow(4)
	this.order.PutUint32(this.data[this.pos:], v)
	this.pos += 4
}

func (this *BitWriter) PutU64(v uint64) {
	this.tryGrow(8)
	this.order.PutUint64(this.data[this.pos:], v)
	this.pos += 8
}

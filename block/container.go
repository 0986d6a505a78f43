// Package block implements the szip container format: a global magic
// header, a per-block directory entry, and the two block body kinds
// (stored raw, statistically coded), per spec ch.3 and ch.4.1/§6.2.
package block

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dot5enko/agonzip/bits"
)

var Order = binary.BigEndian

var (
	ErrBadMagic       = errors.New("block: bad magic")
	ErrBadTerminator  = errors.New("block: missing directory terminator")
	ErrUnknownKind    = errors.New("block: unknown block kind")
	ErrTailMismatch   = errors.New("block: stored block tail length mismatch")
	ErrFutureVersion  = errors.New("block: global header version newer than this tool")
	ErrUnexpectedByte = errors.New("block: unexpected byte at stream position")
)

const (
	GlobalMagic0 = 0x53
	GlobalMagic1 = 0x5A
	GlobalMagic2 = 0x0A
	GlobalMagic3 = 0x04

	DirMagic0 = 0x42
	DirMagic1 = 0x48

	KindStored = 0
	KindSzip   = 1
)

// VMajor/VMinor identify the format version this build writes and the
// newest version it can read.
const (
	VMajor = 1
	VMinor = 0
)

// GlobalHeader is the 6-byte header that opens a szip stream, and may
// reappear mid-stream ahead of a concatenated archive (spec §4.1).
type GlobalHeader struct {
	VMajor uint8
	VMinor uint8
}

func WriteGlobalHeader(w *bits.BitWriter, h GlobalHeader) {
	w.PutU8(GlobalMagic0)
	w.PutU8(GlobalMagic1)
	w.PutU8(GlobalMagic2)
	w.PutU8(GlobalMagic3)
	w.PutU8(h.VMajor)
	w.PutU8(h.VMinor)
}

func ReadGlobalHeader(r *bits.BitsReader) (GlobalHeader, error) {
	var h GlobalHeader

	b0 := r.MustReadU8()
	b1, err := r.ReadU8()
	if err != nil {
		return h, err
	}
	b2, err := r.ReadU8()
	if err != nil {
		return h, err
	}
	b3, err := r.ReadU8()
	if err != nil {
		return h, err
	}
	if b0 != GlobalMagic0 || b1 != GlobalMagic1 || b2 != GlobalMagic2 || b3 != GlobalMagic3 {
		return h, ErrBadMagic
	}

	vmaj, err := r.ReadU8()
	if err != nil {
		return h, err
	}
	vmin, err := r.ReadU8()
	if err != nil {
		return h, err
	}

	if vmaj > VMajor {
		return h, ErrFutureVersion
	}

	h.VMajor = vmaj
	h.VMinor = vmin
	return h, nil
}

// BlockDir is the 6-byte per-block directory entry preceding every block
// body: magic, the block's raw (uncoded) byte length for both body
// kinds, and a reserved terminator (the
// original format's unused filename field, always zero here).
type BlockDir struct {
	Length uint32
}

func WriteBlockDir(w *bits.BitWriter, d BlockDir) {
	w.PutU8(DirMagic0)
	w.PutU8(DirMagic1)
	w.PutU24(d.Length)
	w.PutU8(0x00)
}

// ReadBlockDir reads a full directory entry, including its own first
// magic byte — callers that used PeekEvent to decide this is a directory
// don't need to consume that peeked byte separately; the next real read
// (this one) replays it.
func ReadBlockDir(r *bits.BitsReader) (BlockDir, error) {
	var d BlockDir

	b0, err := r.ReadU8()
	if err != nil {
		return d, err
	}
	if b0 != DirMagic0 {
		return d, ErrBadMagic
	}
	b1, err := r.ReadU8()
	if err != nil {
		return d, err
	}
	if b1 != DirMagic1 {
		return d, ErrBadMagic
	}

	length, err := r.ReadU24()
	if err != nil {
		return d, err
	}

	term, err := r.ReadU8()
	if err != nil {
		return d, err
	}
	if term != 0x00 {
		return d, ErrBadTerminator
	}

	d.Length = length
	return d, nil
}

// StreamEvent discriminates what PeekEvent found at the top of the stream.
type StreamEvent int

const (
	EventEOF StreamEvent = iota
	EventGlobalHeader
	EventBlockDir
)

// PeekEvent inspects the next byte on the stream and reports whether it
// opens a new global header, a block directory, or signals end of input.
// Any other byte is a fatal format error (spec §4.1).
func PeekEvent(r *bits.BitsReader) (StreamEvent, uint8, error) {
	b, err := r.Peek1()
	if err != nil {
		if errors.Is(err, bits.ErrEOF) {
			return EventEOF, 0, nil
		}
		return EventEOF, 0, err
	}

	switch b {
	case GlobalMagic0:
		return EventGlobalHeader, b, nil
	case DirMagic0:
		return EventBlockDir, b, nil
	default:
		return EventEOF, b, fmt.Errorf("%w: 0x%02x", ErrUnexpectedByte, b)
	}
}

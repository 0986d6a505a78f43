package block

import (
	"github.com/dot5enko/agonzip/bits"
)

// StoredBlock is block kind 0: raw bytes plus a redundant big-endian total
// length trailer used as a tail checksum (dirsize(6) + kind(1) + len(3) +
// len(payload)), per spec §6.2. The preceding BlockDir.Length carries the
// raw byte count directly — unlike kind 1, there is nothing else to frame.
type StoredBlock struct {
	Data []byte
}

// WriteStoredBlock writes the kind byte, raw payload and tail length.
func WriteStoredBlock(w *bits.BitWriter, data []byte) {
	w.PutU8(KindStored)
	w.Write(data)
	w.PutU24(uint32(6 + 1 + 3 + len(data)))
}

// ReadStoredBlock reads a kind-0 body whose raw length was already given
// by the preceding BlockDir.Length, and validates the tail checksum.
func ReadStoredBlock(r *bits.BitsReader, length uint32) (StoredBlock, error) {
	data := make([]byte, length)
	if err := r.ReadBytes(int(length), data); err != nil {
		return StoredBlock{}, err
	}

	tail, err := r.ReadU24()
	if err != nil {
		return StoredBlock{}, err
	}

	expected := uint32(6+1+3) + length
	if tail != expected {
		return StoredBlock{}, ErrTailMismatch
	}

	return StoredBlock{Data: data}, nil
}

// SzipHeader is block kind 1's fixed-size header: the sort's index
// (indexlast, or indexfirst for a BW/order-0 block) and the sort order
// used, per spec §4.9/§6.2. It carries no length of its own — the coded
// bytes that follow are framed by nothing but the decode loop's own
// bytes-left countdown against the preceding BlockDir.Length (the raw
// block size), exactly like the original reference's range coder reading
// straight off the shared stdin cursor with no payload-length field.
// Reading/writing the actual coded bytes is the model package's job,
// driven by the pipeline package against the same writer/reader.
type SzipHeader struct {
	IndexLast uint32
	Order     uint8
}

func WriteSzipHeader(w *bits.BitWriter, h SzipHeader) {
	w.PutU8(KindSzip)
	w.PutU24(h.IndexLast)
	w.PutU8(h.Order)
}

func ReadSzipHeader(r *bits.BitsReader) (SzipHeader, error) {
	indexLast, err := r.ReadU24()
	if err != nil {
		return SzipHeader{}, err
	}
	order, err := r.ReadU8()
	if err != nil {
		return SzipHeader{}, err
	}
	return SzipHeader{IndexLast: indexLast, Order: order}, nil
}

// ReadBlockBody dispatches on the kind byte following a directory entry
// (spec §4.1): kind 0 is read and verified in full here; kind 1 only has
// its fixed header read here, leaving the coded bytes on the stream for
// the caller to consume via the model/pipeline packages.
func ReadBlockBody(r *bits.BitsReader, length uint32) (kind uint8, stored StoredBlock, szip SzipHeader, err error) {
	kind, err = r.ReadU8()
	if err != nil {
		return
	}

	switch kind {
	case KindStored:
		stored, err = ReadStoredBlock(r, length)
	case KindSzip:
		szip, err = ReadSzipHeader(r)
	default:
		err = ErrUnknownKind
	}
	return
}

package pipeline

import (
	"errors"

	"github.com/dot5enko/agonzip/alphabet"
	"github.com/dot5enko/agonzip/bits"
	szblock "github.com/dot5enko/agonzip/block"
	"github.com/dot5enko/agonzip/model"
	"github.com/dot5enko/agonzip/sortctx"
)

// ErrCorrupt is returned when a decoded run length would overrun the
// block's remaining byte budget (spec §4.8 "fail corrupt").
var ErrCorrupt = errors.New("pipeline: corrupt block, run length exceeds bytes left")

// Codec owns the process-wide reusable sort arena (spec ch.5: "the sort
// arena and scratch buffers... are cached at the process level and grown
// on demand"). One Codec serves every block in a stream.
type Codec struct {
	arena *sortctx.Arena
}

func NewCodec() *Codec {
	return &Codec{arena: sortctx.NewArena()}
}

// storedThreshold mirrors the reference encoder's "too small to bother
// compressing" cutoff (spec §4.1: "Choose kind 0 if the block is
// smaller than or equal to max(order, 5)").
func storedThreshold(order int) int {
	if order > 5 {
		return order
	}
	return 5
}

// EncodeBlock runs the full forward pipeline for one block (spec §4.9):
// directory, then either a stored body (tiny blocks) or reorder → diff →
// sort → RLE-group + statistically code. recordWidth and incremental
// come from the CLI invocation, not the stream — they apply uniformly to
// every block in a run and are never themselves persisted.
func (c *Codec) EncodeBlock(w *bits.BitWriter, data []byte, order int, recordWidth int, incremental bool) error {
	length := len(data)

	// Under the 64-symbol alphabet build, every byte is lossily masked
	// to its low 6 bits before anything else happens — matching the
	// reference encoder's unconditional "discard the top two bits"
	// step, which only makes sense for inputs already known to live in
	// that range (spec §6.3: "compile-time choice ∈ {64, 256}").
	if alphabet.Size == 64 {
		for i := range data {
			data[i] &= 0x3F
		}
	}

	szblock.WriteBlockDir(w, szblock.BlockDir{Length: uint32(length)})

	if length <= storedThreshold(order) {
		szblock.WriteStoredBlock(w, data)
		return nil
	}

	working := make([]byte, length)
	copy(working, data)
	if recordWidth > 1 {
		working = Reorder(working, length, recordWidth)
	}
	if incremental {
		Diff(working)
	}

	workLen := length
	if order >= 3 {
		workLen = length + order
	}
	buf := make([]byte, workLen)
	copy(buf, working)

	index, err := sortctx.SortBlock(c.arena, buf, length, order)
	if err != nil {
		return err
	}

	szblock.WriteSzipHeader(w, szblock.SzipHeader{IndexLast: index, Order: uint8(order)})

	enc := model.NewEncoder(w)
	encodeRuns(enc, buf, length)
	enc.Finish()

	return nil
}

// DecodeBlock inverts EncodeBlock given the directory's raw length and
// the stream's recordWidth/incremental settings (spec §4.9 "Decode").
func (c *Codec) DecodeBlock(r *bits.BitsReader, dirLength uint32, recordWidth int, incremental bool) ([]byte, error) {
	kind, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	switch kind {
	case szblock.KindStored:
		stored, err := szblock.ReadStoredBlock(r, dirLength)
		if err != nil {
			return nil, err
		}
		return stored.Data, nil

	case szblock.KindSzip:
		header, err := szblock.ReadSzipHeader(r)
		if err != nil {
			return nil, err
		}

		charcount := make([]uint32, alphabet.Size)
		dec := model.NewDecoder(r)
		sorted, err := decodeRuns(dec, int(dirLength), charcount)
		if err != nil {
			return nil, err
		}

		unsorted, err := sortctx.UnsortBlock(c.arena, sorted, int(dirLength), header.IndexLast, charcount, int(header.Order))
		if err != nil {
			return nil, err
		}

		if incremental {
			Undiff(unsorted)
		}
		if recordWidth > 1 {
			unsorted = Unreorder(unsorted, len(unsorted), recordWidth)
		}
		return unsorted, nil

	default:
		return nil, szblock.ErrUnknownKind
	}
}

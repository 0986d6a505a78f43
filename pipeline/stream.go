package pipeline

import (
	"io"

	szblock "github.com/dot5enko/agonzip/block"
	"github.com/dot5enko/agonzip/bits"
)

// Options bundles the CLI-level parameters that apply uniformly to every
// block in one invocation (spec §6.1): none of these are persisted in the
// stream itself, so the decoder must be invoked with the same values the
// encoder used.
type Options struct {
	BlockSize   int
	Order       int
	RecordWidth int
	Incremental bool
}

// EncodeStream reads src in BlockSize chunks and writes a complete szip
// archive to w: one global header followed by one directory+body per
// block (spec §4.1, §4.9). An empty src still produces a valid archive
// containing only the global header and no blocks.
func EncodeStream(w *bits.BitWriter, src io.Reader, opt Options) error {
	szblock.WriteGlobalHeader(w, szblock.GlobalHeader{VMajor: szblock.VMajor, VMinor: szblock.VMinor})

	c := NewCodec()
	buf := make([]byte, opt.BlockSize)

	for {
		n, err := io.ReadFull(src, buf)
		if n > 0 {
			if encErr := c.EncodeBlock(w, buf[:n], opt.Order, opt.RecordWidth, opt.Incremental); encErr != nil {
				return encErr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// DecodeStream reads one or more back-to-back szip archives from r and
// writes the reconstructed bytes to dst (spec §4.1: "A stream may contain
// multiple back-to-back archives; a fresh global header may reappear").
func DecodeStream(r *bits.BitsReader, dst io.Writer, opt Options) error {
	c := NewCodec()

	for {
		event, _, err := szblock.PeekEvent(r)
		if err != nil {
			return err
		}

		switch event {
		case szblock.EventEOF:
			return nil

		case szblock.EventGlobalHeader:
			if _, err := szblock.ReadGlobalHeader(r); err != nil {
				return err
			}

		case szblock.EventBlockDir:
			dir, err := szblock.ReadBlockDir(r)
			if err != nil {
				return err
			}
			data, err := c.DecodeBlock(r, dir.Length, opt.RecordWidth, opt.Incremental)
			if err != nil {
				return err
			}
			if _, err := dst.Write(data); err != nil {
				return err
			}
		}
	}
}

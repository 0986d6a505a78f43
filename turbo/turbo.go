// Package turbo implements agonturbo, the "turbo" stream codec (spec §1,
// collaborator codec). The container shape is carried over unchanged from
// original_source/build/agz/agoncompress.cpp's CompressionFileHeader: a
// 3-byte marker "AGC", a 1-byte type, and a 4-byte little-endian original
// size. The original stream body is produced by a bespoke ESP32 bitstream
// (agon_compress_byte) whose header was filtered out of the retrieval
// pack; spec §1 scopes the turbo codec's internals as implementer's
// choice, so the body here is produced by github.com/pierrec/lz4/v4 —
// already a direct dependency of the teacher repo.
package turbo

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/pierrec/lz4/v4"
)

const (
	Marker0 = 'A'
	Marker1 = 'G'
	Marker2 = 'C'

	TypeTurbo = 'T'
)

var (
	ErrBadMarker = errors.New("turbo: bad container marker")
	ErrBadType   = errors.New("turbo: unsupported compression type")
)

// Header is the fixed 8-byte prefix of an agonturbo archive.
type Header struct {
	Type     byte
	OrigSize uint32
}

func writeHeader(w io.Writer, h Header) error {
	buf := make([]byte, 8)
	buf[0], buf[1], buf[2] = Marker0, Marker1, Marker2
	buf[3] = h.Type
	binary.LittleEndian.PutUint32(buf[4:], h.OrigSize)
	_, err := w.Write(buf)
	return err
}

func readHeader(r io.Reader) (Header, error) {
	var h Header
	buf := make([]byte, 8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return h, err
	}
	if buf[0] != Marker0 || buf[1] != Marker1 || buf[2] != Marker2 {
		return h, ErrBadMarker
	}
	h.Type = buf[3]
	h.OrigSize = binary.LittleEndian.Uint32(buf[4:])
	return h, nil
}

// Encode compresses src into a complete agonturbo archive.
func Encode(src []byte) ([]byte, error) {
	var body bytes.Buffer
	zw := lz4.NewWriter(&body)
	if _, err := zw.Write(src); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := writeHeader(&out, Header{Type: TypeTurbo, OrigSize: uint32(len(src))}); err != nil {
		return nil, err
	}
	if _, err := out.Write(body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode expands a complete agonturbo archive back into its original bytes.
func Decode(archive []byte) ([]byte, error) {
	r := bytes.NewReader(archive)
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if h.Type != TypeTurbo {
		return nil, ErrBadType
	}

	zr := lz4.NewReader(r)
	out := make([]byte, 0, h.OrigSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

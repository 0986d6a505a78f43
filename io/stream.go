// Package io adapts the CLI's positional file arguments (spec §6.1) to
// plain io.Reader/io.Writer streams, falling back to stdin/stdout when a
// path is omitted.
package io

import (
	"errors"
	"io"
	"os"
)

// FileReader wraps a path that may or may not exist yet, opened lazily by
// Open. Grounded on the teacher's FileReader: same opened-flag guard and
// same "mismatch is an error" read/write discipline, narrowed from random
// access (ReadAt/WriteAt) to the sequential access szip's container
// streaming actually needs.
type FileReader struct {
	path   string
	file   *os.File
	opened bool

	exists bool
}

func NewFileReader(path string) *FileReader {

	_, err := os.Stat(path)

	freader := &FileReader{
		path:   path,
		exists: err == nil,
	}

	return freader
}

func (f *FileReader) Open(readOnly bool) (topErr error) {

	var perm os.FileMode = 0644

	if readOnly {
		f.file, topErr = os.OpenFile(f.path, os.O_RDONLY, perm)
	} else {
		f.file, topErr = os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	}

	if topErr == nil {
		f.opened = true
	}

	return topErr
}

func (f *FileReader) Close() error {
	if !f.opened {
		return nil
	}

	return f.file.Close()
}

func (f *FileReader) Read(p []byte) (int, error) {
	if !f.opened {
		return 0, errors.New("file not opened")
	}
	return f.file.Read(p)
}

func (f *FileReader) Write(p []byte) (int, error) {
	if !f.opened {
		return 0, errors.New("file not opened")
	}

	n, err := f.file.Write(p)
	if err == nil && n != len(p) {
		return n, errors.New("written bytes mismatch")
	}
	return n, err
}

// OpenInput opens path for sequential reading, or returns os.Stdin when
// path is empty (spec §6.1 "missing -> stdin").
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return stdStream{os.Stdin}, nil
	}
	fr := NewFileReader(path)
	if err := fr.Open(true); err != nil {
		return nil, err
	}
	return fr, nil
}

// OpenOutput opens path for sequential writing, or returns os.Stdout when
// path is empty (spec §6.1 "missing -> stdout").
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return stdStream{os.Stdout}, nil
	}
	fr := NewFileReader(path)
	if err := fr.Open(false); err != nil {
		return nil, err
	}
	return fr, nil
}

// stdStream adapts os.Stdin/os.Stdout to io.ReadCloser/io.WriteCloser
// without closing the underlying stream, matching the teacher's opened-
// flag discipline for the one case the OS manages the file's lifetime.
type stdStream struct {
	f *os.File
}

func (s stdStream) Read(p []byte) (int, error)  { return s.f.Read(p) }
func (s stdStream) Write(p []byte) (int, error) { return s.f.Write(p) }
func (s stdStream) Close() error                { return nil }

package klv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Source is a cursor over an io.ReaderAt. It implements mxf.ByteSource for
// both in-memory buffers and open files.
type Source struct {
	r    io.ReaderAt
	size int64
	pos  int64
}

var _ mxf.ByteSource = (*Source)(nil)

// NewSource wraps r, whose readable length is size bytes.
func NewSource(r io.ReaderAt, size int64) *Source {
	return &Source{r: r, size: size}
}

// NewBytesSource returns a source reading from an immutable byte slice.
func NewBytesSource(b []byte) *Source {
	return NewSource(bytes.NewReader(b), int64(len(b)))
}

// FileSource is a Source backed by an open file.
type FileSource struct {
	*Source
	f *os.File
}

// OpenFile opens path for positioned reads.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mxf.ErrIO, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", mxf.ErrIO, err)
	}
	return &FileSource{Source: NewSource(f, info.Size()), f: f}, nil
}

// Close closes the underlying file.
func (s *FileSource) Close() error {
	return s.f.Close()
}

// Name returns the path the source was opened from.
func (s *FileSource) Name() string {
	return s.f.Name()
}

func (s *Source) Read(n int) ([]byte, error) {
	b, err := s.ReadAt(s.pos, n)
	if err != nil {
		return nil, err
	}
	s.pos += int64(n)
	return b, nil
}

func (s *Source) ReadAt(offset int64, n int) ([]byte, error) {
	if n < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: invalid read of %d bytes at offset %d", mxf.ErrIO, n, offset)
	}
	if offset+int64(n) > s.size {
		return nil, fmt.Errorf("%w: short read of %d bytes at offset %d (size %d)", mxf.ErrIO, n, offset, s.size)
	}
	buf := make([]byte, n)
	got, err := s.r.ReadAt(buf, offset)
	if got == n {
		return buf, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return nil, fmt.Errorf("%w: reading %d bytes at offset %d: %w", mxf.ErrIO, n, offset, err)
}

func (s *Source) Skip(n int64) error {
	return s.SeekTo(s.pos + n)
}

func (s *Source) SeekTo(offset int64) error {
	if offset < 0 || offset > s.size {
		return fmt.Errorf("%w: seek to %d outside [0, %d]", mxf.ErrIO, offset, s.size)
	}
	s.pos = offset
	return nil
}

func (s *Source) Position() int64 { return s.pos }

func (s *Source) Size() int64 { return s.size }

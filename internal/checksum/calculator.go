package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/zeebo/errs"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Error is the error class for checksum failures.
var Error = errs.Class("checksum")

// chunkSize bounds how much of a value is buffered at once.
const chunkSize = 64 << 10

// Calculator computes digests of a byte range of a source.
type Calculator interface {
	// CalculateRaw digests the bytes of [start, end) as stored.
	CalculateRaw(src mxf.ByteSource, start, end int64) (string, error)

	// CalculateNormalized digests the non-fill KLV packets of [start, end)
	// with canonical length fields.
	CalculateNormalized(src mxf.ByteSource, start, end int64) (string, error)
}

// SHA256 implements Calculator using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of the bytes of [start, end).
func (c SHA256) CalculateRaw(src mxf.ByteSource, start, end int64) (string, error) {
	if err := checkRange(src, start, end); err != nil {
		return "", err
	}
	h := sha256.New()
	if err := copyRange(h, src, start, end); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CalculateNormalized computes SHA-256 of the non-fill packets of
// [start, end), each written as key, shortest BER length and value.
func (c SHA256) CalculateNormalized(src mxf.ByteSource, start, end int64) (string, error) {
	if err := checkRange(src, start, end); err != nil {
		return "", err
	}
	h := sha256.New()
	var length []byte
	for pos := start; pos < end; {
		kl, err := klv.ReadHeader(src, pos)
		if err != nil {
			return "", Error.Wrap(err)
		}
		if kl.End() > end {
			return "", Error.New("packet at offset %d ends at %d, past the end of the range at %d", pos, kl.End(), end)
		}
		pos = kl.End()
		if kl.IsFill() {
			continue
		}
		h.Write(kl.Key[:])
		length = klv.EncodeBER(length[:0], uint64(kl.ValueSize), 0)
		h.Write(length)
		if err := copyRange(h, src, kl.ValueOffset(), kl.End()); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func checkRange(src mxf.ByteSource, start, end int64) error {
	if start < 0 || end < start || end > src.Size() {
		return Error.New("invalid range [%d, %d) of a %d byte source", start, end, src.Size())
	}
	return nil
}

func copyRange(h hash.Hash, src mxf.ByteSource, start, end int64) error {
	for pos := start; pos < end; {
		n := end - pos
		if n > chunkSize {
			n = chunkSize
		}
		b, err := src.ReadAt(pos, int(n))
		if err != nil {
			return Error.Wrap(err)
		}
		h.Write(b)
		pos += n
	}
	return nil
}

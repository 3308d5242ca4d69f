package partition

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

var (
	RIPKey  = klv.MustParseUL("06.0e.2b.34.02.05.01.01.0d.01.02.01.01.11.01.00")
	RIPMask = klv.MaskIgnoring(klv.VersionByte)
)

// ErrNoRandomIndexPack is returned when a file does not end with a random index pack.
var ErrNoRandomIndexPack = errors.New("no random index pack")

const ripEntrySize = 4 + 8

// RIPEntry locates one partition.
type RIPEntry struct {
	BodySID    uint32 `json:"body_sid" yaml:"body_sid"`
	ByteOffset int64  `json:"byte_offset" yaml:"byte_offset"`
}

// RandomIndexPack lists the partitions of a file.
type RandomIndexPack struct {
	Offset  int64      `json:"offset" yaml:"offset"`
	Entries []RIPEntry `json:"entries" yaml:"entries"`
}

// ReadRandomIndexPack decodes the random index pack that ends the file.
// The trailing 4 bytes of the file hold the overall length of the pack.
func ReadRandomIndexPack(src mxf.ByteSource) (*RandomIndexPack, error) {
	size := src.Size()
	if size < klv.ULSize+1+4 {
		return nil, ErrNoRandomIndexPack
	}
	tail, err := src.ReadAt(size-4, 4)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	length := int64(binary.BigEndian.Uint32(tail))
	if length < klv.ULSize+1+4 || length > size {
		return nil, ErrNoRandomIndexPack
	}
	offset := size - length

	h, err := klv.ReadHeader(src, offset)
	if err != nil {
		return nil, ErrNoRandomIndexPack
	}
	if !klv.KeyMatches(h.Key, RIPKey, RIPMask) || h.End() != size {
		return nil, ErrNoRandomIndexPack
	}
	value, err := klv.ReadValue(src, h)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	body := len(value) - 4
	if body < 0 || body%ripEntrySize != 0 {
		return nil, Error.Wrap(malformedRIP(offset, len(value)))
	}
	rip := &RandomIndexPack{Offset: offset, Entries: make([]RIPEntry, 0, body/ripEntrySize)}
	d := klv.NewDecoder(value[:body])
	for d.Remaining() > 0 {
		sid, _ := d.Uint32()
		off, _ := d.Uint64()
		rip.Entries = append(rip.Entries, RIPEntry{BodySID: sid, ByteOffset: int64(off)})
	}
	return rip, nil
}

func malformedRIP(offset int64, valueSize int) error {
	return fmt.Errorf("%w: random index pack at offset %d has a %d-byte value, want 4 plus a multiple of %d",
		mxf.ErrMalformedKLV, offset, valueSize, ripEntrySize)
}

// ReadPartitions reads every partition pack listed in the random index pack.
func ReadPartitions(src mxf.ByteSource, rip *RandomIndexPack, sink mxf.ErrorSink) ([]*Pack, error) {
	packs := make([]*Pack, 0, len(rip.Entries))
	for _, e := range rip.Entries {
		p, err := ReadPack(src, e.ByteOffset, sink)
		if err != nil {
			return packs, err
		}
		packs = append(packs, p)
	}
	return packs, nil
}

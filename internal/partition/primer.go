package partition

import (
	"encoding/binary"
	"fmt"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// PrimerKey is the primer pack key; only the version byte is masked.
var (
	PrimerKey  = klv.MustParseUL("06.0e.2b.34.02.05.01.00.0d.01.02.01.01.05.01.00")
	PrimerMask = klv.MaskIgnoring(klv.VersionByte)
)

const primerEntrySize = 2 + klv.ULSize

// PrimerEntry maps one local tag to the Universal Label it stands for.
type PrimerEntry struct {
	Tag uint16 `json:"tag" yaml:"tag"`
	UL  klv.UL `json:"ul" yaml:"ul"`
}

func (e PrimerEntry) String() string {
	return fmt.Sprintf("%04x -> %s", e.Tag, e.UL)
}

// Primer is the local tag registry of one header partition.
// It is immutable once built.
type Primer struct {
	Offset  int64
	Size    int64
	entries []PrimerEntry
	byTag   map[uint16]klv.UL
}

// IsPrimerKey reports whether key is the primer pack key.
func IsPrimerKey(key klv.UL) bool {
	return klv.KeyMatches(key, PrimerKey, PrimerMask)
}

// NewPrimer builds a registry from entries. Tag 0 and repeated tags are
// rejected with mxf.ErrMalformedPrimerPack.
func NewPrimer(entries ...PrimerEntry) (*Primer, error) {
	p := &Primer{
		entries: make([]PrimerEntry, 0, len(entries)),
		byTag:   make(map[uint16]klv.UL, len(entries)),
	}
	for i, e := range entries {
		if e.Tag == 0 {
			return nil, fmt.Errorf("%w: entry %d uses reserved tag 0", mxf.ErrMalformedPrimerPack, i)
		}
		if prev, ok := p.byTag[e.Tag]; ok {
			return nil, fmt.Errorf("%w: tag %04x mapped to both %s and %s",
				mxf.ErrMalformedPrimerPack, e.Tag, prev, e.UL)
		}
		p.byTag[e.Tag] = e.UL
		p.entries = append(p.entries, e)
	}
	return p, nil
}

// ReadPrimer decodes the primer pack starting at offset and leaves the
// source cursor just past it. Every failure is fatal for the partition.
func ReadPrimer(src mxf.ByteSource, offset int64, sink mxf.ErrorSink) (*Primer, error) {
	h, err := klv.ReadHeader(src, offset)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if !IsPrimerKey(h.Key) {
		return nil, fail(sink, mxf.CodeInvalidPrimerPackKey,
			"key %s at offset %d is not a primer pack key", h.Key, offset)
	}
	value, err := klv.ReadValue(src, h)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	items, err := klv.NewDecoder(value).Batch("primer entry", primerEntrySize)
	if err != nil {
		return nil, fail(sink, mxf.CodeMalformedPrimerPack,
			"primer pack at offset %d: %v", offset, err)
	}
	entries := make([]PrimerEntry, len(items))
	for i, b := range items {
		entries[i].Tag = binary.BigEndian.Uint16(b)
		copy(entries[i].UL[:], b[2:])
	}
	p, err := NewPrimer(entries...)
	if err != nil {
		return nil, fail(sink, mxf.CodeMalformedPrimerPack,
			"primer pack at offset %d: %v", offset, err)
	}
	p.Offset = offset
	p.Size = h.PacketSize()

	if err := src.SeekTo(h.End()); err != nil {
		return nil, Error.Wrap(err)
	}
	return p, nil
}

// Lookup returns the Universal Label registered for tag.
func (p *Primer) Lookup(tag uint16) (klv.UL, bool) {
	ul, ok := p.byTag[tag]
	return ul, ok
}

// Len returns the number of registered tags.
func (p *Primer) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the registered entries in file order.
func (p *Primer) Entries() []PrimerEntry {
	return append([]PrimerEntry(nil), p.entries...)
}

// End returns the offset just past the primer pack.
func (p *Primer) End() int64 {
	return p.Offset + p.Size
}

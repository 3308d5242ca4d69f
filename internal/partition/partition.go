package partition

import (
	"fmt"
	"math"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/report"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// PackKey is the partition pack key pattern. Byte 13 carries the kind and
// byte 14 the status, so both are masked together with the version byte.
var (
	PackKey  = klv.MustParseUL("06.0e.2b.34.02.05.01.00.0d.01.02.01.01.00.00.00")
	PackMask = klv.MaskIgnoring(klv.VersionByte, 13, 14)
)

const (
	kindByte   = 13
	statusByte = 14
)

// Kind is the partition kind encoded in byte 13 of the key.
type Kind int

const (
	KindHeader Kind = 0x02
	KindBody   Kind = 0x03
	KindFooter Kind = 0x04
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "Header"
	case KindBody:
		return "Body"
	case KindFooter:
		return "Footer"
	}
	return fmt.Sprintf("Kind(0x%02x)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Status is the open/closed and complete/incomplete state in byte 14 of the key.
type Status byte

const (
	StatusOpenIncomplete   Status = 0x01
	StatusClosedIncomplete Status = 0x02
	StatusOpenComplete     Status = 0x03
	StatusClosedComplete   Status = 0x04
	StatusGenericStream    Status = 0x11
)

// IsClosed reports whether the partition's metadata values are final.
func (s Status) IsClosed() bool {
	return s == StatusClosedIncomplete || s == StatusClosedComplete
}

// IsComplete reports whether the partition carries complete metadata.
func (s Status) IsComplete() bool {
	return s == StatusOpenComplete || s == StatusClosedComplete
}

func (s Status) String() string {
	switch s {
	case StatusOpenIncomplete:
		return "OpenIncomplete"
	case StatusClosedIncomplete:
		return "ClosedIncomplete"
	case StatusOpenComplete:
		return "OpenComplete"
	case StatusClosedComplete:
		return "ClosedComplete"
	case StatusGenericStream:
		return "GenericStream"
	}
	return fmt.Sprintf("Status(0x%02x)", byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pack is a decoded partition pack. It is created once per partition and
// not modified afterwards.
type Pack struct {
	Key    klv.UL `json:"key" yaml:"key"`
	Offset int64  `json:"offset" yaml:"offset"`
	Size   int64  `json:"size" yaml:"size"`
	Kind   Kind   `json:"kind" yaml:"kind"`
	Status Status `json:"status" yaml:"status"`

	MajorVersion      uint16 `json:"major_version" yaml:"major_version"`
	MinorVersion      uint16 `json:"minor_version" yaml:"minor_version"`
	KAGSize           uint32 `json:"kag_size" yaml:"kag_size"`
	ThisPartition     int64  `json:"this_partition" yaml:"this_partition"`
	PreviousPartition int64  `json:"previous_partition" yaml:"previous_partition"`
	FooterPartition   int64  `json:"footer_partition" yaml:"footer_partition"`
	HeaderByteCount   int64  `json:"header_byte_count" yaml:"header_byte_count"`
	IndexByteCount    int64  `json:"index_byte_count" yaml:"index_byte_count"`
	IndexSID          uint32 `json:"index_sid" yaml:"index_sid"`
	BodyOffset        int64  `json:"body_offset" yaml:"body_offset"`
	BodySID           uint32 `json:"body_sid" yaml:"body_sid"`

	OperationalPattern klv.UL   `json:"operational_pattern" yaml:"operational_pattern"`
	EssenceContainers  []klv.UL `json:"essence_containers" yaml:"essence_containers"`
}

// IsPackKey reports whether key is a partition pack key of any kind.
func IsPackKey(key klv.UL) bool {
	return klv.KeyMatches(key, PackKey, PackMask)
}

// ReadPack decodes the partition pack starting at offset and leaves the
// source cursor just past it.
//
// A key that is not a partition pack key, or whose kind byte is not header,
// body or footer, fails immediately. Negative offsets and counts are
// reported to sink as NonFatal and decoding continues; without a sink they
// fail immediately.
func ReadPack(src mxf.ByteSource, offset int64, sink mxf.ErrorSink) (*Pack, error) {
	h, err := klv.ReadHeader(src, offset)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if !IsPackKey(h.Key) {
		return nil, fail(sink, mxf.CodeInvalidPartitionKey,
			"key %s at offset %d is not a partition pack key", h.Key, offset)
	}

	p := &Pack{
		Key:    h.Key,
		Offset: offset,
		Size:   h.PacketSize(),
		Kind:   Kind(h.Key[kindByte]),
		Status: Status(h.Key[statusByte]),
	}
	switch p.Kind {
	case KindHeader, KindBody, KindFooter:
	default:
		return nil, fail(sink, mxf.CodeUnrecognizedPartitionKind,
			"partition pack at offset %d has kind byte 0x%02x", offset, byte(p.Kind))
	}

	value, err := klv.ReadValue(src, h)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if err := p.decode(value, sink); err != nil {
		return nil, err
	}
	if err := src.SeekTo(h.End()); err != nil {
		return nil, Error.Wrap(err)
	}
	return p, nil
}

func (p *Pack) decode(value []byte, sink mxf.ErrorSink) error {
	d := klv.NewDecoder(value)
	var err error
	u16 := func(dst *uint16) {
		if err == nil {
			*dst, err = d.Uint16()
		}
	}
	u32 := func(dst *uint32) {
		if err == nil {
			*dst, err = d.Uint32()
		}
	}
	signed := func(name string, dst *int64) {
		if err != nil {
			return
		}
		var v uint64
		if v, err = d.Uint64(); err != nil {
			return
		}
		*dst = int64(v)
		if v > math.MaxInt64 {
			err = report.Route(sink, mxf.CodeInvalidPartitionField, mxf.SeverityNonFatal,
				"%s of partition pack at offset %d is negative (%d)", name, p.Offset, *dst)
		}
	}

	u16(&p.MajorVersion)
	u16(&p.MinorVersion)
	u32(&p.KAGSize)
	signed("ThisPartition", &p.ThisPartition)
	signed("PreviousPartition", &p.PreviousPartition)
	signed("FooterPartition", &p.FooterPartition)
	signed("HeaderByteCount", &p.HeaderByteCount)
	signed("IndexByteCount", &p.IndexByteCount)
	u32(&p.IndexSID)
	signed("BodyOffset", &p.BodyOffset)
	u32(&p.BodySID)
	if err != nil {
		return Error.Wrap(err)
	}

	if p.OperationalPattern, err = d.UL(); err != nil {
		return Error.Wrap(err)
	}
	containers, err := d.ULBatch("essence container")
	if err != nil {
		if rerr := report.Route(sink, mxf.CodeUnexpectedFieldSize, mxf.SeverityNonFatal,
			"essence container batch of partition pack at offset %d: %v", p.Offset, err); rerr != nil {
			return Error.Wrap(rerr)
		}
		return nil
	}
	p.EssenceContainers = containers
	return nil
}

// IsValidHeaderPartition reports whether the pack describes a header
// partition at the start of the file that carries header metadata.
func (p *Pack) IsValidHeaderPartition() bool {
	return p.Kind == KindHeader &&
		p.ThisPartition == 0 &&
		p.PreviousPartition == 0 &&
		p.HeaderByteCount != 0
}

// IsValidFooterPartition reports whether the pack describes a footer
// partition that points at itself and carries no essence.
func (p *Pack) IsValidFooterPartition() bool {
	return p.FooterPartition == p.ThisPartition &&
		p.BodyOffset == 0 &&
		p.BodySID == 0
}

// HasIndexTableSegments reports whether the partition carries index table segments.
func (p *Pack) HasIndexTableSegments() bool {
	return p.IndexByteCount > 0
}

// HasEssenceContainer reports whether the partition carries essence.
func (p *Pack) HasEssenceContainer() bool {
	return p.BodySID != 0
}

// IsGenericStream reports whether the partition carries a generic stream.
func (p *Pack) IsGenericStream() bool {
	return p.Status == StatusGenericStream
}

// End returns the offset just past the pack.
func (p *Pack) End() int64 {
	return p.Offset + p.Size
}

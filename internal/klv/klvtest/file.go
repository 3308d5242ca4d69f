package klvtest

import (
	"github.com/vvka-141/mxfmeta/internal/klv"
)

// PartitionKey returns a partition pack key with the given kind and status bytes.
func PartitionKey(kind, status byte) klv.UL {
	k := klv.MustParseUL("06.0e.2b.34.02.05.01.01.0d.01.02.01.01.00.00.00")
	k[13] = kind
	k[14] = status
	return k
}

var (
	PrimerKey = klv.MustParseUL("06.0e.2b.34.02.05.01.01.0d.01.02.01.01.05.01.00")
	RIPKey    = klv.MustParseUL("06.0e.2b.34.02.05.01.01.0d.01.02.01.01.11.01.00")
	FillKey   = klv.MustParseUL("06.0e.2b.34.01.01.01.02.03.01.02.10.01.00.00.00")
)

// Partition holds the fields of a partition pack value.
type Partition struct {
	Major, Minor       uint16
	KAGSize            uint32
	This, Previous     uint64
	Footer             uint64
	HeaderByteCount    uint64
	IndexByteCount     uint64
	IndexSID           uint32
	BodyOffset         uint64
	BodySID            uint32
	OperationalPattern klv.UL
	EssenceContainers  []klv.UL
}

// Value encodes the partition pack value.
func (p Partition) Value() []byte {
	major := p.Major
	if major == 0 {
		major = 1
	}
	var buf []byte
	buf = append(buf, U16(major)...)
	buf = append(buf, U16(p.Minor)...)
	buf = append(buf, U32(p.KAGSize)...)
	buf = append(buf, U64(p.This)...)
	buf = append(buf, U64(p.Previous)...)
	buf = append(buf, U64(p.Footer)...)
	buf = append(buf, U64(p.HeaderByteCount)...)
	buf = append(buf, U64(p.IndexByteCount)...)
	buf = append(buf, U32(p.IndexSID)...)
	buf = append(buf, U64(p.BodyOffset)...)
	buf = append(buf, U32(p.BodySID)...)
	buf = append(buf, p.OperationalPattern[:]...)
	buf = append(buf, ULs(p.EssenceContainers...)...)
	return buf
}

// Packet encodes a partition pack with the given kind and status bytes.
func (p Partition) Packet(kind, status byte) []byte {
	return Packet(PartitionKey(kind, status), p.Value())
}

// PrimerEntry is one tag mapping for Primer.
type PrimerEntry struct {
	Tag uint16
	UL  klv.UL
}

// Primer encodes a primer pack.
func Primer(entries ...PrimerEntry) []byte {
	elems := make([][]byte, len(entries))
	for i, e := range entries {
		elems[i] = append(U16(e.Tag), e.UL[:]...)
	}
	return Packet(PrimerKey, Batch(2+klv.ULSize, elems...))
}

// Fill encodes a KLV fill item with n value bytes.
func Fill(n int) []byte {
	return Packet(FillKey, make([]byte, n))
}

// RIPEntry locates one partition for RandomIndexPack.
type RIPEntry struct {
	BodySID uint32
	Offset  uint64
}

// RandomIndexPack encodes a random index pack including its trailing
// overall-length field.
func RandomIndexPack(entries ...RIPEntry) []byte {
	var value []byte
	for _, e := range entries {
		value = append(value, U32(e.BodySID)...)
		value = append(value, U64(e.Offset)...)
	}
	// key + 4-byte BER + entries + trailing length
	total := klv.ULSize + 4 + len(value) + 4
	value = append(value, U32(uint32(total))...)
	return Packet(RIPKey, value)
}

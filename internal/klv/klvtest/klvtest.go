// Package klvtest assembles KLV byte streams for tests.
package klvtest

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
)

// Packet encodes key, a 4-byte BER length and value.
func Packet(key klv.UL, value []byte) []byte {
	buf := append([]byte{}, key[:]...)
	buf = klv.EncodeBER(buf, uint64(len(value)), 3)
	return append(buf, value...)
}

// U16 encodes a big-endian uint16.
func U16(v uint16) []byte {
	return binary.BigEndian.AppendUint16(nil, v)
}

// U32 encodes a big-endian uint32.
func U32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

// U64 encodes a big-endian uint64.
func U64(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

// I64 encodes a big-endian int64.
func I64(v int64) []byte {
	return U64(uint64(v))
}

// Batch encodes a count and element-size header followed by the elements.
func Batch(size int, elems ...[]byte) []byte {
	buf := U32(uint32(len(elems)))
	buf = append(buf, U32(uint32(size))...)
	for _, e := range elems {
		buf = append(buf, e...)
	}
	return buf
}

// UUIDs encodes a batch of UUIDs.
func UUIDs(ids ...uuid.UUID) []byte {
	elems := make([][]byte, len(ids))
	for i := range ids {
		elems[i] = ids[i][:]
	}
	return Batch(klv.UUIDSize, elems...)
}

// ULs encodes a batch of labels.
func ULs(uls ...klv.UL) []byte {
	elems := make([][]byte, len(uls))
	for i := range uls {
		elems[i] = uls[i][:]
	}
	return Batch(klv.ULSize, elems...)
}

// UTF16 encodes s as big-endian UTF-16.
func UTF16(s string) []byte {
	var buf []byte
	for _, u := range utf16.Encode([]rune(s)) {
		buf = binary.BigEndian.AppendUint16(buf, u)
	}
	return buf
}

// UMID builds a UMID whose material number is id.
func UMID(id uuid.UUID) klv.UMID {
	var u klv.UMID
	copy(u[:12], []byte{0x06, 0x0a, 0x2b, 0x34, 0x01, 0x01, 0x01, 0x05, 0x01, 0x01, 0x0f, 0x20})
	u[12] = 0x13
	copy(u[16:], id[:])
	return u
}

// LocalSet accumulates 2-byte-tag, 2-byte-length items.
type LocalSet struct {
	buf []byte
}

// Add appends one item.
func (s *LocalSet) Add(tag uint16, value []byte) *LocalSet {
	s.buf = binary.BigEndian.AppendUint16(s.buf, tag)
	s.buf = binary.BigEndian.AppendUint16(s.buf, uint16(len(value)))
	s.buf = append(s.buf, value...)
	return s
}

// Bytes returns the encoded items.
func (s *LocalSet) Bytes() []byte {
	return s.buf
}

// Packet wraps the items in a packet with the given set key.
func (s *LocalSet) Packet(key klv.UL) []byte {
	return Packet(key, s.buf)
}

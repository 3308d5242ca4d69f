package klv

import (
	"encoding/binary"
	"math"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// maxBERBytes is the longest long-form length field accepted (a uint64).
const maxBERBytes = 8

// FillKey identifies KLV Fill items, which pad partitions to KAG boundaries.
var FillKey = MustParseUL("06.0e.2b.34.01.01.01.01.03.01.02.10.01.00.00.00")

// FillMask ignores the version byte of fill keys (both 0x01 and 0x02 occur in the wild).
var FillMask = MaskIgnoring(VersionByte)

// Header describes one KLV packet: where it starts, its key, and the
// sizes of its length field and value. It is derived per packet and owns nothing.
type Header struct {
	Key             UL
	LengthFieldSize int
	ValueSize       int64
	KLSize          int64
	Offset          int64
}

// ValueOffset returns the absolute offset of the first value byte.
func (h Header) ValueOffset() int64 {
	return h.Offset + h.KLSize
}

// End returns the absolute offset just past the value.
func (h Header) End() int64 {
	return h.Offset + h.KLSize + h.ValueSize
}

// PacketSize returns the total size of key, length and value.
func (h Header) PacketSize() int64 {
	return h.KLSize + h.ValueSize
}

// IsFill reports whether the packet is a KLV Fill item.
func (h Header) IsFill() bool {
	return KeyMatches(h.Key, FillKey, FillMask)
}

// ReadHeader reads the key and BER length of the packet at offset and
// leaves the source cursor on the first value byte.
func ReadHeader(src mxf.ByteSource, offset int64) (Header, error) {
	h := Header{Offset: offset}
	if err := src.SeekTo(offset); err != nil {
		return h, Error.Wrap(err)
	}
	key, err := src.Read(ULSize)
	if err != nil {
		return h, Error.Wrap(err)
	}
	copy(h.Key[:], key)

	first, err := src.Read(1)
	if err != nil {
		return h, Error.Wrap(err)
	}
	length := uint64(first[0])
	h.LengthFieldSize = 1
	if first[0]&0x80 != 0 {
		n := int(first[0] & 0x7f)
		if n == 0 {
			return h, malformed(offset, "indefinite BER length is not allowed")
		}
		if n > maxBERBytes {
			return h, malformed(offset, "BER length uses %d bytes, at most %d allowed", n, maxBERBytes)
		}
		rest, err := src.Read(n)
		if err != nil {
			return h, Error.Wrap(err)
		}
		length = 0
		for _, b := range rest {
			length = length<<8 | uint64(b)
		}
		h.LengthFieldSize += n
	}
	if length > math.MaxInt64 {
		return h, malformed(offset, "length %d does not fit a signed 64-bit size", length)
	}
	h.ValueSize = int64(length)
	h.KLSize = int64(ULSize + h.LengthFieldSize)
	return h, nil
}

// ReadValue reads the whole value of the packet described by h.
func ReadValue(src mxf.ByteSource, h Header) ([]byte, error) {
	if h.ValueSize > int64(math.MaxInt32) {
		return nil, malformed(h.Offset, "value of %d bytes is too large to buffer", h.ValueSize)
	}
	b, err := src.ReadAt(h.ValueOffset(), int(h.ValueSize))
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return b, nil
}

// DecodeBER decodes a BER length at the start of b, returning the length
// and the number of bytes it occupied.
func DecodeBER(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, malformed(0, "empty BER length")
	}
	if b[0]&0x80 == 0 {
		return uint64(b[0]), 1, nil
	}
	n := int(b[0] & 0x7f)
	if n == 0 || n > maxBERBytes {
		return 0, 0, malformed(0, "invalid BER length prefix 0x%02x", b[0])
	}
	if len(b) < 1+n {
		return 0, 0, malformed(0, "BER length needs %d bytes, %d available", n, len(b)-1)
	}
	var v uint64
	for _, c := range b[1 : 1+n] {
		v = v<<8 | uint64(c)
	}
	return v, 1 + n, nil
}

// EncodeBER appends the shortest long-form BER encoding of v that uses at
// least minBytes length bytes (MXF writers commonly use a fixed 4 or 8).
func EncodeBER(buf []byte, v uint64, minBytes int) []byte {
	if minBytes == 0 && v < 0x80 {
		return append(buf, byte(v))
	}
	n := 1
	for x := v >> 8; x > 0; x >>= 8 {
		n++
	}
	if n < minBytes {
		n = minBytes
	}
	if n > maxBERBytes {
		n = maxBERBytes
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	buf = append(buf, 0x80|byte(n))
	return append(buf, tmp[8-n:]...)
}

package klv

import (
	"encoding/binary"
	"fmt"
)

// ItemCoding describes how the items of a local set are laid out.
// A LengthSize of zero means BER-encoded lengths.
type ItemCoding struct {
	TagSize    int
	LengthSize int
}

// HeaderMetadataCoding is the coding used by every structural metadata set
// (registry designator 0x53: 2-byte tags, 2-byte lengths).
var HeaderMetadataCoding = ItemCoding{TagSize: 2, LengthSize: 2}

// LocalSetCoding derives the item coding of a local set from byte 5 of its
// key, laid out as 0x03 + 8*Lcode + 32*Tcode. It reports false for keys
// that are not local sets or use ASN.1 OID tags.
func LocalSetCoding(key UL) (ItemCoding, bool) {
	b := key[5]
	if b&0x07 != 0x03 {
		return ItemCoding{}, false
	}
	var c ItemCoding
	switch (b >> 3) & 0x03 {
	case 0:
		c.LengthSize = 0
	case 1:
		c.LengthSize = 1
	case 2:
		c.LengthSize = 2
	case 3:
		c.LengthSize = 4
	}
	switch (b >> 5) & 0x03 {
	case 0:
		c.TagSize = 1
	case 1:
		return ItemCoding{}, false
	case 2:
		c.TagSize = 2
	case 3:
		c.TagSize = 4
	}
	return c, true
}

// Item is one (tag, value) pair of a local set. Value aliases the set buffer.
type Item struct {
	Tag   uint32
	Value []byte
}

// Items splits a local set value into its items. Every item must fit
// inside value; a truncated item is a malformed packet.
func Items(value []byte, coding ItemCoding) ([]Item, error) {
	var items []Item
	off := 0
	for off < len(value) {
		if len(value)-off < coding.TagSize {
			return items, malformed(int64(off), "truncated local tag")
		}
		tag := readUint(value[off:], coding.TagSize)
		off += coding.TagSize

		var length uint64
		if coding.LengthSize == 0 {
			v, n, err := DecodeBER(value[off:])
			if err != nil {
				return items, err
			}
			length = v
			off += n
		} else {
			if len(value)-off < coding.LengthSize {
				return items, malformed(int64(off), "truncated length for tag 0x%04x", tag)
			}
			length = uint64(readUint(value[off:], coding.LengthSize))
			off += coding.LengthSize
		}

		if length > uint64(len(value)-off) {
			return items, malformed(int64(off), "item 0x%04x claims %d bytes, %d remain", tag, length, len(value)-off)
		}
		items = append(items, Item{Tag: tag, Value: value[off : off+int(length)]})
		off += int(length)
	}
	return items, nil
}

func readUint(b []byte, size int) uint32 {
	switch size {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.BigEndian.Uint16(b))
	case 4:
		return binary.BigEndian.Uint32(b)
	}
	panic(fmt.Sprintf("unsupported integer width %d", size))
}

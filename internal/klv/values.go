package klv

import (
	"encoding/binary"
	"fmt"
	"time"
	"unicode/utf16"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Rational is an MXF rational number (edit rates, aspect ratios).
type Rational struct {
	Numerator   int32 `json:"numerator" yaml:"numerator"`
	Denominator int32 `json:"denominator" yaml:"denominator"`
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// Float returns the value of r, or 0 when the denominator is zero.
func (r Rational) Float() float64 {
	if r.Denominator == 0 {
		return 0
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

// Decoder reads fixed-layout big-endian fields from a byte slice,
// tracking the offset of the next field for error messages.
type Decoder struct {
	Orig []byte
	Buf  []byte
}

// NewDecoder returns a decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{Orig: buf, Buf: buf}
}

// Off returns the number of bytes consumed so far.
func (d *Decoder) Off() int {
	return len(d.Orig) - len(d.Buf)
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.Buf)
}

// Raw consumes n bytes.
func (d *Decoder) Raw(n int) ([]byte, error) {
	if n < 0 || len(d.Buf) < n {
		return nil, Error.Wrap(fmt.Errorf("%w: not enough data at offset %d: %d bytes remaining, %d wanted",
			mxf.ErrMalformedKLV, d.Off(), len(d.Buf), n))
	}
	v := d.Buf[:n]
	d.Buf = d.Buf[n:]
	return v, nil
}

func (d *Decoder) Uint8() (uint8, error) {
	b, err := d.Raw(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) Uint16() (uint16, error) {
	b, err := d.Raw(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (d *Decoder) Uint32() (uint32, error) {
	b, err := d.Raw(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Decoder) Uint64() (uint64, error) {
	b, err := d.Raw(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *Decoder) UL() (UL, error) {
	b, err := d.Raw(ULSize)
	if err != nil {
		return UL{}, err
	}
	return ULFromBytes(b)
}

// Batch reads a count-prefixed array header (uint32 count, uint32 element
// size), checks the element size against want, and returns the elements.
func (d *Decoder) Batch(what string, want int) ([][]byte, error) {
	count, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	size, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	if count > 0 && int(size) != want {
		return nil, fieldSize(what+" element", int(size), want)
	}
	if uint64(count)*uint64(want) > uint64(len(d.Buf)) {
		return nil, Error.Wrap(fmt.Errorf("%w: %s batch of %d x %d bytes exceeds %d remaining bytes",
			mxf.ErrMalformedKLV, what, count, want, len(d.Buf)))
	}
	items := make([][]byte, count)
	for i := range items {
		if items[i], err = d.Raw(want); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// ULBatch reads a batch of Universal Labels.
func (d *Decoder) ULBatch(what string) ([]UL, error) {
	items, err := d.Batch(what, ULSize)
	if err != nil {
		return nil, err
	}
	uls := make([]UL, len(items))
	for i, b := range items {
		copy(uls[i][:], b)
	}
	return uls, nil
}

func fixed(what string, b []byte, want int) error {
	if len(b) != want {
		return fieldSize(what, len(b), want)
	}
	return nil
}

// Uint8Value decodes a one-byte field.
func Uint8Value(b []byte) (uint8, error) {
	if err := fixed("UInt8", b, 1); err != nil {
		return 0, err
	}
	return b[0], nil
}

// BoolValue decodes a one-byte boolean field.
func BoolValue(b []byte) (bool, error) {
	v, err := Uint8Value(b)
	return v != 0, err
}

// Uint16Value decodes a two-byte field.
func Uint16Value(b []byte) (uint16, error) {
	if err := fixed("UInt16", b, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint32Value decodes a four-byte field.
func Uint32Value(b []byte) (uint32, error) {
	if err := fixed("UInt32", b, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Int64Value decodes an eight-byte signed field (lengths, positions).
func Int64Value(b []byte) (int64, error) {
	if err := fixed("Int64", b, 8); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// RationalValue decodes a numerator/denominator pair.
func RationalValue(b []byte) (Rational, error) {
	if err := fixed("Rational", b, 8); err != nil {
		return Rational{}, err
	}
	return Rational{
		Numerator:   int32(binary.BigEndian.Uint32(b[0:4])),
		Denominator: int32(binary.BigEndian.Uint32(b[4:8])),
	}, nil
}

// TimestampValue decodes an MXF timestamp (year, month, day, hour, minute,
// second, quarter-milliseconds). An all-zero timestamp decodes to the zero time.
func TimestampValue(b []byte) (time.Time, error) {
	if err := fixed("Timestamp", b, 8); err != nil {
		return time.Time{}, err
	}
	year := int(int16(binary.BigEndian.Uint16(b[0:2])))
	if year == 0 && b[2] == 0 && b[3] == 0 {
		return time.Time{}, nil
	}
	msec := int(b[7]) * 4
	return time.Date(year, time.Month(b[2]), int(b[3]), int(b[4]), int(b[5]), int(b[6]),
		msec*int(time.Millisecond), time.UTC), nil
}

// UTF16Value decodes a big-endian UTF-16 string, dropping trailing NULs.
func UTF16Value(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fieldSize("UTF-16 string", len(b), len(b)+1)
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		units = append(units, binary.BigEndian.Uint16(b[i:]))
	}
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	return string(utf16.Decode(units)), nil
}

// UUIDBatchValue decodes a batch or array of InstanceUIDs (strong reference sets).
func UUIDBatchValue(b []byte) ([]uuid.UUID, error) {
	items, err := NewDecoder(b).Batch("UUID", UUIDSize)
	if err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, len(items))
	for i, item := range items {
		copy(out[i][:], item)
	}
	return out, nil
}

// ULBatchValue decodes a batch of Universal Labels.
func ULBatchValue(b []byte) ([]UL, error) {
	return NewDecoder(b).ULBatch("UL")
}

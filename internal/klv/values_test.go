package klv

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

func TestFixedValues(t *testing.T) {
	v8, err := Uint8Value([]byte{7})
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v8)

	v16, err := Uint16Value([]byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)

	v32, err := Uint32Value([]byte{0, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(256), v32)

	v64, err := Int64Value([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe})
	require.NoError(t, err)
	assert.Equal(t, int64(-2), v64)

	b, err := BoolValue([]byte{1})
	require.NoError(t, err)
	assert.True(t, b)
}

func TestFixedValues_WrongSize(t *testing.T) {
	_, err := Uint32Value([]byte{1, 2})
	assert.ErrorIs(t, err, mxf.ErrUnexpectedFieldSize)
	_, err = Int64Value([]byte{1})
	assert.ErrorIs(t, err, mxf.ErrUnexpectedFieldSize)
	_, err = UUIDFromBytes(make([]byte, 15))
	assert.ErrorIs(t, err, mxf.ErrUnexpectedFieldSize)
	_, err = ULFromBytes(make([]byte, 17))
	assert.ErrorIs(t, err, mxf.ErrUnexpectedFieldSize)
}

func TestRationalValue(t *testing.T) {
	r, err := RationalValue([]byte{0, 0, 0x5d, 0xc0, 0, 0, 0x03, 0xe9})
	require.NoError(t, err)
	assert.Equal(t, Rational{Numerator: 24000, Denominator: 1001}, r)
	assert.Equal(t, "24000/1001", r.String())
	assert.InDelta(t, 23.976, r.Float(), 0.001)
	assert.Equal(t, float64(0), Rational{Numerator: 1}.Float())
}

func TestTimestampValue(t *testing.T) {
	ts, err := TimestampValue([]byte{0x07, 0xe8, 3, 14, 15, 9, 26, 125})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 15, 9, 26, 500*int(time.Millisecond), time.UTC), ts)

	zero, err := TimestampValue(make([]byte, 8))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestUTF16Value(t *testing.T) {
	s, err := UTF16Value([]byte{0x00, 'M', 0x00, 'X', 0x00, 'F', 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "MXF", s)

	_, err = UTF16Value([]byte{0x00})
	assert.ErrorIs(t, err, mxf.ErrUnexpectedFieldSize)
}

func TestUUIDBatchValue(t *testing.T) {
	a := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	b := uuid.MustParse("66666666-7777-8888-9999-aaaaaaaaaaaa")
	buf := []byte{0, 0, 0, 2, 0, 0, 0, 16}
	buf = append(buf, a[:]...)
	buf = append(buf, b[:]...)

	ids, err := UUIDBatchValue(buf)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestBatch_Errors(t *testing.T) {
	_, err := UUIDBatchValue([]byte{0, 0, 0, 1, 0, 0, 0, 15})
	assert.ErrorIs(t, err, mxf.ErrUnexpectedFieldSize)

	_, err = UUIDBatchValue([]byte{0, 0, 0, 2, 0, 0, 0, 16, 1, 2, 3})
	assert.ErrorIs(t, err, mxf.ErrMalformedKLV)

	empty, err := ULBatchValue([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDecoder_Sequence(t *testing.T) {
	d := NewDecoder([]byte{0, 1, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 3, 9})
	v16, _ := d.Uint16()
	v32, _ := d.Uint32()
	v64, _ := d.Uint64()
	v8, _ := d.Uint8()
	assert.Equal(t, uint16(1), v16)
	assert.Equal(t, uint32(2), v32)
	assert.Equal(t, uint64(3), v64)
	assert.Equal(t, uint8(9), v8)
	assert.Equal(t, 15, d.Off())
	assert.Equal(t, 0, d.Remaining())

	_, err := d.Uint8()
	assert.ErrorIs(t, err, mxf.ErrMalformedKLV)
}

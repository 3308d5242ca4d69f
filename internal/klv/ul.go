package klv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ULSize is the byte length of a Universal Label.
const ULSize = 16

// VersionByte is the index of the registry version byte, which differs
// between otherwise identical labels and is ignored when matching.
const VersionByte = 7

// UL is a SMPTE Universal Label.
type UL [ULSize]byte

// Mask selects which bytes of a UL take part in a comparison:
// a zero byte means "don't care" at that position.
type Mask [ULSize]byte

// FullMask compares every byte.
var FullMask = MaskIgnoring()

// MaskIgnoring returns a mask that compares every byte except the given positions.
func MaskIgnoring(positions ...int) Mask {
	var m Mask
	for i := range m {
		m[i] = 0xff
	}
	for _, p := range positions {
		m[p] = 0
	}
	return m
}

// KeyMatches reports whether key equals pattern at every position where mask is non-zero.
func KeyMatches(key, pattern UL, mask Mask) bool {
	for i := 0; i < ULSize; i++ {
		if mask[i] != 0 && key[i] != pattern[i] {
			return false
		}
	}
	return true
}

// ParseUL parses a label written as plain hex, dotted hex
// ("06.0e.2b.34...") or a SMPTE URN ("urn:smpte:ul:060e2b34.0205...").
func ParseUL(s string) (UL, error) {
	var ul UL
	clean := strings.ToLower(strings.TrimSpace(s))
	clean = strings.TrimPrefix(clean, "urn:smpte:ul:")
	clean = strings.NewReplacer(".", "", " ", "", "-", "").Replace(clean)
	b, err := hex.DecodeString(clean)
	if err != nil {
		return ul, fmt.Errorf("invalid UL %q: %w", s, err)
	}
	if len(b) != ULSize {
		return ul, fmt.Errorf("invalid UL %q: %d bytes, expected %d", s, len(b), ULSize)
	}
	copy(ul[:], b)
	return ul, nil
}

// MustParseUL is like ParseUL but panics on malformed input.
// It is meant for package-level label tables.
func MustParseUL(s string) UL {
	ul, err := ParseUL(s)
	if err != nil {
		panic(err)
	}
	return ul
}

// ULFromBytes copies a 16-byte value into a UL.
func ULFromBytes(b []byte) (UL, error) {
	var ul UL
	if len(b) != ULSize {
		return ul, fieldSize("UL", len(b), ULSize)
	}
	copy(ul[:], b)
	return ul, nil
}

// Normalized returns the label with its version byte cleared, the form
// used as a lookup key in label tables.
func (u UL) Normalized() UL {
	u[VersionByte] = 0
	return u
}

// Equivalent reports whether two labels are equal apart from the version byte.
func (u UL) Equivalent(other UL) bool {
	return u.Normalized() == other.Normalized()
}

// IsZero reports whether every byte of the label is zero.
func (u UL) IsZero() bool {
	return u == UL{}
}

// String formats the label as a SMPTE URN.
func (u UL) String() string {
	h := hex.EncodeToString(u[:])
	return "urn:smpte:ul:" + h[0:8] + "." + h[8:16] + "." + h[16:24] + "." + h[24:32]
}

// Dotted formats the label as dot-separated hex bytes, the form used in registers.
func (u UL) Dotted() string {
	var b strings.Builder
	for i, c := range u {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (u UL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UL) UnmarshalText(text []byte) error {
	parsed, err := ParseUL(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

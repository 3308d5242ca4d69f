package klv

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// UUIDSize is the byte length of an InstanceUID.
const UUIDSize = 16

// UMIDSize is the byte length of a basic UMID.
const UMIDSize = 32

// UUIDFromBytes decodes a 16-byte InstanceUID or other UUID-valued field.
func UUIDFromBytes(b []byte) (uuid.UUID, error) {
	var u uuid.UUID
	if len(b) != UUIDSize {
		return u, fieldSize("UUID", len(b), UUIDSize)
	}
	copy(u[:], b)
	return u, nil
}

// UMID is a SMPTE 330 basic Unique Material Identifier. Packages are
// addressed by UMID from source clips and essence container data, in
// addition to their InstanceUID.
type UMID [UMIDSize]byte

// UMIDFromBytes decodes a 32-byte UMID.
func UMIDFromBytes(b []byte) (UMID, error) {
	var u UMID
	if len(b) != UMIDSize {
		return u, fieldSize("UMID", len(b), UMIDSize)
	}
	copy(u[:], b)
	return u, nil
}

// IsZero reports whether the UMID is all zeros, which terminates a
// source reference chain.
func (u UMID) IsZero() bool {
	return u == UMID{}
}

// MaterialNumber returns the 16-byte material number portion of the UMID.
func (u UMID) MaterialNumber() uuid.UUID {
	var m uuid.UUID
	copy(m[:], u[16:])
	return m
}

func (u UMID) String() string {
	return "urn:smpte:umid:" + hex.EncodeToString(u[:])
}

// MarshalText implements encoding.TextMarshaler.
func (u UMID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

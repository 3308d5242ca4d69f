// Package klv decodes the Key-Length-Value packets MXF files are built from.
//
// A packet is a 16-byte Universal Label key, a BER-encoded length and a
// value of that many bytes. Sets inside the header metadata are local sets:
// their value is a sequence of (local tag, length, value) items whose tag and
// length widths are announced by byte 5 of the set key.
//
// The package also holds the small value types every other layer shares:
// UL, UMID and the InstanceUID (a github.com/google/uuid UUID), plus the
// byte sources parsing runs against.
package klv

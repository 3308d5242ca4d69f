// Package checksum fingerprints the header metadata of an MXF file.
//
// Two digests are computed over the bytes between the primer pack key and
// the end of the header metadata:
//
//   - Raw: SHA-256 of the bytes exactly as stored (detects any change,
//     including re-padding)
//   - Normalized: SHA-256 of every non-fill packet with its length
//     re-encoded in the shortest BER form
//
// The normalized digest is stable when a writer changes the KAG, pads
// with a different amount of fill, or uses 4-byte instead of 8-byte BER
// lengths, so two files with the same logical header metadata compare equal.
//
// # Example Usage
//
//	calc := checksum.New()
//	fp, err := checksum.Header(calc, src, start, end)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines. The byte
// source is not; give each goroutine its own.
package checksum

package mxf

// ByteSource provides positioned access to the bytes of one MXF file.
// Offsets are absolute byte positions from the start of the file.
// All methods fail with an error satisfying errors.Is(err, ErrIO) on short reads.
//
// A ByteSource carries a cursor and is not safe for concurrent use:
// two parses of the same file need two sources.
type ByteSource interface {
	// Read returns the next n bytes and advances the cursor past them.
	Read(n int) ([]byte, error)

	// ReadAt returns n bytes starting at offset without moving the cursor.
	ReadAt(offset int64, n int) ([]byte, error)

	// Skip advances the cursor by n bytes.
	Skip(n int64) error

	// SeekTo moves the cursor to an absolute offset.
	SeekTo(offset int64) error

	// Position returns the absolute offset of the cursor.
	Position() int64

	// Size returns the total number of bytes available.
	Size() int64
}

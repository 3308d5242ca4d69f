package klv

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Error is the error class for KLV decoding failures.
var Error = errs.Class("klv")

// malformed wraps mxf.ErrMalformedKLV with the offset that failed to decode.
func malformed(offset int64, format string, args ...interface{}) error {
	return Error.Wrap(fmt.Errorf("%w at offset %d: %s", mxf.ErrMalformedKLV, offset, fmt.Sprintf(format, args...)))
}

// fieldSize wraps mxf.ErrUnexpectedFieldSize for a fixed-width value of the wrong size.
func fieldSize(what string, got, want int) error {
	return Error.Wrap(fmt.Errorf("%w: %s is %d bytes, expected %d", mxf.ErrUnexpectedFieldSize, what, got, want))
}

package metadata

import "github.com/zeebo/errs"

// Error is the error class for metadata set decoding failures.
var Error = errs.Class("metadata")

package header

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"

	"github.com/vvka-141/mxfmeta/internal/report"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Error is the error class for header partition failures.
var Error = errs.Class("header")

// tracker forwards violations to the caller's sink and keeps the Fatal
// ones, so that every fatal problem of the file can be returned together.
type tracker struct {
	sink  mxf.ErrorSink
	fatal []error
}

func (t *tracker) Report(code mxf.Code, severity mxf.Severity, message string) {
	if severity >= mxf.SeverityFatal {
		t.fatal = append(t.fatal, report.Entry{Code: code, Severity: severity, Message: message})
	}
	t.sink.Report(code, severity, message)
}

// target is the sink handed to decoders: the tracker itself when the
// caller supplied a sink, nil otherwise so that decoders fail fast.
func (t *tracker) target() mxf.ErrorSink {
	if t.sink == nil {
		return nil
	}
	return t
}

// route records a violation and returns an error only when there is no
// sink and the severity is NonFatal or Fatal.
func (t *tracker) route(code mxf.Code, severity mxf.Severity, format string, args ...interface{}) error {
	return Error.Wrap(report.Route(t.target(), code, severity, format, args...))
}

// abort records a Fatal violation that ends parsing and returns every
// fatal problem seen so far.
func (t *tracker) abort(code mxf.Code, format string, args ...interface{}) error {
	if t.sink == nil {
		return t.route(code, mxf.SeverityFatal, format, args...)
	}
	t.Report(code, mxf.SeverityFatal, fmt.Sprintf(format, args...))
	return t.err()
}

// abortWith ends parsing on err, which a decoder returned after recording
// its own violations past mark.
func (t *tracker) abortWith(mark int, err error) error {
	prior := append([]error(nil), t.fatal[:mark]...)
	return Error.Wrap(errors.Join(append(prior, err)...))
}

func (t *tracker) mark() int {
	return len(t.fatal)
}

// err combines every Fatal violation recorded so far.
func (t *tracker) err() error {
	return Error.Wrap(errors.Join(t.fatal...))
}

// codeFor classifies a decoding error from the KLV layer.
func codeFor(err error) mxf.Code {
	if errors.Is(err, mxf.ErrIO) {
		return mxf.CodeIO
	}
	return mxf.CodeMalformedKLV
}

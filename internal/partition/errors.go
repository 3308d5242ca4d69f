package partition

import (
	"github.com/zeebo/errs"

	"github.com/vvka-141/mxfmeta/internal/report"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Error is the error class for partition-level decoding failures.
var Error = errs.Class("partition")

// fail records a structural violation in sink (when present) and always
// returns it as an error: parsing cannot continue past it.
func fail(sink mxf.ErrorSink, code mxf.Code, format string, args ...interface{}) error {
	if sink != nil {
		_ = report.Route(sink, code, mxf.SeverityFatal, format, args...)
	}
	return Error.Wrap(report.Route(nil, code, mxf.SeverityFatal, format, args...))
}

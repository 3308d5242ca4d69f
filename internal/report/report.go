package report

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Entry is one recorded violation.
type Entry struct {
	Code     mxf.Code     `json:"code" yaml:"code"`
	Severity mxf.Severity `json:"severity" yaml:"severity"`
	Message  string       `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e Entry) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.Code, e.Message)
}

// Unwrap exposes the sentinel error of the entry's code.
func (e Entry) Unwrap() error {
	return e.Code.Err()
}

// Collector accumulates entries in report order.
// Safe for concurrent use by multiple goroutines.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
}

var _ mxf.ErrorSink = (*Collector)(nil)

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report records a violation.
func (c *Collector) Report(code mxf.Code, severity mxf.Severity, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Code: code, Severity: severity, Message: message})
}

// Count returns the number of recorded entries.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Entries returns a copy of all entries in report order.
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

// Filter returns the entries with exactly the given severity among
// entries[from:to]. Bounds are clamped to the recorded range.
func (c *Collector) Filter(severity mxf.Severity, from, to int) []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	from, to = clamp(from, to, len(c.entries))
	var out []Entry
	for _, e := range c.entries[from:to] {
		if e.Severity == severity {
			out = append(out, e)
		}
	}
	return out
}

// Range returns a copy of entries[from:to], clamped to the recorded range.
func (c *Collector) Range(from, to int) []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	from, to = clamp(from, to, len(c.entries))
	return append([]Entry(nil), c.entries[from:to]...)
}

// BySeverity returns every entry with the given severity.
func (c *Collector) BySeverity(severity mxf.Severity) []Entry {
	return c.Filter(severity, 0, c.Count())
}

// CountAtLeast returns the number of entries at or above severity.
func (c *Collector) CountAtLeast(severity mxf.Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.Severity >= severity {
			n++
		}
	}
	return n
}

// HasFatal reports whether any Fatal entry was recorded.
func (c *Collector) HasFatal() bool {
	return c.CountAtLeast(mxf.SeverityFatal) > 0
}

// Err combines every NonFatal and Fatal entry into one error, or returns
// nil when there are none.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var list []error
	for _, e := range c.entries {
		if e.Severity >= mxf.SeverityNonFatal {
			list = append(list, e)
		}
	}
	return errors.Join(list...)
}

func clamp(from, to, n int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from > to {
		from = to
	}
	return from, to
}

// Route records a violation in sink and returns nil. Without a sink, a
// NonFatal or Fatal violation is returned as an error wrapping the code's
// sentinel, and a Warning is dropped.
func Route(sink mxf.ErrorSink, code mxf.Code, severity mxf.Severity, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if sink != nil {
		sink.Report(code, severity, msg)
		return nil
	}
	if severity == mxf.SeverityWarning {
		return nil
	}
	return Entry{Code: code, Severity: severity, Message: msg}
}

// Package report collects the violations found while parsing one MXF file.
//
// A Collector is the mxf.ErrorSink handed to the parsers. Parsing keeps
// going after recoverable violations so a single run reports everything
// wrong with a file; callers inspect the collector afterwards and decide
// whether Fatal entries should block downstream use.
//
// When no sink is supplied, Route turns the first NonFatal or Fatal
// violation into an error and the parse stops there.
package report

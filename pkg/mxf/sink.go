package mxf

import "fmt"

// Severity classifies how badly a violation affects the parsed result.
type Severity int

const (
	// SeverityWarning marks a deviation that does not change the parsed result.
	SeverityWarning Severity = iota
	// SeverityNonFatal marks a violation that leaves a field or set unusable
	// while the rest of the header partition remains meaningful.
	SeverityNonFatal
	// SeverityFatal marks a violation that makes the header partition unusable.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityNonFatal:
		return "NON_FATAL"
	case SeverityFatal:
		return "FATAL"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Code identifies the class of a reported violation.
type Code int

const (
	CodeMalformedKLV Code = iota + 1
	CodeInvalidPartitionKey
	CodeInvalidPrimerPackKey
	CodeMalformedPrimerPack
	CodeUnexpectedFieldSize
	CodeInvalidPrefaceCount
	CodeCycleDetected
	CodeUnresolvedStrongReference
	CodeMissingPrimerPack
	CodeWrongHeaderOffset
	CodeUnrecognizedPartitionKind
	CodeInvalidPartitionField
	CodeMissingSubDescriptor
	CodeUnknownLocalTag
	CodeDuplicateInstanceUID
	CodeIO
)

var codeInfo = map[Code]struct {
	name string
	err  error
}{
	CodeMalformedKLV:              {"MALFORMED_KLV", ErrMalformedKLV},
	CodeInvalidPartitionKey:       {"INVALID_PARTITION_KEY", ErrInvalidPartitionKey},
	CodeInvalidPrimerPackKey:      {"INVALID_PRIMER_PACK_KEY", ErrInvalidPrimerPackKey},
	CodeMalformedPrimerPack:       {"MALFORMED_PRIMER_PACK", ErrMalformedPrimerPack},
	CodeUnexpectedFieldSize:       {"UNEXPECTED_FIELD_SIZE", ErrUnexpectedFieldSize},
	CodeInvalidPrefaceCount:       {"INVALID_PREFACE_COUNT", ErrInvalidPrefaceCount},
	CodeCycleDetected:             {"CYCLE_DETECTED", ErrCycleDetected},
	CodeUnresolvedStrongReference: {"UNRESOLVED_STRONG_REFERENCE", ErrUnresolvedStrongReference},
	CodeMissingPrimerPack:         {"MISSING_PRIMER_PACK", ErrMissingPrimerPack},
	CodeWrongHeaderOffset:         {"WRONG_HEADER_OFFSET", ErrWrongHeaderOffset},
	CodeUnrecognizedPartitionKind: {"UNRECOGNIZED_PARTITION_KIND", ErrUnrecognizedPartitionKind},
	CodeInvalidPartitionField:     {"INVALID_PARTITION_FIELD", ErrInvalidPartitionField},
	CodeMissingSubDescriptor:      {"MISSING_SUB_DESCRIPTOR", ErrMissingSubDescriptor},
	CodeUnknownLocalTag:           {"UNKNOWN_LOCAL_TAG", ErrUnknownLocalTag},
	CodeDuplicateInstanceUID:      {"DUPLICATE_INSTANCE_UID", ErrDuplicateInstanceUID},
	CodeIO:                        {"IO", ErrIO},
}

func (c Code) String() string {
	if info, ok := codeInfo[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// MarshalText renders the code by name in JSON and YAML output.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Err returns the sentinel error for the code, so that errors built from a
// reported violation satisfy errors.Is against the matching ErrX variable.
func (c Code) Err() error {
	if info, ok := codeInfo[c]; ok {
		return info.err
	}
	return fmt.Errorf("unknown violation code %d", int(c))
}

// ErrorSink receives violations found while parsing one file.
// Parsers report into a sink when one is supplied and fail immediately
// when it is not. Implementations must be safe for concurrent use.
type ErrorSink interface {
	// Report records a violation.
	Report(code Code, severity Severity, message string)
}

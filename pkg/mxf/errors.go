package mxf

import (
	"errors"
	"strings"
)

// Sentinel errors, one per violation class.
// These enable callers to distinguish failures using errors.Is().
//
// Example usage:
//
//	hp, err := header.Read(src, header.Options{})
//	if errors.Is(err, mxf.ErrCycleDetected) {
//	    // strong references in this file loop back on themselves
//	}
var (
	// ErrMalformedKLV indicates a key or length field could not be decoded.
	ErrMalformedKLV = errors.New("malformed KLV packet")

	// ErrInvalidPartitionKey indicates a partition pack key did not match the partition pack pattern.
	ErrInvalidPartitionKey = errors.New("invalid partition pack key")

	// ErrInvalidPrimerPackKey indicates a primer pack key did not match the primer pack pattern.
	ErrInvalidPrimerPackKey = errors.New("invalid primer pack key")

	// ErrMalformedPrimerPack indicates a duplicate or zero local tag in a primer pack.
	ErrMalformedPrimerPack = errors.New("malformed primer pack")

	// ErrUnexpectedFieldSize indicates a fixed-width field carried the wrong number of bytes.
	ErrUnexpectedFieldSize = errors.New("unexpected field size")

	// ErrInvalidPrefaceCount indicates a header partition without exactly one Preface set.
	ErrInvalidPrefaceCount = errors.New("invalid preface count")

	// ErrCycleDetected indicates the strong-reference graph is not acyclic.
	ErrCycleDetected = errors.New("strong reference cycle detected")

	// ErrUnresolvedStrongReference indicates a reference to an instance that is not present.
	ErrUnresolvedStrongReference = errors.New("unresolved strong reference")

	// ErrMissingPrimerPack indicates the header metadata does not start with a primer pack.
	ErrMissingPrimerPack = errors.New("missing primer pack")

	// ErrWrongHeaderOffset indicates a header partition that does not start at byte 0.
	ErrWrongHeaderOffset = errors.New("header partition not at offset 0")

	// ErrUnrecognizedPartitionKind indicates a partition key whose kind byte is not header, body or footer.
	ErrUnrecognizedPartitionKind = errors.New("unrecognized partition kind")

	// ErrInvalidPartitionField indicates a negative byte offset or count in a partition pack.
	ErrInvalidPartitionField = errors.New("invalid partition pack field")

	// ErrMissingSubDescriptor indicates a wave audio descriptor without any audio sub-descriptor.
	ErrMissingSubDescriptor = errors.New("missing audio sub-descriptor")

	// ErrUnknownLocalTag indicates a local tag that the primer pack does not define.
	ErrUnknownLocalTag = errors.New("unknown local tag")

	// ErrDuplicateInstanceUID indicates two metadata sets sharing one InstanceUID.
	ErrDuplicateInstanceUID = errors.New("duplicate instance UID")

	// ErrInvalidConfig indicates an unreadable or invalid configuration file.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrIO indicates the byte source could not deliver the requested bytes.
	ErrIO = errors.New("i/o error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrInvalidPrefaceCount),
		errors.Is(err, ErrCycleDetected),
		errors.Is(err, ErrMissingSubDescriptor),
		errors.Is(err, ErrDuplicateInstanceUID):
		return ExitStructuralError
	case errors.Is(err, ErrMalformedKLV),
		errors.Is(err, ErrInvalidPartitionKey),
		errors.Is(err, ErrInvalidPrimerPackKey),
		errors.Is(err, ErrMalformedPrimerPack),
		errors.Is(err, ErrUnexpectedFieldSize),
		errors.Is(err, ErrMissingPrimerPack),
		errors.Is(err, ErrWrongHeaderOffset),
		errors.Is(err, ErrUnrecognizedPartitionKind),
		errors.Is(err, ErrInvalidPartitionField):
		return ExitMalformedInput
	}

	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "accepts ") ||
		strings.Contains(errStr, "requires at least") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}

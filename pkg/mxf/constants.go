package mxf

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // All files parsed without fatal violations
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration file or flags
	ExitMalformedInput  = 20 // Byte-level violation (KLV, partition, primer, field size)
	ExitStructuralError = 21 // Metadata graph violation (preface count, cycle, sub-descriptors)
	ExitIOError         = 22 // Short read or unreadable file
)

const (
	// HeaderPartitionOffset is the only byte offset a header partition may start at.
	HeaderPartitionOffset = 0

	// DefaultMaxSets bounds the number of metadata sets collected from one header partition.
	// Real files carry hundreds; the bound only exists to stop adversarial inputs early.
	DefaultMaxSets = 1 << 16

	// DefaultWorkers is the default number of files inspected concurrently by the CLI.
	DefaultWorkers = 4
)

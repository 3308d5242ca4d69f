// Package header reads the header partition of an MXF file and resolves
// its structural metadata into a linked object graph.
//
// Reading proceeds in stages: the partition pack and primer pack are
// decoded, every metadata set inside the header metadata is collected,
// the strong references between sets are sorted topologically, and typed
// objects are built in that order so that each object can point at the
// objects it references. The result is a HeaderPartition, which is
// read-only and safe to share between goroutines.
package header

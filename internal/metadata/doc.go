// Package metadata decodes the structural metadata sets of an MXF header
// partition into their raw form: scalar fields plus the InstanceUIDs of
// the sets they reference. Linking sets to each other is left to the
// header package.
//
// Each set kind is registered once, keyed by its Universal Label with the
// version and item-coding bytes cleared. Keys that are not registered are
// skipped by the caller, which is how unsupported set kinds are tolerated.
package metadata

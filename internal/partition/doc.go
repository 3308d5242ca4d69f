// Package partition decodes the fixed-layout packs that frame an MXF file:
// partition packs (header, body, footer), the primer pack that maps 2-byte
// local tags to Universal Labels for one header partition, and the random
// index pack at the end of the file.
package partition

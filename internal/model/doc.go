// Package model holds the linked, typed metadata objects produced by
// resolving a header partition. Each object embeds the raw set it was
// built from and points at the objects its references resolved to.
//
// Objects are created bottom-up by the header resolver and must not be
// modified afterwards; sharing them across goroutines is safe.
package model

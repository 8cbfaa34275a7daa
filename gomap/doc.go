// Package gomap converts between Go values and ir nodes by
// reflection. It is the typed layer over the untyped transcoding
// core: ToIR stringifies Go scalars into ir, and FromIR parses ir
// scalars back into typed struct fields, applying the name-unwrap and
// sequence-extraction rules callers expect from schema-free XML.
//
// Field visibility follows encoding/json: only exported struct fields
// are processed, renamed or skipped via the `xmlv` struct tag.
package gomap

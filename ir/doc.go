// Package ir defines the value model shared by both transcoding
// directions: a closed tagged union of Null, String, Object and Array
// nodes. Objects preserve insertion order; scalars are untyped text —
// typed interpretation belongs to package gomap.
package ir

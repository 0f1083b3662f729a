// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package pointer provides generic helpers for optional values.

Patch structs use pointer fields to distinguish "leave unchanged" from "set to
the zero value"; these helpers keep call sites free of temporary variables.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer, returning the zero value if nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback safely dereferences a pointer, returning fallback if nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// NilIfEmpty returns nil for an empty string and a pointer to s otherwise.
//
// Optional text columns (bio, avatar, cover image) are stored as NULL rather
// than "".
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

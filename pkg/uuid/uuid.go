// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package uuid provides time-ordered identifiers for rows, requests and tokens.

Version 7 values sort by creation time, which keeps B-tree primary keys
append-mostly in PostgreSQL.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}

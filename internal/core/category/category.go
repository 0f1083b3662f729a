// Copyright (c) 2026 GolpoHub. All rights reserved.

// Package category manages the genre labels attached to stories.
package category

import "time"

// Category is a named genre label such as "প্রেম" or "রহস্য".
//
// This is the only category shape in the system; the story repository
// flattens its join table into []Category before anything else sees it.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch holds the mutable fields of a category. Nil fields are left unchanged.
type Patch struct {
	Name *string `json:"name"`
}

// Global field names for validation
const (
	FieldName = "name"
)

// Names returns the plain names of categories, in order.
func Names(categories []Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

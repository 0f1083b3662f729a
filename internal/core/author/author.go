// Copyright (c) 2026 GolpoHub. All rights reserved.

// Package author manages writer profiles.
package author

import "time"

// Author is a writer profile shown on the authors page and on story cards.
//
// StoryCount, TotalReads and TotalComments are display-only counters kept by
// the store; nothing in this service recomputes them.
type Author struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Bio           *string   `json:"bio,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	JoinedDate    time.Time `json:"joined_date"`
	StoryCount    int       `json:"story_count"`
	TotalReads    int64     `json:"total_reads"`
	TotalComments int64     `json:"total_comments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Input carries the admin form for a new author.
type Input struct {
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
}

// Patch holds the mutable fields of an author. Nil fields are left unchanged.
type Patch struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
}

// Global field names for validation
const (
	FieldUsername    = "username"
	FieldDisplayName = "display_name"
	FieldBio         = "bio"
	FieldAvatar      = "avatar"
)

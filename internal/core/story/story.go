// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package story manages serialized stories and their numbered parts.

A story belongs to one author, carries any number of categories and is split
into parts numbered from 1. The repository hydrates all three relations so
callers always receive a complete [Story] with Parts ordered by PartNumber.
*/
package story

import (
	"cmp"
	"slices"
	"time"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
)

// Story is a serialized piece of fiction.
type Story struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	AuthorID      string              `json:"author_id"`
	Author        *author.Author      `json:"author,omitempty"`
	CoverImage    *string             `json:"cover_image,omitempty"`
	IsFeatured    bool                `json:"is_featured"`
	PublishedDate time.Time           `json:"published_date"`
	Views         int64               `json:"views"`
	Comments      int64               `json:"comments"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Categories    []category.Category `json:"categories"`
	Parts         []Part              `json:"parts"`
}

// Part is one installment of a story. PartNumber is 1-based and unique per story.
type Part struct {
	ID            string    `json:"id"`
	StoryID       string    `json:"story_id"`
	PartNumber    int       `json:"part_number"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	PublishedDate time.Time `json:"published_date"`
	Views         int64     `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PartDraft is a part submitted through the admin form.
//
// PartNumber is ignored during composite story creation, where parts are
// numbered in submission order.
type PartDraft struct {
	PartNumber int    `json:"part_number"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// NewStory is the composite admin submission: the story, its category links
// and its initial parts.
type NewStory struct {
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	AuthorID    string      `json:"author_id"`
	CoverImage  *string     `json:"cover_image"`
	IsFeatured  bool        `json:"is_featured"`
	CategoryIDs []string    `json:"category_ids"`
	Parts       []PartDraft `json:"parts"`
}

// Patch holds the mutable fields of a story. Nil fields are left unchanged;
// a non-nil CategoryIDs replaces the whole category set.
type Patch struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	AuthorID    *string   `json:"author_id"`
	CoverImage  *string   `json:"cover_image"`
	IsFeatured  *bool     `json:"is_featured"`
	CategoryIDs *[]string `json:"category_ids"`
}

// PartPatch holds the mutable fields of a part.
type PartPatch struct {
	PartNumber *int    `json:"part_number"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
}

// Global field names for validation
const (
	FieldTitle      = "title"
	FieldSlug       = "slug"
	FieldAuthorID   = "author_id"
	FieldCoverImage = "cover_image"
	FieldParts      = "parts"
	FieldPartNumber = "part_number"
	FieldContent    = "content"
)

// Part returns the part numbered n.
func (s *Story) Part(n int) (Part, bool) {
	for _, p := range s.Parts {
		if p.PartNumber == n {
			return p, true
		}
	}
	return Part{}, false
}

// FirstPart returns the lowest-numbered part.
func (s *Story) FirstPart() (Part, bool) {
	if len(s.Parts) == 0 {
		return Part{}, false
	}
	return s.Parts[0], true
}

// HasCategory reports whether the story carries a category named name.
func (s *Story) HasCategory(name string) bool {
	return slices.ContainsFunc(s.Categories, func(c category.Category) bool { return c.Name == name })
}

// SortParts orders parts by PartNumber ascending, in place.
func SortParts(parts []Part) {
	slices.SortStableFunc(parts, func(a, b Part) int { return cmp.Compare(a.PartNumber, b.PartNumber) })
}

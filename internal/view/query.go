// Copyright (c) 2026 GolpoHub. All rights reserved.

package view

import (
	"cmp"
	"net/url"
	"slices"
	"strings"

	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/pkg/slice"
)

// SortOrder selects how a story list is ordered.
type SortOrder string

const (
	SortLatest       SortOrder = "latest"
	SortPopular      SortOrder = "popular"
	SortAlphabetical SortOrder = "alphabetical"
)

// ParseSort maps a raw query value onto a [SortOrder]; unknown values mean latest.
func ParseSort(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortPopular, SortAlphabetical:
		return SortOrder(raw)
	}
	return SortLatest
}

// Query is the browse page's search state.
type Query struct {
	// Search matches story titles and author display names, case-insensitively.
	Search string `json:"q"`
	// Category matches a category ID or exact name. Empty matches everything.
	Category string    `json:"category"`
	Sort     SortOrder `json:"sort"`
}

// ParseQuery reads q, category and sort from the query string.
func ParseQuery(values url.Values) Query {
	return Query{
		Search:   strings.TrimSpace(values.Get("q")),
		Category: strings.TrimSpace(values.Get("category")),
		Sort:     ParseSort(values.Get("sort")),
	}
}

/*
ApplyQuery filters and orders stories for the browse page.

Description: The input slice is never modified. The result is always a new
slice, empty rather than nil when nothing matches.

Parameters:
  - stories: []story.Story (catalog snapshot)
  - query: Query

Returns:
  - []story.Story: Matching stories in the requested order
*/
func ApplyQuery(stories []story.Story, query Query) []story.Story {
	needle := strings.ToLower(query.Search)

	matched := slice.Filter(stories, func(s story.Story) bool {
		return matchesSearch(s, needle) && matchesCategory(s, query.Category)
	})

	SortStories(matched, query.Sort)
	return matched
}

// SortStories orders stories in place. Ties keep their incoming order.
func SortStories(stories []story.Story, order SortOrder) {
	switch order {
	case SortPopular:
		slices.SortStableFunc(stories, func(a, b story.Story) int { return cmp.Compare(b.Views, a.Views) })
	case SortAlphabetical:
		slices.SortStableFunc(stories, func(a, b story.Story) int { return strings.Compare(a.Title, b.Title) })
	default:
		slices.SortStableFunc(stories, func(a, b story.Story) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}
}

func matchesSearch(s story.Story, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(s.Title), needle) {
		return true
	}
	return s.Author != nil && strings.Contains(strings.ToLower(s.Author.DisplayName), needle)
}

func matchesCategory(s story.Story, want string) bool {
	if want == "" {
		return true
	}
	return slices.ContainsFunc(s.Categories, func(c category.Category) bool {
		return c.ID == want || c.Name == want
	})
}

// Featured returns the stories flagged for promotion, in snapshot order.
func Featured(stories []story.Story) []story.Story {
	return slice.Filter(stories, func(s story.Story) bool { return s.IsFeatured })
}

// Latest returns at most n stories ordered newest first.
func Latest(stories []story.Story, n int) []story.Story {
	sorted := slices.Clone(stories)
	SortStories(sorted, SortLatest)
	return sorted[:max(0, min(n, len(sorted)))]
}

// CategoryNames returns the plain category names of s.
func CategoryNames(s story.Story) []string {
	return category.Names(s.Categories)
}

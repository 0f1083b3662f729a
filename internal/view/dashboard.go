// Copyright (c) 2026 GolpoHub. All rights reserved.

package view

import (
	"strings"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/pkg/slice"
)

// RecentCount is the number of stories on the dashboard overview.
const RecentCount = 5

// CategoryUsage is one row of the dashboard's category table.
type CategoryUsage struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StoryCount int    `json:"story_count"`
}

// Dashboard is the admin overview.
type Dashboard struct {
	StoryCount      int             `json:"story_count"`
	AuthorCount     int             `json:"author_count"`
	CategoryCount   int             `json:"category_count"`
	TotalViews      int64           `json:"total_views"`
	TotalViewsLabel string          `json:"total_views_label"`
	Recent          []Card          `json:"recent"`
	Categories      []CategoryUsage `json:"categories"`
}

// NewDashboard summarizes the catalog for the admin overview.
func NewDashboard(stories []story.Story, authors []author.Author, categories []category.Category, theme Theme) Dashboard {
	var views int64
	usage := make(map[string]int, len(categories))
	for _, s := range stories {
		views += s.Views
		for _, c := range s.Categories {
			usage[c.ID]++
		}
	}

	return Dashboard{
		StoryCount:      len(stories),
		AuthorCount:     len(authors),
		CategoryCount:   len(categories),
		TotalViews:      views,
		TotalViewsLabel: FormatCount(views),
		Recent:          Cards(Latest(stories, RecentCount), theme),
		Categories: slice.Map(categories, func(c category.Category) CategoryUsage {
			return CategoryUsage{ID: c.ID, Name: c.Name, StoryCount: usage[c.ID]}
		}),
	}
}

// SearchAuthors matches display names and usernames, case-insensitively.
func SearchAuthors(authors []author.Author, search string) []author.Author {
	needle := strings.ToLower(strings.TrimSpace(search))

	return slice.Filter(authors, func(a author.Author) bool {
		return needle == "" ||
			strings.Contains(strings.ToLower(a.DisplayName), needle) ||
			strings.Contains(strings.ToLower(a.Username), needle)
	})
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package view

import (
	"fmt"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/markup"
	"github.com/golpohub/golpohub/pkg/pointer"
	"github.com/golpohub/golpohub/pkg/slice"
)

// Fallback images for records without one.
const (
	DefaultCoverImage = "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=400"
	DefaultAvatar     = "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150"
)

// ExcerptRunes is the length of the first-part teaser on a story card.
const ExcerptRunes = 160

// StoryPath returns the reader URL of a story part.
func StoryPath(slug string, part int) string {
	if part <= 1 {
		return "/story/" + slug
	}
	return fmt.Sprintf("/story/%s/part/%d", slug, part)
}

// AuthorPath returns the reader URL of an author profile.
func AuthorPath(username string) string {
	return "/author/" + username
}

// AuthorSummary is the byline shown on story cards.
type AuthorSummary struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	URL         string `json:"url"`
}

// Card is the listing view of a story.
type Card struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	URL           string         `json:"url"`
	CoverImage    string         `json:"cover_image"`
	IsFeatured    bool           `json:"is_featured"`
	Categories    []string       `json:"categories"`
	Author        *AuthorSummary `json:"author,omitempty"`
	PartCount     int            `json:"part_count"`
	Views         int64          `json:"views"`
	ViewsLabel    string         `json:"views_label"`
	Comments      int64          `json:"comments"`
	PublishedDate string         `json:"published_date"`
	Excerpt       string         `json:"excerpt"`
}

// NewCard builds the card of s under theme.
func NewCard(s story.Story, theme Theme) Card {
	card := Card{
		ID:            s.ID,
		Title:         s.Title,
		Slug:          s.Slug,
		URL:           StoryPath(s.Slug, 1),
		CoverImage:    pointer.Fallback(s.CoverImage, DefaultCoverImage),
		IsFeatured:    s.IsFeatured,
		Categories:    CategoryNames(s),
		PartCount:     len(s.Parts),
		Views:         s.Views,
		ViewsLabel:    FormatCount(s.Views),
		Comments:      s.Comments,
		PublishedDate: FormatDate(s.PublishedDate),
	}

	if s.Author != nil {
		card.Author = &AuthorSummary{
			Username:    s.Author.Username,
			DisplayName: s.Author.DisplayName,
			Avatar:      pointer.Fallback(s.Author.Avatar, DefaultAvatar),
			URL:         AuthorPath(s.Author.Username),
		}
	}

	if first, ok := s.FirstPart(); ok {
		card.Excerpt = markup.Excerpt(first.Content, theme.Palette(), ExcerptRunes)
	}

	return card
}

// Cards builds the card of every story, in order.
func Cards(stories []story.Story, theme Theme) []Card {
	return slice.Map(stories, func(s story.Story) Card { return NewCard(s, theme) })
}

// AuthorCard is the listing view of an author.
type AuthorCard struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	DisplayName   string  `json:"display_name"`
	Bio           *string `json:"bio,omitempty"`
	Avatar        string  `json:"avatar"`
	URL           string  `json:"url"`
	JoinedDate    string  `json:"joined_date"`
	StoryCount    int     `json:"story_count"`
	TotalReads    int64   `json:"total_reads"`
	ReadsLabel    string  `json:"reads_label"`
	TotalComments int64   `json:"total_comments"`
}

// NewAuthorCard builds the card of a.
func NewAuthorCard(a author.Author) AuthorCard {
	return AuthorCard{
		ID:            a.ID,
		Username:      a.Username,
		DisplayName:   a.DisplayName,
		Bio:           a.Bio,
		Avatar:        pointer.Fallback(a.Avatar, DefaultAvatar),
		URL:           AuthorPath(a.Username),
		JoinedDate:    FormatDate(a.JoinedDate),
		StoryCount:    a.StoryCount,
		TotalReads:    a.TotalReads,
		ReadsLabel:    FormatCount(a.TotalReads),
		TotalComments: a.TotalComments,
	}
}

// AuthorCards builds the card of every author, in order.
func AuthorCards(authors []author.Author) []AuthorCard {
	return slice.Map(authors, NewAuthorCard)
}

// PartLink is one entry of a story's part navigation.
type PartLink struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Current bool   `json:"current"`
}

// Reading is the story page: one rendered part plus its navigation.
type Reading struct {
	Story         Card       `json:"story"`
	PartNumber    int        `json:"part_number"`
	PartTitle     string     `json:"part_title"`
	HTML          string     `json:"html"`
	PartViews     int64      `json:"part_views"`
	PublishedDate string     `json:"published_date"`
	Parts         []PartLink `json:"parts"`
	Prev          *PartLink  `json:"prev,omitempty"`
	Next          *PartLink  `json:"next,omitempty"`
}

/*
NewReading renders part n of s.

Description: Prev and Next link to parts n-1 and n+1 only when those exact
numbers exist, so a gap left by a deletion ends navigation in that direction.

Parameters:
  - s: story.Story
  - n: int (part number)
  - theme: Theme

Returns:
  - Reading: The rendered page
  - bool: false when s has no part numbered n
*/
func NewReading(s story.Story, n int, theme Theme) (Reading, bool) {
	part, ok := s.Part(n)
	if !ok {
		return Reading{}, false
	}

	links := slice.Map(s.Parts, func(p story.Part) PartLink {
		return PartLink{
			Number:  p.PartNumber,
			Title:   p.Title,
			URL:     StoryPath(s.Slug, p.PartNumber),
			Current: p.PartNumber == n,
		}
	})

	reading := Reading{
		Story:         NewCard(s, theme),
		PartNumber:    part.PartNumber,
		PartTitle:     part.Title,
		HTML:          markup.Render(part.Content, theme.Palette()),
		PartViews:     part.Views,
		PublishedDate: FormatDate(part.PublishedDate),
		Parts:         links,
	}

	for i := range links {
		switch links[i].Number {
		case n - 1:
			reading.Prev = &links[i]
		case n + 1:
			reading.Next = &links[i]
		}
	}

	return reading, true
}

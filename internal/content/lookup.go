// Copyright (c) 2026 GolpoHub. All rights reserved.

package content

import (
	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/view"
	"github.com/golpohub/golpohub/pkg/slice"
)

// Stories returns the story snapshot, newest first.
func (c *Catalog) Stories() []story.Story {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.stories
}

// Authors returns the author snapshot, newest first.
func (c *Catalog) Authors() []author.Author {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.authors
}

// Categories returns the category snapshot, by name.
func (c *Catalog) Categories() []category.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.categories
}

// StoryBySlug finds the story with the given slug.
func (c *Catalog) StoryBySlug(slug string) (story.Story, bool) {
	return slice.Find(c.Stories(), func(s story.Story) bool { return s.Slug == slug })
}

// StoryByID finds the story with the given ID.
func (c *Catalog) StoryByID(id string) (story.Story, bool) {
	return slice.Find(c.Stories(), func(s story.Story) bool { return s.ID == id })
}

// AuthorByUsername finds the author with the given username.
func (c *Catalog) AuthorByUsername(username string) (author.Author, bool) {
	return slice.Find(c.Authors(), func(a author.Author) bool { return a.Username == username })
}

// StoriesByAuthor returns the stories written by username, newest first.
func (c *Catalog) StoriesByAuthor(username string) []story.Story {
	return slice.Filter(c.Stories(), func(s story.Story) bool {
		return s.Author != nil && s.Author.Username == username
	})
}

// StoryPart finds part n of the story with the given slug.
func (c *Catalog) StoryPart(slug string, n int) (story.Part, bool) {
	s, ok := c.StoryBySlug(slug)
	if !ok {
		return story.Part{}, false
	}
	return s.Part(n)
}

// FeaturedStories returns the stories flagged for promotion.
func (c *Catalog) FeaturedStories() []story.Story {
	return view.Featured(c.Stories())
}

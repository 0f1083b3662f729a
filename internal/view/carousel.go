// Copyright (c) 2026 GolpoHub. All rights reserved.

package view

import (
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/platform/constants"
)

// CarouselPlaceholder is shown instead of slides when nothing is featured.
const CarouselPlaceholder = "কোনো ফিচার্ড গল্প নেই"

// Carousel cycles through the featured stories.
//
// The zero value is an empty carousel. Navigation on an empty carousel is a no-op.
type Carousel struct {
	Slides     []Card `json:"slides"`
	Current    int    `json:"current"`
	IntervalMS int64  `json:"interval_ms"`
	// Placeholder is set only when there are no slides.
	Placeholder string `json:"placeholder,omitempty"`
}

// NewCarousel builds a carousel over the featured subset of stories.
func NewCarousel(stories []story.Story, theme Theme) Carousel {
	featured := Featured(stories)

	c := Carousel{
		Slides:     Cards(featured, theme),
		IntervalMS: constants.CarouselInterval.Milliseconds(),
	}
	if c.Empty() {
		c.Placeholder = CarouselPlaceholder
	}
	return c
}

// Empty reports whether the carousel has nothing to show.
func (c *Carousel) Empty() bool {
	return len(c.Slides) == 0
}

// Next advances to the following slide, wrapping to the first.
func (c *Carousel) Next() {
	if c.Empty() {
		return
	}
	c.Current = (c.Current + 1) % len(c.Slides)
}

// Prev moves to the previous slide, wrapping to the last.
func (c *Carousel) Prev() {
	if c.Empty() {
		return
	}
	c.Current = (c.Current - 1 + len(c.Slides)) % len(c.Slides)
}

// GoTo jumps to slide index. Out-of-range indexes are ignored.
func (c *Carousel) GoTo(index int) {
	if index < 0 || index >= len(c.Slides) {
		return
	}
	c.Current = index
}

// Slide returns the current slide.
func (c *Carousel) Slide() (Card, bool) {
	if c.Empty() {
		return Card{}, false
	}
	return c.Slides[c.Current], true
}

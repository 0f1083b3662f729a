// Copyright (c) 2026 GolpoHub. All rights reserved.

package site

import (
	"fmt"
	"net/http"

	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/platform/request"
	"github.com/golpohub/golpohub/internal/platform/respond"
	"github.com/golpohub/golpohub/internal/view"
	"github.com/golpohub/golpohub/pkg/convert"
	"github.com/golpohub/golpohub/pkg/pagination"
)

// # Home

type homePage struct {
	Status
	Theme     view.Theme        `json:"theme"`
	Carousel  view.Carousel     `json:"carousel"`
	Spotlight *view.Card        `json:"spotlight,omitempty"`
	Latest    []view.Card       `json:"latest"`
	Authors   []view.AuthorCard `json:"authors"`
}

/*
GET /api/v1/home?slide=&step=next|prev.

Description: slide selects a carousel index (out-of-range values are
ignored) and step then moves one slide, wrapping at either end. Spotlight is
the slide the carousel ends on.

Response:
  - 200: homePage (the carousel carries a placeholder when nothing is featured)
*/
func (handler *Handler) home(writer http.ResponseWriter, httpRequest *http.Request) {
	theme := handler.theme(httpRequest)
	stories := handler.catalog.Stories()
	authors := handler.catalog.Authors()

	carousel := view.NewCarousel(stories, theme)
	query := httpRequest.URL.Query()
	if raw := query.Get("slide"); raw != "" {
		carousel.GoTo(convert.ToIntD(raw, -1))
	}
	switch query.Get("step") {
	case "next":
		carousel.Next()
	case "prev":
		carousel.Prev()
	}

	page := homePage{
		Status:   handler.status(),
		Theme:    theme,
		Carousel: carousel,
		Latest:   view.Cards(view.Latest(stories, homeLatestCount), theme),
		Authors:  view.AuthorCards(authors[:min(homeAuthorsCount, len(authors))]),
	}
	if slide, ok := carousel.Slide(); ok {
		page.Spotlight = &slide
	}

	respond.OK(writer, page)
}

// # Authors

type authorsPage struct {
	Status
	Authors []view.AuthorCard `json:"authors"`
}

// GET /api/v1/authors.
func (handler *Handler) listAuthors(writer http.ResponseWriter, httpRequest *http.Request) {
	respond.OK(writer, authorsPage{
		Status:  handler.status(),
		Authors: view.AuthorCards(handler.catalog.Authors()),
	})
}

type authorPage struct {
	Author  view.AuthorCard `json:"author"`
	Stories []view.Card     `json:"stories"`
}

/*
GET /api/v1/authors/{username}.

Response:
  - 200: authorPage
  - 404: Unavailable{state: author_not_found}
*/
func (handler *Handler) getAuthor(writer http.ResponseWriter, httpRequest *http.Request) {
	username := request.Param(httpRequest, "username")

	found, ok := handler.catalog.AuthorByUsername(username)
	if !ok {
		handler.missing(writer, Unavailable{
			State:   StateAuthorNotFound,
			Title:   "লেখক পাওয়া যায়নি",
			Message: "দুঃখিত, এই লেখকের প্রোফাইল খুঁজে পাওয়া যায়নি।",
			Link:    &Link{Label: "সব লেখক দেখুন", URL: "/authors"},
		})
		return
	}

	respond.OK(writer, authorPage{
		Author:  view.NewAuthorCard(found),
		Stories: view.Cards(handler.catalog.StoriesByAuthor(username), handler.theme(httpRequest)),
	})
}

// # Series

type seriesPage struct {
	Status
	Query      view.Query  `json:"query"`
	Categories []string    `json:"categories"`
	Stories    []view.Card `json:"stories"`
}

/*
GET /api/v1/series.

Request:
  - q: string (title or author display name, case-insensitive)
  - category: string (category name or ID)
  - sort: string (latest, popular, alphabetical)
  - page, limit: int

Response:
  - 200: Paginated seriesPage
*/
func (handler *Handler) series(writer http.ResponseWriter, httpRequest *http.Request) {
	query := view.ParseQuery(httpRequest.URL.Query())
	matched := view.ApplyQuery(handler.catalog.Stories(), query)
	window, meta := pagination.Window(matched, pagination.FromRequest(httpRequest))

	respond.Paginated(writer, seriesPage{
		Status:     handler.status(),
		Query:      query,
		Categories: category.Names(handler.catalog.Categories()),
		Stories:    view.Cards(window, handler.theme(httpRequest)),
	}, meta)
}

// # Story

// GET /api/v1/stories/{slug}.
func (handler *Handler) getStory(writer http.ResponseWriter, httpRequest *http.Request) {
	handler.read(writer, httpRequest, 1)
}

// GET /api/v1/stories/{slug}/parts/{partNumber}.
func (handler *Handler) getStoryPart(writer http.ResponseWriter, httpRequest *http.Request) {
	// A malformed number is reported like a missing part; no part 0 exists.
	n, err := request.IntParam(httpRequest, "partNumber")
	if err != nil {
		n = 0
	}
	handler.read(writer, httpRequest, n)
}

/*
read renders part n of the story named in the URL and records a view.

Response:
  - 200: view.Reading
  - 404: Unavailable{state: story_not_found | part_not_found}
*/
func (handler *Handler) read(writer http.ResponseWriter, httpRequest *http.Request, n int) {
	slug := request.Param(httpRequest, "slug")

	found, ok := handler.catalog.StoryBySlug(slug)
	if !ok {
		handler.missing(writer, Unavailable{
			State:   StateStoryNotFound,
			Title:   "গল্প পাওয়া যায়নি",
			Message: "দুঃখিত, এই গল্পটি খুঁজে পাওয়া যায়নি।",
			Link:    &Link{Label: "সব গল্প দেখুন", URL: "/series"},
		})
		return
	}

	reading, ok := view.NewReading(found, n, handler.theme(httpRequest))
	if !ok {
		handler.missing(writer, Unavailable{
			State:   StatePartNotFound,
			Title:   "পর্ব পাওয়া যায়নি",
			Message: fmt.Sprintf("এই গল্পের পর্ব %d পাওয়া যায়নি।", n),
			Link:    &Link{Label: "প্রথম পর্বে যান", URL: view.StoryPath(found.Slug, 1)},
		})
		return
	}

	part, _ := found.Part(n)
	handler.catalog.RecordView(httpRequest.Context(), found.ID, part.ID)

	respond.OK(writer, reading)
}

// # Theme

type themeResponse struct {
	Theme view.Theme `json:"theme"`
}

// POST /api/v1/theme flips the reader's theme and remembers it in a cookie.
func (handler *Handler) toggleTheme(writer http.ResponseWriter, httpRequest *http.Request) {
	next := handler.theme(httpRequest).Toggle()
	handler.setThemeCookie(writer, next)
	respond.OK(writer, themeResponse{Theme: next})
}

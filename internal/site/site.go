// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package site serves the reader-facing pages as JSON.

Every page is derived on request from the current catalog snapshot and the
reader's theme. Nothing here talks to the database except [content.Catalog.RecordView].

Pages:

  - Home: Featured carousel, latest stories and a handful of authors.
  - Authors / Author: The writer directory and one profile.
  - Series: Search, category filter, sort and pagination over all stories.
  - Story: One rendered part with its navigation.
*/
package site

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/golpohub/golpohub/internal/content"
	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/constants"
	"github.com/golpohub/golpohub/internal/platform/respond"
	"github.com/golpohub/golpohub/internal/view"
)

const (
	homeLatestCount  = 6
	homeAuthorsCount = 4
	themeCookieTTL   = 365 * 24 * time.Hour
)

// PageState tags page bodies that carry no content.
type PageState string

const (
	StateLoading        PageState = "loading"
	StateStoryNotFound  PageState = "story_not_found"
	StatePartNotFound   PageState = "part_not_found"
	StateAuthorNotFound PageState = "author_not_found"
)

// Link is a labelled escape route out of an empty page.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Unavailable is the body of a page whose subject does not exist (yet).
type Unavailable struct {
	State   PageState `json:"state"`
	Title   string    `json:"title,omitempty"`
	Message string    `json:"message,omitempty"`
	Link    *Link     `json:"link,omitempty"`
}

// Status reports the catalog condition alongside listing pages.
type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Handler implements the reader pages.
type Handler struct {
	catalog      *content.Catalog
	defaultTheme view.Theme
	secureCookie bool
}

// NewHandler constructs a reader [Handler].
func NewHandler(catalog *content.Catalog, defaultTheme view.Theme, secureCookie bool) *Handler {
	return &Handler{
		catalog:      catalog,
		defaultTheme: defaultTheme,
		secureCookie: secureCookie,
	}
}

// Routes returns a [chi.Router] configured with the reader pages.
//
// # Endpoints
//   - GET  /home
//   - GET  /authors, /authors/{username}
//   - GET  /series
//   - GET  /stories/{slug}, /stories/{slug}/parts/{partNumber}
//   - POST /theme
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/home", handler.home)
	router.Get("/authors", handler.listAuthors)
	router.Get("/authors/{username}", handler.getAuthor)
	router.Get("/series", handler.series)
	router.Get("/stories/{slug}", handler.getStory)
	router.Get("/stories/{slug}/parts/{partNumber}", handler.getStoryPart)
	router.Post("/theme", handler.toggleTheme)

	return router
}

// # Helpers

func (handler *Handler) theme(request *http.Request) view.Theme {
	return view.ThemeFromRequest(request, handler.defaultTheme)
}

func (handler *Handler) status() Status {
	status := Status{Loading: handler.catalog.Loading()}
	if err := handler.catalog.Err(); err != nil {
		status.Error = apperr.Message(err)
	}
	return status
}

// missing answers a failed lookup. While the catalog is still loading the
// subject may simply not have arrived, so the reader is told to wait instead.
func (handler *Handler) missing(writer http.ResponseWriter, body Unavailable) {
	if handler.catalog.Loading() {
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{
			Data: Unavailable{State: StateLoading},
		})
		return
	}
	respond.JSON(writer, http.StatusNotFound, respond.SuccessEnvelope{Data: body})
}

func (handler *Handler) setThemeCookie(writer http.ResponseWriter, theme view.Theme) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.ThemeCookieName,
		Value:    string(theme),
		Path:     "/",
		Expires:  time.Now().Add(themeCookieTTL),
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package admin exposes the dashboard's content management endpoints.

Every route sits behind [middleware.RequireAdmin]. Mutations go through the
[content.Catalog], which validates, writes and refreshes the affected
collections before the response is built, so the returned record is the one
the reader pages now serve.

Responses:

  - Success: {data: {record, banner}} with a success [view.Banner].
  - Failure: the standard error envelope plus an error banner.
  - Delete: requires ?confirm=true, otherwise 422.
*/
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/golpohub/golpohub/internal/content"
	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/middleware"
	"github.com/golpohub/golpohub/internal/platform/request"
	"github.com/golpohub/golpohub/internal/platform/respond"
	"github.com/golpohub/golpohub/internal/view"
)

// errUnconfirmed answers a delete sent without the confirmation step.
var errUnconfirmed = apperr.Unprocessable("Deletion must be confirmed with ?confirm=true")

// Result is the body of a successful mutation.
type Result struct {
	Record any         `json:"record,omitempty"`
	Banner view.Banner `json:"banner"`
}

// Handler implements the admin dashboard endpoints.
type Handler struct {
	catalog      *content.Catalog
	defaultTheme view.Theme
}

// NewHandler constructs an admin [Handler].
func NewHandler(catalog *content.Catalog, defaultTheme view.Theme) *Handler {
	return &Handler{catalog: catalog, defaultTheme: defaultTheme}
}

// Routes returns a gated [chi.Router] with every admin endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Group(func(gated chi.Router) {
		gated.Use(middleware.RequireAdmin)
		handler.Register(gated)
	})
	return router
}

/*
Register attaches the admin endpoints to router.

The caller is responsible for gating router with [middleware.RequireAdmin].

# Endpoints
  - GET    /dashboard, /search
  - GET    /authors       POST /authors       PATCH|DELETE /authors/{id}
  - GET    /categories    POST /categories    PATCH|DELETE /categories/{id}
  - GET    /stories[/{id}] POST /stories      PATCH|DELETE /stories/{id}
  - POST   /stories/{id}/parts                PATCH|DELETE /parts/{id}
*/
func (handler *Handler) Register(router chi.Router) {
	router.Get("/dashboard", handler.dashboard)
	router.Get("/search", handler.search)

	router.Get("/authors", handler.listAuthors)
	router.Post("/authors", handler.createAuthor)
	router.Patch("/authors/{id}", handler.updateAuthor)
	router.Delete("/authors/{id}", handler.deleteAuthor)

	router.Get("/categories", handler.listCategories)
	router.Post("/categories", handler.createCategory)
	router.Patch("/categories/{id}", handler.updateCategory)
	router.Delete("/categories/{id}", handler.deleteCategory)

	router.Get("/stories", handler.listStories)
	router.Get("/stories/{id}", handler.getStory)
	router.Post("/stories", handler.createStory)
	router.Patch("/stories/{id}", handler.updateStory)
	router.Delete("/stories/{id}", handler.deleteStory)

	router.Post("/stories/{id}/parts", handler.createPart)
	router.Patch("/parts/{id}", handler.updatePart)
	router.Delete("/parts/{id}", handler.deletePart)
}

// # Overview

/*
GET /api/v1/admin/dashboard.

Response:
  - 200: view.Dashboard
*/
func (handler *Handler) dashboard(writer http.ResponseWriter, httpRequest *http.Request) {
	respond.OK(writer, view.NewDashboard(
		handler.catalog.Stories(),
		handler.catalog.Authors(),
		handler.catalog.Categories(),
		view.ThemeFromRequest(httpRequest, handler.defaultTheme),
	))
}

type searchResponse struct {
	Stories []view.Card       `json:"stories"`
	Authors []view.AuthorCard `json:"authors"`
}

/*
GET /api/v1/admin/search?q=.

Description: Stories match on title or author display name; authors match on
display name or username.
*/
func (handler *Handler) search(writer http.ResponseWriter, httpRequest *http.Request) {
	query := view.Query{Search: httpRequest.URL.Query().Get("q"), Sort: view.SortLatest}
	theme := view.ThemeFromRequest(httpRequest, handler.defaultTheme)

	respond.OK(writer, searchResponse{
		Stories: view.Cards(view.ApplyQuery(handler.catalog.Stories(), query), theme),
		Authors: view.AuthorCards(view.SearchAuthors(handler.catalog.Authors(), query.Search)),
	})
}

// # Helpers

func (handler *Handler) succeed(writer http.ResponseWriter, status int, record any, message string) {
	respond.JSON(writer, status, respond.SuccessEnvelope{
		Data: Result{Record: record, Banner: view.Success(message)},
	})
}

func (handler *Handler) fail(writer http.ResponseWriter, httpRequest *http.Request, err error) {
	respond.ErrorWithBanner(writer, httpRequest, err, view.Failure(err))
}

// confirmed reports whether a delete may proceed, answering 422 when not.
func (handler *Handler) confirmed(writer http.ResponseWriter, httpRequest *http.Request) bool {
	if request.Confirmed(httpRequest) {
		return true
	}
	handler.fail(writer, httpRequest, errUnconfirmed)
	return false
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package admin

import (
	"net/http"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/request"
	"github.com/golpohub/golpohub/internal/platform/respond"
)

// # Authors

// GET /api/v1/admin/authors.
func (handler *Handler) listAuthors(writer http.ResponseWriter, httpRequest *http.Request) {
	respond.OK(writer, handler.catalog.Authors())
}

/*
POST /api/v1/admin/authors.

Request:
  - body: author.Input

Response:
  - 201: Result{record: author.Author}
  - 400: VALIDATION_ERROR
  - 409: CONFLICT (username taken)
*/
func (handler *Handler) createAuthor(writer http.ResponseWriter, httpRequest *http.Request) {
	var input author.Input
	if err := request.DecodeJSON(writer, httpRequest, &input); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	created, err := handler.catalog.CreateAuthor(httpRequest.Context(), input)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusCreated, created, "Author created successfully!")
}

// PATCH /api/v1/admin/authors/{id}.
func (handler *Handler) updateAuthor(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := request.IDParam(httpRequest, "id", "Author")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	var patch author.Patch
	if err = request.DecodeJSON(writer, httpRequest, &patch); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	updated, err := handler.catalog.UpdateAuthor(httpRequest.Context(), id, patch)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, updated, "Author updated successfully!")
}

/*
DELETE /api/v1/admin/authors/{id}?confirm=true.

Response:
  - 200: Result (banner only)
  - 404: NOT_FOUND
  - 422: UNPROCESSABLE without confirmation
*/
func (handler *Handler) deleteAuthor(writer http.ResponseWriter, httpRequest *http.Request) {
	if !handler.confirmed(writer, httpRequest) {
		return
	}

	id, err := request.IDParam(httpRequest, "id", "Author")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	if err = handler.catalog.DeleteAuthor(httpRequest.Context(), id); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, nil, "Author deleted successfully!")
}

// # Categories

// GET /api/v1/admin/categories.
func (handler *Handler) listCategories(writer http.ResponseWriter, httpRequest *http.Request) {
	respond.OK(writer, handler.catalog.Categories())
}

type categoryRequest struct {
	Name string `json:"name"`
}

// POST /api/v1/admin/categories.
func (handler *Handler) createCategory(writer http.ResponseWriter, httpRequest *http.Request) {
	var input categoryRequest
	if err := request.DecodeJSON(writer, httpRequest, &input); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	created, err := handler.catalog.CreateCategory(httpRequest.Context(), input.Name)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusCreated, created, "Category created successfully!")
}

// PATCH /api/v1/admin/categories/{id}.
func (handler *Handler) updateCategory(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := request.IDParam(httpRequest, "id", "Category")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	var patch category.Patch
	if err = request.DecodeJSON(writer, httpRequest, &patch); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	updated, err := handler.catalog.UpdateCategory(httpRequest.Context(), id, patch)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, updated, "Category updated successfully!")
}

// DELETE /api/v1/admin/categories/{id}?confirm=true.
func (handler *Handler) deleteCategory(writer http.ResponseWriter, httpRequest *http.Request) {
	if !handler.confirmed(writer, httpRequest) {
		return
	}

	id, err := request.IDParam(httpRequest, "id", "Category")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	if err = handler.catalog.DeleteCategory(httpRequest.Context(), id); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, nil, "Category deleted successfully!")
}

// # Stories

// GET /api/v1/admin/stories returns full records, part content included.
func (handler *Handler) listStories(writer http.ResponseWriter, httpRequest *http.Request) {
	respond.OK(writer, handler.catalog.Stories())
}

// GET /api/v1/admin/stories/{id}.
func (handler *Handler) getStory(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := request.IDParam(httpRequest, "id", "Story")
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	found, ok := handler.catalog.StoryByID(id)
	if !ok {
		respond.Error(writer, httpRequest, apperr.NotFound("Story"))
		return
	}
	respond.OK(writer, found)
}

/*
POST /api/v1/admin/stories.

Description: Creates the story, its category links and its parts in one
submission. Parts are numbered in submission order. If a later step fails
the story row is removed again.

Request:
  - body: story.NewStory

Response:
  - 201: Result{record: story.Story}
  - 400: VALIDATION_ERROR
  - 409: CONFLICT (slug taken)
*/
func (handler *Handler) createStory(writer http.ResponseWriter, httpRequest *http.Request) {
	var input story.NewStory
	if err := request.DecodeJSON(writer, httpRequest, &input); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	created, err := handler.catalog.CreateStory(httpRequest.Context(), input)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusCreated, created, "Story created successfully!")
}

// PATCH /api/v1/admin/stories/{id}.
func (handler *Handler) updateStory(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := request.IDParam(httpRequest, "id", "Story")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	var patch story.Patch
	if err = request.DecodeJSON(writer, httpRequest, &patch); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	updated, err := handler.catalog.UpdateStory(httpRequest.Context(), id, patch)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, updated, "Story updated successfully!")
}

// DELETE /api/v1/admin/stories/{id}?confirm=true.
func (handler *Handler) deleteStory(writer http.ResponseWriter, httpRequest *http.Request) {
	if !handler.confirmed(writer, httpRequest) {
		return
	}

	id, err := request.IDParam(httpRequest, "id", "Story")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	if err = handler.catalog.DeleteStory(httpRequest.Context(), id); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, nil, "Story deleted successfully!")
}

// # Parts

/*
POST /api/v1/admin/stories/{id}/parts.

Request:
  - body: story.PartDraft (part_number required, unique within the story)

Response:
  - 201: Result{record: story.Part}
  - 409: CONFLICT (number taken)
*/
func (handler *Handler) createPart(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := request.IDParam(httpRequest, "id", "Story")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	var draft story.PartDraft
	if err = request.DecodeJSON(writer, httpRequest, &draft); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	created, err := handler.catalog.CreatePart(httpRequest.Context(), id, draft)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusCreated, created, "Part added successfully!")
}

// PATCH /api/v1/admin/parts/{id}.
func (handler *Handler) updatePart(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := request.IDParam(httpRequest, "id", "Part")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	var patch story.PartPatch
	if err = request.DecodeJSON(writer, httpRequest, &patch); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	updated, err := handler.catalog.UpdatePart(httpRequest.Context(), id, patch)
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, updated, "Part updated successfully!")
}

// DELETE /api/v1/admin/parts/{id}?confirm=true.
func (handler *Handler) deletePart(writer http.ResponseWriter, httpRequest *http.Request) {
	if !handler.confirmed(writer, httpRequest) {
		return
	}

	id, err := request.IDParam(httpRequest, "id", "Part")
	if err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	if err = handler.catalog.DeletePart(httpRequest.Context(), id); err != nil {
		handler.fail(writer, httpRequest, err)
		return
	}

	handler.succeed(writer, http.StatusOK, nil, "Part deleted successfully!")
}

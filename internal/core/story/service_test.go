// Copyright (c) 2026 GolpoHub. All rights reserved.

package story_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/pkg/pointer"
)

type fixture struct {
	authors    *author.MemoryRepository
	categories *category.MemoryRepository
	stories    *story.MemoryRepository
	author     *author.Author
	category   *category.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		authors:    author.NewMemoryRepository(),
		categories: category.NewMemoryRepository(),
	}
	f.stories = story.NewMemoryRepository(f.authors, f.categories)

	f.author = &author.Author{ID: "author-1", Username: "mona", DisplayName: "মোনা"}
	require.NoError(t, f.authors.Create(ctx, f.author))

	f.category = &category.Category{ID: "cat-1", Name: "প্রেম"}
	require.NoError(t, f.categories.Create(ctx, f.category))

	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *fixture) service(repo story.Repository) *story.Service {
	if repo == nil {
		repo = f.stories
	}
	return story.NewService(repo, discardLogger())
}

func TestService_CreateStory_Composite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	created, err := service.CreateStory(ctx, story.NewStory{
		Title:       "আমার গল্প",
		AuthorID:    f.author.ID,
		IsFeatured:  true,
		CategoryIDs: []string{f.category.ID},
		Parts: []story.PartDraft{
			{Title: "শুরু", Content: "প্রথম লাইন", PartNumber: 9},
			{Title: "শেষ", Content: "শেষ লাইন"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "আমার-গল্প", created.Slug)

	stories, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 1)

	got := stories[0]
	assert.Equal(t, "mona", got.Author.Username)
	assert.Equal(t, []string{"প্রেম"}, category.Names(got.Categories))
	require.Len(t, got.Parts, 2)
	assert.Equal(t, 1, got.Parts[0].PartNumber)
	assert.Equal(t, "শুরু", got.Parts[0].Title)
	assert.Equal(t, 2, got.Parts[1].PartNumber)
}

func TestService_CreateStory_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		input story.NewStory
	}{
		{"missing_title", story.NewStory{AuthorID: f.author.ID}},
		{"punctuation_title", story.NewStory{Title: "?!", AuthorID: f.author.ID}},
		{"missing_author", story.NewStory{Title: "গল্প"}},
		{"bad_slug", story.NewStory{Title: "গল্প", Slug: "Has Spaces", AuthorID: f.author.ID}},
		{"empty_part", story.NewStory{Title: "গল্প", AuthorID: f.author.ID, Parts: []story.PartDraft{{Title: "x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service(nil).CreateStory(context.Background(), tt.input)
			assert.True(t, apperr.IsCode(err, apperr.CodeValidation), "got %v", err)
		})
	}
}

func TestService_CreateStory_DuplicateSlug(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	_, err := service.CreateStory(ctx, story.NewStory{Title: "একই", AuthorID: f.author.ID})
	require.NoError(t, err)

	_, err = service.CreateStory(ctx, story.NewStory{Title: "একই", AuthorID: f.author.ID})
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestService_CreateStory_CompensatesFailedLinks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	_, err := service.CreateStory(ctx, story.NewStory{
		Title:       "অর্ধেক",
		AuthorID:    f.author.ID,
		CategoryIDs: []string{"no-such-category"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnprocessable))

	stories, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stories)
}

// failingParts makes the third step of composite creation fail.
type failingParts struct {
	*story.MemoryRepository
}

var errPartsDown = errors.New("parts insert failed")

func (failingParts) CreateParts(context.Context, []story.Part) error { return errPartsDown }

func TestService_CreateStory_CompensatesFailedParts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(failingParts{f.stories})

	_, err := service.CreateStory(ctx, story.NewStory{
		Title:       "অসম্পূর্ণ",
		AuthorID:    f.author.ID,
		CategoryIDs: []string{f.category.ID},
		Parts:       []story.PartDraft{{Title: "এক", Content: "লেখা"}},
	})
	assert.ErrorIs(t, err, errPartsDown)

	stories, err := f.stories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stories)
}

func TestService_Parts_SortedRegardlessOfInsertOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	created, err := service.CreateStory(ctx, story.NewStory{Title: "ক্রম", AuthorID: f.author.ID})
	require.NoError(t, err)

	for _, n := range []int{3, 1, 2} {
		_, err := service.CreatePart(ctx, created.ID, story.PartDraft{PartNumber: n, Title: "পর্ব", Content: "লেখা"})
		require.NoError(t, err)
	}

	_, err = service.CreatePart(ctx, created.ID, story.PartDraft{PartNumber: 2, Title: "আবার", Content: "লেখা"})
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))

	stories, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, stories[0].Parts, 3)
	for i, p := range stories[0].Parts {
		assert.Equal(t, i+1, p.PartNumber)
	}
}

func TestService_UpdateStory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	created, err := service.CreateStory(ctx, story.NewStory{Title: "পুরনো", AuthorID: f.author.ID})
	require.NoError(t, err)

	updated, err := service.UpdateStory(ctx, created.ID, story.Patch{
		Title:       pointer.To("নতুন"),
		IsFeatured:  pointer.To(true),
		CategoryIDs: &[]string{f.category.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "নতুন", updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.True(t, updated.IsFeatured)

	stories, err := service.List(ctx)
	require.NoError(t, err)
	assert.True(t, stories[0].HasCategory("প্রেম"))

	_, err = service.UpdateStory(ctx, "missing", story.Patch{Title: pointer.To("x")})
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestService_DeleteStory_CascadesParts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	created, err := service.CreateStory(ctx, story.NewStory{
		Title:    "মুছে ফেলা",
		AuthorID: f.author.ID,
		Parts:    []story.PartDraft{{Title: "এক", Content: "লেখা"}},
	})
	require.NoError(t, err)

	stories, err := service.List(ctx)
	require.NoError(t, err)
	partID := stories[0].Parts[0].ID

	require.NoError(t, service.DeleteStory(ctx, created.ID))
	assert.True(t, apperr.IsCode(service.DeletePart(ctx, partID), apperr.CodeNotFound))
}

func TestService_AuthorDeleteHidesStories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	_, err := service.CreateStory(ctx, story.NewStory{Title: "একা", AuthorID: f.author.ID})
	require.NoError(t, err)
	require.NoError(t, f.authors.Delete(ctx, f.author.ID))

	stories, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stories)
}

func TestService_IncrementViews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	service := f.service(nil)

	_, err := service.CreateStory(ctx, story.NewStory{
		Title:    "পঠিত",
		AuthorID: f.author.ID,
		Parts:    []story.PartDraft{{Title: "এক", Content: "লেখা"}},
	})
	require.NoError(t, err)

	stories, err := service.List(ctx)
	require.NoError(t, err)
	s := stories[0]

	require.NoError(t, service.IncrementViews(ctx, s.ID, s.Parts[0].ID))
	require.NoError(t, service.IncrementViews(ctx, s.ID, ""))

	stories, err = service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stories[0].Views)
	assert.Equal(t, int64(1), stories[0].Parts[0].Views)
}

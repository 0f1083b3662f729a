// Copyright (c) 2026 GolpoHub. All rights reserved.

package content_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/golpohub/golpohub/internal/content"
	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// flakyStories fails List or IncrementViews on demand.
type flakyStories struct {
	content.StoryStore
	failList  atomic.Bool
	failViews atomic.Bool
}

var errUnavailable = errors.New("store unavailable")

func (f *flakyStories) List(ctx context.Context) ([]story.Story, error) {
	if f.failList.Load() {
		return nil, errUnavailable
	}
	return f.StoryStore.List(ctx)
}

func (f *flakyStories) IncrementViews(ctx context.Context, storyID, partID string) error {
	if f.failViews.Load() {
		return errUnavailable
	}
	return f.StoryStore.IncrementViews(ctx, storyID, partID)
}

type harness struct {
	stories    *flakyStories
	authors    *author.Service
	categories *category.Service
}

func newHarness() *harness {
	authorRepo := author.NewMemoryRepository()
	categoryRepo := category.NewMemoryRepository()
	storyRepo := story.NewMemoryRepository(authorRepo, categoryRepo)

	return &harness{
		stories:    &flakyStories{StoryStore: story.NewService(storyRepo, discardLogger())},
		authors:    author.NewService(authorRepo, discardLogger()),
		categories: category.NewService(categoryRepo, discardLogger()),
	}
}

func (h *harness) catalog(opts ...content.Option) *content.Catalog {
	return content.NewCatalog(h.stories, h.authors, h.categories, discardLogger(), opts...)
}

// seed creates one author, one category and a two-part story through the catalog.
func seed(t *testing.T, catalog *content.Catalog) (*author.Author, *category.Category, *story.Story) {
	t.Helper()
	ctx := context.Background()

	a, err := catalog.CreateAuthor(ctx, author.Input{Username: "nusrat", DisplayName: "নুসরাত জাহান"})
	require.NoError(t, err)

	c, err := catalog.CreateCategory(ctx, "রহস্য")
	require.NoError(t, err)

	s, err := catalog.CreateStory(ctx, story.NewStory{
		Title:       "আমার গল্প",
		AuthorID:    a.ID,
		IsFeatured:  true,
		CategoryIDs: []string{c.ID},
		Parts: []story.PartDraft{
			{Title: "শুরু", Content: "**hi**"},
			{Title: "শেষ", Content: "*bye*"},
		},
	})
	require.NoError(t, err)

	return a, c, s
}

/*
TestCatalog_CreateStory verifies the composite create lands hydrated in the snapshot.
*/
func TestCatalog_CreateStory(t *testing.T) {
	catalog := newHarness().catalog()
	require.NoError(t, catalog.Refresh(context.Background()))

	a, c, created := seed(t, catalog)

	assert.Equal(t, "আমার-গল্প", created.Slug)
	require.NotNil(t, created.Author)
	assert.Equal(t, a.Username, created.Author.Username)
	assert.Equal(t, []category.Category{*c}, created.Categories)
	require.Len(t, created.Parts, 2)
	assert.Equal(t, []int{1, 2}, []int{created.Parts[0].PartNumber, created.Parts[1].PartNumber})

	found, ok := catalog.StoryBySlug("আমার-গল্প")
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)

	_, ok = catalog.StoryBySlug("missing")
	assert.False(t, ok)

	assert.Len(t, catalog.StoriesByAuthor("nusrat"), 1)
	assert.Empty(t, catalog.StoriesByAuthor("nobody"))
	assert.Len(t, catalog.FeaturedStories(), 1)

	byName, ok := catalog.AuthorByUsername("nusrat")
	require.True(t, ok)
	assert.Equal(t, a.ID, byName.ID)
}

/*
TestCatalog_DeleteOnlyPart verifies deleting the last part leaves the story without part 1.
*/
func TestCatalog_DeleteOnlyPart(t *testing.T) {
	ctx := context.Background()
	catalog := newHarness().catalog()

	a, err := catalog.CreateAuthor(ctx, author.Input{Username: "mona", DisplayName: "মোনা"})
	require.NoError(t, err)
	s, err := catalog.CreateStory(ctx, story.NewStory{
		Title:    "একা",
		AuthorID: a.ID,
		Parts:    []story.PartDraft{{Title: "একমাত্র", Content: "text"}},
	})
	require.NoError(t, err)

	part, ok := catalog.StoryPart(s.Slug, 1)
	require.True(t, ok)

	require.NoError(t, catalog.DeletePart(ctx, part.ID))

	_, ok = catalog.StoryPart(s.Slug, 1)
	assert.False(t, ok)

	remaining, ok := catalog.StoryBySlug(s.Slug)
	require.True(t, ok)
	assert.Empty(t, remaining.Parts)
}

/*
TestCatalog_RefreshFailureKeepsSnapshot verifies a failed refresh records an error and keeps prior state.
*/
func TestCatalog_RefreshFailureKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	catalog := h.catalog()
	seed(t, catalog)

	h.stories.failList.Store(true)
	err := catalog.Refresh(ctx)

	require.ErrorIs(t, err, errUnavailable)
	require.ErrorIs(t, catalog.Err(), errUnavailable)
	assert.Len(t, catalog.Stories(), 1)
	assert.Len(t, catalog.Authors(), 1)
	assert.False(t, catalog.Loading())

	h.stories.failList.Store(false)
	require.NoError(t, catalog.Refresh(ctx))
	assert.NoError(t, catalog.Err())
}

/*
TestCatalog_MutationFailure verifies failed mutations return errors and leave the snapshot alone.
*/
func TestCatalog_MutationFailure(t *testing.T) {
	ctx := context.Background()
	catalog := newHarness().catalog()
	a, _, s := seed(t, catalog)
	before := catalog.Stories()

	tests := []struct {
		name string
		run  func() error
		code string
	}{
		{"duplicate_slug", func() error {
			_, err := catalog.CreateStory(ctx, story.NewStory{Title: "আমার গল্প", AuthorID: a.ID})
			return err
		}, apperr.CodeConflict},
		{"missing_title", func() error {
			_, err := catalog.CreateStory(ctx, story.NewStory{AuthorID: a.ID})
			return err
		}, apperr.CodeValidation},
		{"unknown_story", func() error {
			_, err := catalog.UpdateStory(ctx, "missing", story.Patch{Title: pointer.To("x")})
			return err
		}, apperr.CodeNotFound},
		{"duplicate_part_number", func() error {
			_, err := catalog.CreatePart(ctx, s.ID, story.PartDraft{PartNumber: 1, Title: "x", Content: "y"})
			return err
		}, apperr.CodeConflict},
		{"duplicate_username", func() error {
			_, err := catalog.CreateAuthor(ctx, author.Input{Username: "nusrat", DisplayName: "x"})
			return err
		}, apperr.CodeConflict},
		{"unknown_category", func() error {
			return catalog.DeleteCategory(ctx, "missing")
		}, apperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, tt.code), "got %v", err)
			assert.Equal(t, before, catalog.Stories())
		})
	}
}

/*
TestCatalog_RelatedCollectionsRefresh verifies author and category mutations reach embedded copies.
*/
func TestCatalog_RelatedCollectionsRefresh(t *testing.T) {
	ctx := context.Background()
	catalog := newHarness().catalog()
	a, c, s := seed(t, catalog)

	_, err := catalog.UpdateCategory(ctx, c.ID, category.Patch{Name: pointer.To("থ্রিলার")})
	require.NoError(t, err)
	found, _ := catalog.StoryBySlug(s.Slug)
	assert.Equal(t, []string{"থ্রিলার"}, category.Names(found.Categories))

	_, err = catalog.UpdateAuthor(ctx, a.ID, author.Patch{DisplayName: pointer.To("নুসরাত")})
	require.NoError(t, err)
	found, _ = catalog.StoryBySlug(s.Slug)
	assert.Equal(t, "নুসরাত", found.Author.DisplayName)

	require.NoError(t, catalog.DeleteAuthor(ctx, a.ID))
	_, ok := catalog.StoryBySlug(s.Slug)
	assert.False(t, ok)
	assert.Empty(t, catalog.Authors())
}

/*
TestCatalog_Loading verifies the loading flag before and after the first refresh.
*/
func TestCatalog_Loading(t *testing.T) {
	catalog := newHarness().catalog()
	assert.True(t, catalog.Loading())

	require.NoError(t, catalog.Refresh(context.Background()))
	assert.False(t, catalog.Loading())
	assert.NotNil(t, catalog.Stories())
}

/*
TestCatalog_RecordView verifies increments land in the store and Close waits for them.
*/
func TestCatalog_RecordView(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	catalog := newHarness().catalog()
	_, _, s := seed(t, catalog)

	request, cancel := context.WithCancel(ctx)
	catalog.RecordView(request, s.ID, s.Parts[0].ID)
	cancel()
	catalog.Close()

	require.NoError(t, catalog.RefreshStories(ctx))
	found, _ := catalog.StoryBySlug(s.Slug)
	assert.Equal(t, int64(1), found.Views)
	assert.Equal(t, int64(1), found.Parts[0].Views)

	catalog.RecordView(ctx, s.ID, "")
	require.NoError(t, catalog.RefreshStories(ctx))
	found, _ = catalog.StoryBySlug(s.Slug)
	assert.Equal(t, int64(1), found.Views, "closed catalog ignores new views")
}

/*
TestCatalog_RecordViewFailureIsSwallowed verifies increment errors never surface.
*/
func TestCatalog_RecordViewFailureIsSwallowed(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness()
	catalog := h.catalog()
	_, _, s := seed(t, catalog)

	h.stories.failViews.Store(true)
	catalog.RecordView(context.Background(), s.ID, "")
	catalog.Close()

	assert.NoError(t, catalog.Err())
}

/*
TestCatalog_Run_PropagatesChanges verifies a mutation on one instance refreshes another.
*/
func TestCatalog_Run_PropagatesChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness()
	notifier := content.NewMemoryNotifier()
	writer := h.catalog(content.WithNotifier(notifier))
	reader := h.catalog(content.WithNotifier(notifier))
	require.NoError(t, reader.Refresh(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- reader.Run(ctx, time.Hour) }()

	require.Eventually(t, func() bool { return notifier.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	seed(t, writer)

	_, ok := reader.StoryBySlug("আমার-গল্প")
	assert.True(t, ok)
	assert.Len(t, reader.Authors(), 1)
	assert.Len(t, reader.Categories(), 1)

	cancel()
	require.NoError(t, <-done)
}

/*
TestCatalog_Run_PeriodicRefresh verifies writes made outside the catalog appear after a tick.
*/
func TestCatalog_Run_PeriodicRefresh(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness()
	catalog := h.catalog()
	require.NoError(t, catalog.Refresh(context.Background()))

	_, err := h.categories.Create(context.Background(), "প্রেম")
	require.NoError(t, err)
	assert.Empty(t, catalog.Categories())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- catalog.Run(ctx, 10*time.Millisecond) }()

	require.Eventually(t, func() bool { return len(catalog.Categories()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

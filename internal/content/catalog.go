// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package content holds the in-memory catalog every page reads from.

# Architecture

The [Catalog] keeps a snapshot of all stories, authors and categories. It is
not a source of truth: after every admin mutation the affected collections are
re-fetched in full from the store and swapped in whole. There is no optimistic
patching and no request queueing; when two mutations race, the refresh that
lands last wins.

Reads are linear scans over the snapshot. At the scale of one editorial team
that is cheaper than keeping indexes consistent.

Other API instances learn about mutations through a [Notifier] and refresh
themselves; a periodic refresh catches writes made outside the API.
*/
package content

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/pkg/uuid"
)

// # Store Contracts

// StoryStore is the story service as seen by the catalog.
type StoryStore interface {
	List(context context.Context) ([]story.Story, error)
	CreateStory(context context.Context, input story.NewStory) (*story.Story, error)
	UpdateStory(context context.Context, id string, patch story.Patch) (*story.Story, error)
	DeleteStory(context context.Context, id string) error
	CreatePart(context context.Context, storyID string, draft story.PartDraft) (*story.Part, error)
	UpdatePart(context context.Context, id string, patch story.PartPatch) (*story.Part, error)
	DeletePart(context context.Context, id string) error
	IncrementViews(context context.Context, storyID, partID string) error
}

// AuthorStore is the author service as seen by the catalog.
type AuthorStore interface {
	List(context context.Context) ([]author.Author, error)
	Create(context context.Context, input author.Input) (*author.Author, error)
	Update(context context.Context, id string, patch author.Patch) (*author.Author, error)
	Delete(context context.Context, id string) error
}

// CategoryStore is the category service as seen by the catalog.
type CategoryStore interface {
	List(context context.Context) ([]category.Category, error)
	Create(context context.Context, name string) (*category.Category, error)
	Update(context context.Context, id string, patch category.Patch) (*category.Category, error)
	Delete(context context.Context, id string) error
}

// Collection names one of the three cached collections.
type Collection string

const (
	Stories    Collection = "stories"
	Authors    Collection = "authors"
	Categories Collection = "categories"
)

// # Catalog

type snapshot struct {
	stories    []story.Story
	authors    []author.Author
	categories []category.Category
}

// Catalog is the process-wide content cache.
//
// Slices returned by accessors are shared with the snapshot and must not be
// modified. A refresh replaces them rather than writing into them.
type Catalog struct {
	stories    StoryStore
	authors    AuthorStore
	categories CategoryStore
	notifier   Notifier
	logger     *slog.Logger

	// instanceID tags published changes so an instance ignores its own.
	instanceID string

	mu     sync.RWMutex
	snap   snapshot
	errs   map[Collection]error
	loaded bool

	inflight atomic.Int32

	viewsMu sync.Mutex
	views   sync.WaitGroup
	closed  bool
}

// Option configures a [Catalog].
type Option func(*Catalog)

// WithNotifier sets the cross-instance change notifier.
func WithNotifier(notifier Notifier) Option {
	return func(c *Catalog) { c.notifier = notifier }
}

// NewCatalog creates an empty catalog. Call [Catalog.Refresh] before serving.
func NewCatalog(stories StoryStore, authors AuthorStore, categories CategoryStore, logger *slog.Logger, opts ...Option) *Catalog {
	c := &Catalog{
		stories:    stories,
		authors:    authors,
		categories: categories,
		notifier:   NopNotifier{},
		logger:     logger,
		instanceID: uuid.New(),
		errs:       make(map[Collection]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// # Refresh

/*
Refresh re-fetches all three collections concurrently.

Description: Each collection is replaced independently; a failure of one
leaves its previous contents in place and is reported by [Catalog.Err]. The
other collections still refresh.

Parameters:
  - context: context.Context

Returns:
  - error: The first collection error, if any
*/
func (c *Catalog) Refresh(context context.Context) error {
	defer c.markLoaded()

	var group errgroup.Group
	group.Go(func() error { return c.RefreshStories(context) })
	group.Go(func() error { return c.RefreshAuthors(context) })
	group.Go(func() error { return c.RefreshCategories(context) })
	return group.Wait()
}

// RefreshStories replaces the story collection.
func (c *Catalog) RefreshStories(context context.Context) error {
	return refresh(c, context, Stories, c.stories.List, func(s *snapshot, items []story.Story) {
		s.stories = items
	})
}

// RefreshAuthors replaces the author collection.
func (c *Catalog) RefreshAuthors(context context.Context) error {
	return refresh(c, context, Authors, c.authors.List, func(s *snapshot, items []author.Author) {
		s.authors = items
	})
}

// RefreshCategories replaces the category collection.
func (c *Catalog) RefreshCategories(context context.Context) error {
	return refresh(c, context, Categories, c.categories.List, func(s *snapshot, items []category.Category) {
		s.categories = items
	})
}

func refresh[T any](
	c *Catalog,
	ctx context.Context,
	name Collection,
	list func(context.Context) ([]T, error),
	assign func(*snapshot, []T),
) error {
	c.inflight.Add(1)
	defer c.inflight.Add(-1)

	start := time.Now()
	items, err := list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.errs[name] = err
		c.logger.Warn("catalog_refresh_failed",
			slog.String("collection", string(name)),
			slog.Any("error", err),
		)
		return err
	}

	if items == nil {
		items = []T{}
	}
	assign(&c.snap, items)
	delete(c.errs, name)

	c.logger.Debug("catalog_refreshed",
		slog.String("collection", string(name)),
		slog.Int("count", len(items)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// refreshAll refreshes each named collection, logging rather than returning failures.
// The mutation that triggered it already succeeded.
func (c *Catalog) refreshAll(context context.Context, collections ...Collection) {
	var group errgroup.Group
	for _, name := range collections {
		switch name {
		case Stories:
			group.Go(func() error { return c.RefreshStories(context) })
		case Authors:
			group.Go(func() error { return c.RefreshAuthors(context) })
		case Categories:
			group.Go(func() error { return c.RefreshCategories(context) })
		}
	}
	_ = group.Wait()
}

func (c *Catalog) markLoaded() {
	c.mu.Lock()
	c.loaded = true
	c.mu.Unlock()
}

// # State

// Loading reports whether a refresh is in flight or the first one has not finished.
func (c *Catalog) Loading() bool {
	if c.inflight.Load() > 0 {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.loaded
}

// Err returns the errors of the collections whose last refresh failed, or nil.
func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var errs []error
	for _, name := range []Collection{Stories, Authors, Categories} {
		if err := c.errs[name]; err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// # Background Sync

/*
Run keeps the catalog fresh until context is cancelled.

Description: It refreshes every interval and whenever another instance
publishes a change. A subscription failure is logged and the periodic refresh
keeps running.

Parameters:
  - context: context.Context
  - interval: time.Duration

Returns:
  - error: nil after cancellation
*/
func (c *Catalog) Run(context context.Context, interval time.Duration) error {
	var group errgroup.Group

	group.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-context.Done():
				return nil
			case <-ticker.C:
				_ = c.Refresh(context)
			}
		}
	})

	group.Go(func() error {
		err := c.notifier.Subscribe(context, func(change Change) {
			if change.Origin == c.instanceID {
				return
			}
			c.logger.Debug("catalog_change_received",
				slog.String("origin", change.Origin),
				slog.Any("collections", change.Collections),
			)
			c.refreshAll(context, change.Collections...)
		})
		if err != nil {
			c.logger.Error("catalog_subscription_failed", slog.Any("error", err))
		}
		return nil
	})

	return group.Wait()
}

// publish tells other instances which collections changed.
func (c *Catalog) publish(context context.Context, collections ...Collection) {
	change := Change{Origin: c.instanceID, Collections: collections}
	if err := c.notifier.Publish(context, change); err != nil {
		c.logger.Warn("catalog_publish_failed", slog.Any("error", err))
	}
}

// afterMutation refreshes locally and notifies other instances.
func (c *Catalog) afterMutation(context context.Context, collections ...Collection) {
	c.refreshAll(context, collections...)
	c.publish(context, collections...)
}

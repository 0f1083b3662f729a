// Copyright (c) 2026 GolpoHub. All rights reserved.

package story

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/platform/apperr"
)

// AuthorLookup resolves an author by ID for hydration.
type AuthorLookup interface {
	Get(id string) (author.Author, bool)
}

// CategoryLookup lists categories for hydration and link checks.
type CategoryLookup interface {
	List(context context.Context) ([]category.Category, error)
}

// MemoryRepository is an in-process [Repository] used by tests and local runs
// without a database.
//
// It mirrors the table constraints that matter to callers: unique slugs,
// unique part numbers per story, foreign keys to authors and categories, and
// cascading deletes. Stories whose author has been removed are hidden, which
// is what the store's ON DELETE CASCADE produces.
type MemoryRepository struct {
	mu         sync.Mutex
	seq        int
	stories    map[string]memoryStory
	links      map[string][]string
	parts      map[string]Part
	authors    AuthorLookup
	categories CategoryLookup
}

type memoryStory struct {
	Story
	seq int
}

// NewMemoryRepository returns an empty [MemoryRepository] that hydrates from
// the given author and category stores.
func NewMemoryRepository(authors AuthorLookup, categories CategoryLookup) *MemoryRepository {
	return &MemoryRepository{
		stories:    make(map[string]memoryStory),
		links:      make(map[string][]string),
		parts:      make(map[string]Part),
		authors:    authors,
		categories: categories,
	}
}

func (repository *MemoryRepository) List(context context.Context) ([]Story, error) {
	allCategories, err := repository.categories.List(context)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]category.Category, len(allCategories))
	for _, c := range allCategories {
		byID[c.ID] = c
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	entries := make([]memoryStory, 0, len(repository.stories))
	for _, entry := range repository.stories {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b memoryStory) int { return b.seq - a.seq })

	stories := make([]Story, 0, len(entries))
	for _, entry := range entries {
		owner, ok := repository.authors.Get(entry.AuthorID)
		if !ok {
			continue
		}

		s := entry.Story
		s.Author = &owner
		s.Categories = []category.Category{}
		for _, categoryID := range repository.links[s.ID] {
			if c, ok := byID[categoryID]; ok {
				s.Categories = append(s.Categories, c)
			}
		}

		s.Parts = []Part{}
		for _, p := range repository.parts {
			if p.StoryID == s.ID {
				s.Parts = append(s.Parts, p)
			}
		}
		SortParts(s.Parts)

		stories = append(stories, s)
	}
	return stories, nil
}

func (repository *MemoryRepository) Create(_ context.Context, s *Story) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.slugTaken(s.Slug, "") {
		return apperr.Conflict(resource + " already exists")
	}
	if _, ok := repository.authors.Get(s.AuthorID); !ok {
		return apperr.Unprocessable(resource + " references a missing record")
	}

	now := time.Now()
	s.PublishedDate, s.CreatedAt, s.UpdatedAt = now, now, now
	s.Categories, s.Parts = nil, nil

	repository.seq++
	repository.stories[s.ID] = memoryStory{Story: *s, seq: repository.seq}
	return nil
}

func (repository *MemoryRepository) LinkCategories(context context.Context, storyID string, categoryIDs []string) error {
	known, err := repository.categoryIDs(context)
	if err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.stories[storyID]; !ok {
		return apperr.Unprocessable("Story category references a missing record")
	}
	for _, categoryID := range categoryIDs {
		if !known[categoryID] {
			return apperr.Unprocessable("Story category references a missing record")
		}
	}

	for _, categoryID := range categoryIDs {
		if !slices.Contains(repository.links[storyID], categoryID) {
			repository.links[storyID] = append(repository.links[storyID], categoryID)
		}
	}
	return nil
}

func (repository *MemoryRepository) CreateParts(_ context.Context, parts []Part) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	// Validate the whole batch first so a failure leaves nothing behind.
	seen := make(map[int]bool, len(parts))
	for _, p := range parts {
		if err := repository.checkPart(p, ""); err != nil {
			return err
		}
		if seen[p.PartNumber] {
			return apperr.Conflict(partResource + " already exists")
		}
		seen[p.PartNumber] = true
	}

	for _, p := range parts {
		repository.insertPart(&p)
	}
	return nil
}

func (repository *MemoryRepository) Update(context context.Context, id string, patch Patch) (*Story, error) {
	var known map[string]bool
	if patch.CategoryIDs != nil {
		var err error
		if known, err = repository.categoryIDs(context); err != nil {
			return nil, err
		}
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	entry, ok := repository.stories[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}

	if patch.Slug != nil && repository.slugTaken(*patch.Slug, id) {
		return nil, apperr.Conflict(resource + " already exists")
	}
	if patch.AuthorID != nil {
		if _, ok := repository.authors.Get(*patch.AuthorID); !ok {
			return nil, apperr.Unprocessable(resource + " references a missing record")
		}
	}
	if patch.CategoryIDs != nil {
		for _, categoryID := range *patch.CategoryIDs {
			if !known[categoryID] {
				return nil, apperr.Unprocessable("Story category references a missing record")
			}
		}
	}

	if patch.Title != nil {
		entry.Title = *patch.Title
	}
	if patch.Slug != nil {
		entry.Slug = *patch.Slug
	}
	if patch.AuthorID != nil {
		entry.AuthorID = *patch.AuthorID
	}
	if patch.CoverImage != nil {
		entry.CoverImage = patch.CoverImage
	}
	if patch.IsFeatured != nil {
		entry.IsFeatured = *patch.IsFeatured
	}
	if patch.CategoryIDs != nil {
		repository.links[id] = slices.Clone(*patch.CategoryIDs)
	}
	entry.UpdatedAt = time.Now()

	repository.stories[id] = entry
	updated := entry.Story
	return &updated, nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.stories[id]; !ok {
		return apperr.NotFound(resource)
	}

	delete(repository.stories, id)
	delete(repository.links, id)
	for partID, p := range repository.parts {
		if p.StoryID == id {
			delete(repository.parts, partID)
		}
	}
	return nil
}

func (repository *MemoryRepository) CreatePart(_ context.Context, part *Part) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if err := repository.checkPart(*part, ""); err != nil {
		return err
	}

	repository.insertPart(part)
	return nil
}

func (repository *MemoryRepository) UpdatePart(_ context.Context, id string, patch PartPatch) (*Part, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, ok := repository.parts[id]
	if !ok {
		return nil, apperr.NotFound(partResource)
	}

	if patch.PartNumber != nil {
		candidate := current
		candidate.PartNumber = *patch.PartNumber
		if err := repository.checkPart(candidate, id); err != nil {
			return nil, err
		}
		current.PartNumber = *patch.PartNumber
	}
	if patch.Title != nil {
		current.Title = *patch.Title
	}
	if patch.Content != nil {
		current.Content = *patch.Content
	}
	current.UpdatedAt = time.Now()

	repository.parts[id] = current
	return &current, nil
}

func (repository *MemoryRepository) DeletePart(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.parts[id]; !ok {
		return apperr.NotFound(partResource)
	}
	delete(repository.parts, id)
	return nil
}

func (repository *MemoryRepository) IncrementStoryViews(_ context.Context, storyID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	// The procedure is a plain UPDATE; unknown IDs are a silent no-op.
	if entry, ok := repository.stories[storyID]; ok {
		entry.Views++
		repository.stories[storyID] = entry
	}
	return nil
}

func (repository *MemoryRepository) IncrementPartViews(_ context.Context, partID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if p, ok := repository.parts[partID]; ok {
		p.Views++
		repository.parts[partID] = p
	}
	return nil
}

// checkPart enforces the foreign key, the positive number and the
// (story_id, part_number) uniqueness. Caller holds mu.
func (repository *MemoryRepository) checkPart(p Part, exceptID string) error {
	if _, ok := repository.stories[p.StoryID]; !ok {
		return apperr.Unprocessable(partResource + " references a missing record")
	}
	if p.PartNumber < 1 {
		return apperr.Unprocessable(partResource + " is missing a required value")
	}
	for id, existing := range repository.parts {
		if id != exceptID && existing.StoryID == p.StoryID && existing.PartNumber == p.PartNumber {
			return apperr.Conflict(partResource + " already exists")
		}
	}
	return nil
}

// insertPart stamps timestamps and stores p. Caller holds mu.
func (repository *MemoryRepository) insertPart(p *Part) {
	now := time.Now()
	p.PublishedDate, p.CreatedAt, p.UpdatedAt = now, now, now
	repository.parts[p.ID] = *p
}

// slugTaken reports whether another story already uses slug. Caller holds mu.
func (repository *MemoryRepository) slugTaken(slug, exceptID string) bool {
	for id, entry := range repository.stories {
		if id != exceptID && entry.Slug == slug {
			return true
		}
	}
	return false
}

func (repository *MemoryRepository) categoryIDs(context context.Context) (map[string]bool, error) {
	categories, err := repository.categories.List(context)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	return known, nil
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package author

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/golpohub/golpohub/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository] used by tests and local runs
// without a database. Usernames are unique, as in the table.
type MemoryRepository struct {
	mu    sync.Mutex
	seq   int
	items map[string]memoryAuthor
}

type memoryAuthor struct {
	Author
	seq int
}

// NewMemoryRepository returns an empty [MemoryRepository].
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]memoryAuthor)}
}

func (repository *MemoryRepository) List(_ context.Context) ([]Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	entries := make([]memoryAuthor, 0, len(repository.items))
	for _, entry := range repository.items {
		entries = append(entries, entry)
	}

	// Insertion order stands in for created_at, which can tie within a clock tick.
	slices.SortFunc(entries, func(a, b memoryAuthor) int { return b.seq - a.seq })

	authors := make([]Author, len(entries))
	for i, entry := range entries {
		authors[i] = entry.Author
	}
	return authors, nil
}

func (repository *MemoryRepository) Create(_ context.Context, a *Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.usernameTaken(a.Username, "") {
		return apperr.Conflict(resource + " already exists")
	}

	now := time.Now()
	a.JoinedDate, a.CreatedAt, a.UpdatedAt = now, now, now

	repository.seq++
	repository.items[a.ID] = memoryAuthor{Author: *a, seq: repository.seq}
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, id string, patch Patch) (*Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	entry, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}

	if patch.Username != nil {
		if repository.usernameTaken(*patch.Username, id) {
			return nil, apperr.Conflict(resource + " already exists")
		}
		entry.Username = *patch.Username
	}
	if patch.DisplayName != nil {
		entry.DisplayName = *patch.DisplayName
	}
	if patch.Bio != nil {
		entry.Bio = patch.Bio
	}
	if patch.Avatar != nil {
		entry.Avatar = patch.Avatar
	}
	entry.UpdatedAt = time.Now()

	repository.items[id] = entry
	updated := entry.Author
	return &updated, nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound(resource)
	}
	delete(repository.items, id)
	return nil
}

// Get returns the stored author with id.
func (repository *MemoryRepository) Get(id string) (Author, bool) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	entry, ok := repository.items[id]
	return entry.Author, ok
}

func (repository *MemoryRepository) usernameTaken(username, exceptID string) bool {
	for id, entry := range repository.items {
		if id != exceptID && entry.Username == username {
			return true
		}
	}
	return false
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package category

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/golpohub/golpohub/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository] used by tests and local runs
// without a database. It enforces the same uniqueness rule as the table.
type MemoryRepository struct {
	mu    sync.Mutex
	items map[string]Category
}

// NewMemoryRepository returns an empty [MemoryRepository].
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]Category)}
}

func (repository *MemoryRepository) List(_ context.Context) ([]Category, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	categories := make([]Category, 0, len(repository.items))
	for _, c := range repository.items {
		categories = append(categories, c)
	}
	slices.SortFunc(categories, func(a, b Category) int { return strings.Compare(a.Name, b.Name) })
	return categories, nil
}

func (repository *MemoryRepository) Create(_ context.Context, category *Category) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.nameTaken(category.Name, "") {
		return apperr.Conflict(resource + " already exists")
	}

	category.CreatedAt = time.Now()
	repository.items[category.ID] = *category
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, id string, patch Patch) (*Category, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}

	if patch.Name != nil {
		if repository.nameTaken(*patch.Name, id) {
			return nil, apperr.Conflict(resource + " already exists")
		}
		current.Name = *patch.Name
	}

	repository.items[id] = current
	return &current, nil
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

// Exists reports whether a category with id is stored.
func (repository *MemoryRepository) Exists(id string) bool {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	_, ok := repository.items[id]
	return ok
}

func (repository *MemoryRepository) nameTaken(name, exceptID string) bool {
	for id, c := range repository.items {
		if id != exceptID && c.Name == name {
			return true
		}
	}
	return false
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package story

import "context"

// Repository is the storage contract for stories and parts.
type Repository interface {
	// List returns every story, newest first, with author, categories and
	// parts (ordered by PartNumber) attached.
	List(context context.Context) ([]Story, error)

	// Create inserts the story row only; relations are added separately.
	Create(context context.Context, story *Story) error
	LinkCategories(context context.Context, storyID string, categoryIDs []string) error
	CreateParts(context context.Context, parts []Part) error
	Update(context context.Context, id string, patch Patch) (*Story, error)
	// Delete removes the story together with its links and parts.
	Delete(context context.Context, id string) error

	CreatePart(context context.Context, part *Part) error
	UpdatePart(context context.Context, id string, patch PartPatch) (*Part, error)
	DeletePart(context context.Context, id string) error

	IncrementStoryViews(context context.Context, storyID string) error
	IncrementPartViews(context context.Context, partID string) error
}

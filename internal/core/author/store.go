// Copyright (c) 2026 GolpoHub. All rights reserved.

package author

import "context"

// Repository is the storage contract for authors.
type Repository interface {
	// List returns every author, newest first.
	List(context context.Context) ([]Author, error)
	Create(context context.Context, author *Author) error
	Update(context context.Context, id string, patch Patch) (*Author, error)
	// Delete removes the author; the store cascades to their stories.
	Delete(context context.Context, id string) error
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package category

import "context"

// Repository is the storage contract for categories.
type Repository interface {
	// List returns every category ordered by name.
	List(context context.Context) ([]Category, error)
	Create(context context.Context, category *Category) error
	Update(context context.Context, id string, patch Patch) (*Category, error)
	Delete(context context.Context, id string) error
}

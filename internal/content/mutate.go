// Copyright (c) 2026 GolpoHub. All rights reserved.

package content

import (
	"context"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
)

// Mutators follow one contract: on success the affected collections are
// re-fetched and the record is returned; on failure the error is returned and
// the snapshot is untouched. Nothing is retried.

// # Authors

/*
CreateAuthor inserts an author and refreshes the author list.

Parameters:
  - context: context.Context
  - input: author.Input (username and display name required)

Returns:
  - *author.Author: The stored record
  - error: VALIDATION_ERROR, CONFLICT when the username is taken, or a store failure
*/
func (c *Catalog) CreateAuthor(context context.Context, input author.Input) (*author.Author, error) {
	created, err := c.authors.Create(context, input)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Authors)
	return created, nil
}

// UpdateAuthor also refreshes stories, which embed their author.
func (c *Catalog) UpdateAuthor(context context.Context, id string, patch author.Patch) (*author.Author, error) {
	updated, err := c.authors.Update(context, id, patch)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Authors, Stories)
	return updated, nil
}

// DeleteAuthor also refreshes stories; the store cascades the author's stories.
func (c *Catalog) DeleteAuthor(context context.Context, id string) error {
	if err := c.authors.Delete(context, id); err != nil {
		return err
	}
	c.afterMutation(context, Authors, Stories)
	return nil
}

// # Categories

// CreateCategory inserts a category by name; duplicate names are a CONFLICT.
func (c *Catalog) CreateCategory(context context.Context, name string) (*category.Category, error) {
	created, err := c.categories.Create(context, name)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Categories)
	return created, nil
}

// UpdateCategory renames a category and refreshes stories, which list their
// category names.
func (c *Catalog) UpdateCategory(context context.Context, id string, patch category.Patch) (*category.Category, error) {
	updated, err := c.categories.Update(context, id, patch)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Categories, Stories)
	return updated, nil
}

// DeleteCategory removes a category and its story links.
func (c *Catalog) DeleteCategory(context context.Context, id string) error {
	if err := c.categories.Delete(context, id); err != nil {
		return err
	}
	c.afterMutation(context, Categories, Stories)
	return nil
}

// # Stories

// CreateStory runs the composite creation and returns the hydrated story.
func (c *Catalog) CreateStory(context context.Context, input story.NewStory) (*story.Story, error) {
	created, err := c.stories.CreateStory(context, input)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Stories)
	return c.hydrated(created), nil
}

/*
UpdateStory applies a partial patch to a story.

Description: Nil patch fields are left unchanged. A non-nil CategoryIDs
replaces the story's category links.

Returns:
  - *story.Story: The refreshed story, parts and categories included
  - error: NOT_FOUND, VALIDATION_ERROR, CONFLICT (slug taken) or a store failure
*/
func (c *Catalog) UpdateStory(context context.Context, id string, patch story.Patch) (*story.Story, error) {
	updated, err := c.stories.UpdateStory(context, id, patch)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Stories)
	return c.hydrated(updated), nil
}

// DeleteStory removes a story; its parts and category links go with it.
func (c *Catalog) DeleteStory(context context.Context, id string) error {
	if err := c.stories.DeleteStory(context, id); err != nil {
		return err
	}
	c.afterMutation(context, Stories)
	return nil
}

// # Parts

/*
CreatePart appends a part to the story identified by storyID.

Returns:
  - *story.Part: The stored part
  - error: VALIDATION_ERROR, UNPROCESSABLE for an unknown story, CONFLICT when the part number is taken
*/
func (c *Catalog) CreatePart(context context.Context, storyID string, draft story.PartDraft) (*story.Part, error) {
	created, err := c.stories.CreatePart(context, storyID, draft)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Stories)
	return created, nil
}

// UpdatePart applies a partial patch to a single part.
func (c *Catalog) UpdatePart(context context.Context, id string, patch story.PartPatch) (*story.Part, error) {
	updated, err := c.stories.UpdatePart(context, id, patch)
	if err != nil {
		return nil, err
	}
	c.afterMutation(context, Stories)
	return updated, nil
}

// DeletePart removes one part. Deleting the last part leaves a story with no
// readable parts.
func (c *Catalog) DeletePart(context context.Context, id string) error {
	if err := c.stories.DeletePart(context, id); err != nil {
		return err
	}
	c.afterMutation(context, Stories)
	return nil
}

// hydrated swaps a bare story row for its refreshed snapshot entry when one exists.
func (c *Catalog) hydrated(row *story.Story) *story.Story {
	if full, ok := c.StoryByID(row.ID); ok {
		return &full
	}
	return row
}

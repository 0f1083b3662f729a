// Copyright (c) 2026 GolpoHub. All rights reserved.

package content

import (
	"context"
	"log/slog"

	"github.com/golpohub/golpohub/internal/platform/constants"
)

/*
RecordView bumps the story and part view counters in the background.

Description: The increment runs on its own goroutine with a context that
survives the request but carries its values, bounded by
[constants.ViewIncrementTimeout]. Failures are logged at WARN and never
reach the reader. The snapshot is not refreshed; new counts appear with the
next refresh. After [Catalog.Close] it does nothing.

Parameters:
  - ctx: context.Context (request context, for logger values)
  - storyID: string
  - partID: string (may be empty)
*/
func (c *Catalog) RecordView(ctx context.Context, storyID, partID string) {
	c.viewsMu.Lock()
	if c.closed {
		c.viewsMu.Unlock()
		return
	}
	c.views.Add(1)
	c.viewsMu.Unlock()

	detached := context.WithoutCancel(ctx)

	go func() {
		defer c.views.Done()

		incrementCtx, cancel := context.WithTimeout(detached, constants.ViewIncrementTimeout)
		defer cancel()

		if err := c.stories.IncrementViews(incrementCtx, storyID, partID); err != nil {
			c.logger.Warn("view_increment_failed",
				slog.String("story_id", storyID),
				slog.String("part_id", partID),
				slog.Any("error", err),
			)
		}
	}()
}

// Close stops accepting view increments and waits for in-flight ones.
func (c *Catalog) Close() {
	c.viewsMu.Lock()
	c.closed = true
	c.viewsMu.Unlock()

	c.views.Wait()
}

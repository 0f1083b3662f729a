// Copyright (c) 2026 GolpoHub. All rights reserved.

package story

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golpohub/golpohub/internal/platform/validate"
	"github.com/golpohub/golpohub/pkg/pointer"
	"github.com/golpohub/golpohub/pkg/slug"
	"github.com/golpohub/golpohub/pkg/uuid"
)

// Length limits for the admin story form.
const (
	maxTitleLen = 300
	maxSlugLen  = 300
)

// Service validates story mutations and runs the composite creation flow.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]Story, error) {
	return service.repo.List(context)
}

/*
CreateStory inserts a story, links its categories and inserts its parts.

Description: The three writes are separate store calls. When linking or part
insertion fails, the story row is deleted again (links and parts cascade) so
no half-built story becomes visible, and the original error is returned. A
failed compensation is logged; the original error still wins.

Parts are numbered 1..n in submission order. An empty slug is derived from
the title.

Parameters:
  - context: context.Context
  - input: NewStory

Returns:
  - *Story: The inserted story row
  - error: VALIDATION_ERROR, CONFLICT (duplicate slug) or storage errors
*/
func (service *Service) CreateStory(context context.Context, input NewStory) (*Story, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug == "" {
		input.Slug = slug.From(input.Title)
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, maxTitleLen).
		Required(FieldAuthorID, input.AuthorID).
		OptionalURL(FieldCoverImage, input.CoverImage)
	validateSlug(validator, input.Slug)
	for i, draft := range input.Parts {
		field := fmt.Sprintf("%s[%d]", FieldParts, i)
		validator.
			Required(field+"."+FieldTitle, draft.Title).
			Required(field+"."+FieldContent, draft.Content)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	story := &Story{
		ID:         uuid.New(),
		Title:      input.Title,
		Slug:       input.Slug,
		AuthorID:   input.AuthorID,
		CoverImage: pointer.NilIfEmpty(pointer.Val(input.CoverImage)),
		IsFeatured: input.IsFeatured,
	}

	if err := service.repo.Create(context, story); err != nil {
		return nil, err
	}

	if err := service.attachRelations(context, story.ID, input); err != nil {
		service.compensate(context, story.ID, err)
		return nil, err
	}

	service.logger.Info("story_created",
		slog.String("story_id", story.ID),
		slog.String("slug", story.Slug),
		slog.Int("parts", len(input.Parts)),
		slog.Int("categories", len(input.CategoryIDs)),
	)
	return story, nil
}

// attachRelations runs steps two and three of [Service.CreateStory].
func (service *Service) attachRelations(context context.Context, storyID string, input NewStory) error {
	if len(input.CategoryIDs) > 0 {
		if err := service.repo.LinkCategories(context, storyID, input.CategoryIDs); err != nil {
			return err
		}
	}

	if len(input.Parts) == 0 {
		return nil
	}

	parts := make([]Part, len(input.Parts))
	for i, draft := range input.Parts {
		parts[i] = Part{
			ID:         uuid.New(),
			StoryID:    storyID,
			PartNumber: i + 1,
			Title:      strings.TrimSpace(draft.Title),
			Content:    draft.Content,
		}
	}
	return service.repo.CreateParts(context, parts)
}

// compensate removes a partially created story.
//
// It runs on a context detached from the caller's cancellation so a client
// disconnect cannot leave the orphan behind.
func (service *Service) compensate(ctx context.Context, storyID string, cause error) {
	if err := service.repo.Delete(context.WithoutCancel(ctx), storyID); err != nil {
		service.logger.Error("story_create_compensation_failed",
			slog.String("story_id", storyID),
			slog.Any("cause", cause),
			slog.Any("error", err),
		)
		return
	}

	service.logger.Warn("story_create_rolled_back",
		slog.String("story_id", storyID),
		slog.Any("cause", cause),
	)
}

func (service *Service) UpdateStory(context context.Context, id string, patch Patch) (*Story, error) {
	validator := &validate.Validator{}

	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
		validator.Required(FieldTitle, trimmed).MaxLen(FieldTitle, trimmed, maxTitleLen)
	}
	if patch.Slug != nil {
		trimmed := strings.TrimSpace(*patch.Slug)
		patch.Slug = &trimmed
		validateSlug(validator, trimmed)
	}
	if patch.AuthorID != nil {
		validator.Required(FieldAuthorID, *patch.AuthorID)
	}
	validator.OptionalURL(FieldCoverImage, patch.CoverImage)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	story, err := service.repo.Update(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("story_updated", slog.String("story_id", id))
	return story, nil
}

func (service *Service) DeleteStory(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("story_deleted", slog.String("story_id", id))
	return nil
}

// # Parts

func (service *Service) CreatePart(context context.Context, storyID string, draft PartDraft) (*Part, error) {
	draft.Title = strings.TrimSpace(draft.Title)

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, draft.Title).
		MaxLen(FieldTitle, draft.Title, maxTitleLen).
		Required(FieldContent, draft.Content).
		Positive(FieldPartNumber, draft.PartNumber)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	part := &Part{
		ID:         uuid.New(),
		StoryID:    storyID,
		PartNumber: draft.PartNumber,
		Title:      draft.Title,
		Content:    draft.Content,
	}

	if err := service.repo.CreatePart(context, part); err != nil {
		return nil, err
	}

	service.logger.Info("story_part_created",
		slog.String("story_id", storyID),
		slog.String("part_id", part.ID),
		slog.Int("part_number", part.PartNumber),
	)
	return part, nil
}

func (service *Service) UpdatePart(context context.Context, id string, patch PartPatch) (*Part, error) {
	validator := &validate.Validator{}

	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
		validator.Required(FieldTitle, trimmed).MaxLen(FieldTitle, trimmed, maxTitleLen)
	}
	if patch.Content != nil {
		validator.Required(FieldContent, *patch.Content)
	}
	if patch.PartNumber != nil {
		validator.Positive(FieldPartNumber, *patch.PartNumber)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	part, err := service.repo.UpdatePart(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("story_part_updated", slog.String("part_id", id))
	return part, nil
}

func (service *Service) DeletePart(context context.Context, id string) error {
	if err := service.repo.DeletePart(context, id); err != nil {
		return err
	}

	service.logger.Warn("story_part_deleted", slog.String("part_id", id))
	return nil
}

// # Counters

// IncrementViews bumps the story counter and, when partID is set, the part counter.
// Both are attempted; their errors are joined.
func (service *Service) IncrementViews(context context.Context, storyID, partID string) error {
	var errs []error

	if storyID != "" {
		errs = append(errs, service.repo.IncrementStoryViews(context, storyID))
	}
	if partID != "" {
		errs = append(errs, service.repo.IncrementPartViews(context, partID))
	}

	return errors.Join(errs...)
}

// validateSlug applies the required, length and format rules to a slug.
func validateSlug(validator *validate.Validator, value string) {
	validator.Required(FieldSlug, value).MaxLen(FieldSlug, value, maxSlugLen)
	if value != "" {
		validator.Slug(FieldSlug, value)
	}
}

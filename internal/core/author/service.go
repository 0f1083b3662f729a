// Copyright (c) 2026 GolpoHub. All rights reserved.

package author

import (
	"context"
	"log/slog"
	"strings"

	"github.com/golpohub/golpohub/internal/platform/validate"
	"github.com/golpohub/golpohub/pkg/pointer"
	"github.com/golpohub/golpohub/pkg/uuid"
)

// Length limits for the admin author form.
const (
	maxUsernameLen    = 64
	maxDisplayNameLen = 200
	maxBioLen         = 2000
)

// Service validates author mutations before they reach the [Repository].
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

func (service *Service) List(context context.Context) ([]Author, error) {
	return service.repo.List(context)
}

func (service *Service) Create(context context.Context, input Input) (*Author, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, maxUsernameLen).
		Required(FieldDisplayName, input.DisplayName).
		MaxLen(FieldDisplayName, input.DisplayName, maxDisplayNameLen).
		MaxLen(FieldBio, pointer.Val(input.Bio), maxBioLen).
		OptionalURL(FieldAvatar, input.Avatar)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	author := &Author{
		ID:          uuid.New(),
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Bio:         pointer.NilIfEmpty(pointer.Val(input.Bio)),
		Avatar:      pointer.NilIfEmpty(pointer.Val(input.Avatar)),
	}

	if err := service.repo.Create(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created",
		slog.String("author_id", author.ID),
		slog.String("username", author.Username),
	)
	return author, nil
}

func (service *Service) Update(context context.Context, id string, patch Patch) (*Author, error) {
	validator := &validate.Validator{}

	if patch.Username != nil {
		trimmed := strings.TrimSpace(*patch.Username)
		patch.Username = &trimmed
		validator.Required(FieldUsername, trimmed).MaxLen(FieldUsername, trimmed, maxUsernameLen)
	}
	if patch.DisplayName != nil {
		trimmed := strings.TrimSpace(*patch.DisplayName)
		patch.DisplayName = &trimmed
		validator.Required(FieldDisplayName, trimmed).MaxLen(FieldDisplayName, trimmed, maxDisplayNameLen)
	}
	validator.
		MaxLen(FieldBio, pointer.Val(patch.Bio), maxBioLen).
		OptionalURL(FieldAvatar, patch.Avatar)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	author, err := service.repo.Update(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.String("author_id", id))
	return author, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))
	return nil
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/golpohub/golpohub/internal/platform/validate"
	"github.com/golpohub/golpohub/pkg/uuid"
)

// maxNameLen bounds category labels.
const maxNameLen = 100

// Service validates category mutations before they reach the [Repository].
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

func (service *Service) List(context context.Context) ([]Category, error) {
	return service.repo.List(context)
}

func (service *Service) Create(context context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxNameLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	category := &Category{ID: uuid.New(), Name: name}
	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created", slog.String("category_id", category.ID), slog.String("name", name))
	return category, nil
}

func (service *Service) Update(context context.Context, id string, patch Patch) (*Category, error) {
	validator := &validate.Validator{}
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
		validator.Required(FieldName, trimmed).MaxLen(FieldName, trimmed, maxNameLen)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	category, err := service.repo.Update(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("category_updated", slog.String("category_id", id))
	return category, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.String("category_id", id))
	return nil
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package category_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/pkg/pointer"
)

func newService() *category.Service {
	return category.NewService(category.NewMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.Create(ctx, " রহস্য ")
	require.NoError(t, err)
	_, err = service.Create(ctx, "প্রেম")
	require.NoError(t, err)

	categories, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"প্রেম", "রহস্য"}, category.Names(categories))
}

func TestService_Create_Rejects(t *testing.T) {
	ctx := context.Background()
	service := newService()

	_, err := service.Create(ctx, "   ")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	_, err = service.Create(ctx, "প্রেম")
	require.NoError(t, err)
	_, err = service.Create(ctx, "প্রেম")
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	service := newService()

	created, err := service.Create(ctx, "থ্রিলার")
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, category.Patch{Name: pointer.To("রোমাঞ্চ")})
	require.NoError(t, err)
	assert.Equal(t, "রোমাঞ্চ", updated.Name)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.True(t, apperr.IsCode(service.Delete(ctx, created.ID), apperr.CodeNotFound))

	_, err = service.Update(ctx, "missing", category.Patch{Name: pointer.To("x")})
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

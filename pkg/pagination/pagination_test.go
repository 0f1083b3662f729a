// Copyright (c) 2026 GolpoHub. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golpohub/golpohub/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "?page=3&limit=5", 3, 5},
		{"negative_page", "?page=-1", pagination.DefaultPage, pagination.DefaultLimit},
		{"excessive_limit", "?limit=1000", pagination.DefaultPage, pagination.DefaultLimit},
		{"garbage", "?page=x&limit=y", pagination.DefaultPage, pagination.DefaultLimit},
		{"huge_page", "?page=4611686018427387904", pagination.MaxPage, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/series"+tt.query, nil)
			p := pagination.FromRequest(req)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := pagination.Window(items, pagination.Params{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 2, Total: 5, TotalPages: 3}, meta)

	page, _ = pagination.Window(items, pagination.Params{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, page)

	page, _ = pagination.Window(items, pagination.Params{Page: 9, Limit: 2})
	assert.Empty(t, page)

	page, meta = pagination.Window(items, pagination.Params{Page: 1 << 62, Limit: 12})
	assert.Empty(t, page)
	assert.Equal(t, 5, meta.Total)

	page, _ = pagination.Window(items, pagination.Params{Page: pagination.MaxPage, Limit: pagination.MaxLimit})
	assert.Empty(t, page)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 12}.Offset())
	assert.Equal(t, 24, pagination.Params{Page: 3, Limit: 12}.Offset())
	assert.Positive(t, pagination.Params{Page: 1 << 62, Limit: 12}.Offset())
}

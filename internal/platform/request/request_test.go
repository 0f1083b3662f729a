// Copyright (c) 2026 GolpoHub. All rights reserved.

package request_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/request"
	"github.com/golpohub/golpohub/internal/platform/validate"
)

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"আমার গল্প"}`))
	require.NoError(t, request.DecodeJSON(httptest.NewRecorder(), req, &target))
	assert.Equal(t, "আমার গল্প", target.Title)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	assert.ErrorIs(t, request.DecodeJSON(httptest.NewRecorder(), req, &target), validate.ErrInvalidJSON)
}

func TestIntParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"2", 2, false},
		{"0", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got int
			var err error

			router := chi.NewRouter()
			router.Get("/parts/{partNumber}", func(w http.ResponseWriter, r *http.Request) {
				got, err = request.IntParam(r, "partNumber")
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/parts/"+tt.raw, nil))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"uuid", "0190f1d2-7a3b-7c4d-8e5f-6a7b8c9d0e1f", false},
		{"malformed", "abc", true},
		{"sql_fragment", "1%27%20OR%201=1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var err error

			router := chi.NewRouter()
			router.Get("/stories/{id}", func(w http.ResponseWriter, r *http.Request) {
				got, err = request.IDParam(r, "id", "Story")
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stories/"+tt.raw, nil))

			if tt.wantErr {
				assert.True(t, apperr.IsCode(err, apperr.CodeNotFound), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, got)
		})
	}
}

func TestConfirmed(t *testing.T) {
	assert.True(t, request.Confirmed(httptest.NewRequest(http.MethodDelete, "/x?confirm=true", nil)))
	assert.False(t, request.Confirmed(httptest.NewRequest(http.MethodDelete, "/x", nil)))
}

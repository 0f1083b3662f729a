// Copyright (c) 2026 GolpoHub. All rights reserved.

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/respond"
	"github.com/golpohub/golpohub/pkg/pagination"
)

func TestError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantLocation string
	}{
		{"not_found", apperr.NotFound("Story"), http.StatusNotFound, apperr.CodeNotFound, ""},
		{"plain_error", errors.New("connection reset"), http.StatusInternalServerError, apperr.CodeInternal, ""},
		{"gate_redirect", apperr.RedirectToLogin("/admin/login"), http.StatusUnauthorized, apperr.CodeUnauthorized, "/admin/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))

			var body respond.ErrorEnvelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotContains(t, body.Error, "connection reset")
		})
	}
}

func TestPaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Paginated(rec, []string{"a"}, pagination.NewMeta(1, 12, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["a"],"meta":{"page":1,"limit":12,"total":1,"total_pages":1}}`, rec.Body.String())
}

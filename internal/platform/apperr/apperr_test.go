// Copyright (c) 2026 GolpoHub. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/platform/apperr"
)

/*
TestAppError_Constructors checks the status/code pairing of each constructor.
*/
func TestAppError_Constructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"not_found", apperr.NotFound("Story"), apperr.CodeNotFound, http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("no"), apperr.CodeUnauthorized, http.StatusUnauthorized},
		{"conflict", apperr.Conflict("dup"), apperr.CodeConflict, http.StatusConflict},
		{"validation", apperr.ValidationError("bad"), apperr.CodeValidation, http.StatusBadRequest},
		{"unprocessable", apperr.Unprocessable("bad"), apperr.CodeUnprocessable, http.StatusUnprocessableEntity},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}

	assert.Equal(t, "Story not found", apperr.NotFound("Story").Message)
}

/*
TestAppError_RedirectToLogin verifies the gate outcome carries the login path.
*/
func TestAppError_RedirectToLogin(t *testing.T) {
	err := apperr.RedirectToLogin("/admin/login")

	assert.Equal(t, http.StatusUnauthorized, err.HTTPStatus)
	assert.Equal(t, "/admin/login", err.Redirect)
}

/*
TestAppError_Chain verifies As/IsCode traverse wrapped errors and Message hides causes.
*/
func TestAppError_Chain(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	wrapped := fmt.Errorf("story: list: %w", apperr.Internal(cause))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.True(t, errors.Is(wrapped, cause))
	assert.True(t, apperr.IsCode(wrapped, apperr.CodeInternal))
	assert.Equal(t, "An unexpected error occurred", apperr.Message(wrapped))
	assert.Equal(t, "An unexpected error occurred", apperr.Message(cause))
	assert.Empty(t, apperr.Message(nil))

	withCause := apperr.Conflict("Slug already exists").WithCause(cause)
	assert.Equal(t, "Slug already exists", apperr.Message(withCause))
	assert.True(t, errors.Is(withCause, cause))
}

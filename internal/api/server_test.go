// Copyright (c) 2026 GolpoHub. All rights reserved.

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/admin"
	"github.com/golpohub/golpohub/internal/api"
	"github.com/golpohub/golpohub/internal/content"
	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/core/category"
	"github.com/golpohub/golpohub/internal/core/story"
	"github.com/golpohub/golpohub/internal/platform/config"
	"github.com/golpohub/golpohub/internal/platform/constants"
	"github.com/golpohub/golpohub/internal/platform/sec"
	"github.com/golpohub/golpohub/internal/site"
	"github.com/golpohub/golpohub/internal/users/auth"
	"github.com/golpohub/golpohub/internal/view"
)

func newServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authorRepo := author.NewMemoryRepository()
	categoryRepo := category.NewMemoryRepository()
	storyRepo := story.NewMemoryRepository(authorRepo, categoryRepo)

	catalog := content.NewCatalog(
		story.NewService(storyRepo, logger),
		author.NewService(authorRepo, logger),
		category.NewService(categoryRepo, logger),
		logger,
	)
	require.NoError(t, catalog.Refresh(ctx))
	t.Cleanup(catalog.Close)

	tokens, err := sec.NewTokenService("test-secret", constants.AuthIssuer)
	require.NoError(t, err)
	authService := auth.NewService(auth.NewMemoryAccountRepository(), auth.NewMemoryRevocationStore(), tokens, logger)
	require.NoError(t, authService.EnsureAdmin(ctx, "editor@golpohub.com", "correct-horse-battery"))

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "development", AllowedOriginSuffix: "golpohub.com"}

	server := api.NewServer(ctx, cfg, logger, authService, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Site:      site.NewHandler(catalog, view.ThemeDark, false),
		Auth:      auth.NewHandler(authService, false),
		Admin:     admin.NewHandler(catalog, view.ThemeDark),
	})
	return server.Handler()
}

func serve(router http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRoutes(t *testing.T) {
	router := newServer(t, api.HealthDependencies{})

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, target: "/health", wantStatus: http.StatusOK},
		{name: "ready", method: http.MethodGet, target: "/ready", wantStatus: http.StatusOK},
		{name: "home", method: http.MethodGet, target: "/api/v1/home", wantStatus: http.StatusOK},
		{name: "series", method: http.MethodGet, target: "/api/v1/series", wantStatus: http.StatusOK},
		{name: "missing_story", method: http.MethodGet, target: "/api/v1/stories/none", wantStatus: http.StatusNotFound},
		{name: "session_probe", method: http.MethodGet, target: "/api/v1/admin/session", wantStatus: http.StatusOK},
		{name: "gated_dashboard", method: http.MethodGet, target: "/api/v1/admin/dashboard", wantStatus: http.StatusUnauthorized},
		{name: "gated_delete", method: http.MethodDelete, target: "/api/v1/admin/stories/x?confirm=true", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.target, "")
			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, constants.LoginPath, recorder.Header().Get(constants.HeaderLocation))
			}
		})
	}
}

func TestAdminFlow(t *testing.T) {
	router := newServer(t, api.HealthDependencies{})

	login := serve(router, http.MethodPost, "/api/v1/admin/login", `{"email":"editor@golpohub.com","password":"correct-horse-battery"}`)
	require.Equal(t, http.StatusOK, login.Code)
	cookies := login.Result().Cookies()
	require.Len(t, cookies, 1)

	recorder := serve(router, http.MethodGet, "/api/v1/admin/dashboard", "", cookies[0])
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(router, http.MethodPost, "/api/v1/admin/logout", "", cookies[0])
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = serve(router, http.MethodGet, "/api/v1/admin/dashboard", "", cookies[0])
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestReadiness_Degraded(t *testing.T) {
	router := newServer(t, api.HealthDependencies{
		CheckDatabase: func() error { return nil },
		CheckCatalog:  func() error { return errors.New("stories: store unavailable") },
	})

	recorder := serve(router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"degraded"`)
	assert.Contains(t, recorder.Body.String(), `"catalog"`)
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/constants"
	"github.com/golpohub/golpohub/internal/platform/middleware"
	"github.com/golpohub/golpohub/internal/platform/sec"
	"github.com/golpohub/golpohub/internal/users/auth"
)

const (
	adminEmail    = "editor@golpohub.com"
	adminPassword = "correct-horse-battery"
	readerEmail   = "reader@golpohub.com"
)

type fixture struct {
	service  *auth.Service
	accounts *auth.MemoryAccountRepository
	revoked  *auth.MemoryRevocationStore
	tokens   *sec.TokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret", constants.AuthIssuer)
	require.NoError(t, err)

	f := fixture{
		accounts: auth.NewMemoryAccountRepository(),
		revoked:  auth.NewMemoryRevocationStore(),
		tokens:   tokens,
	}
	f.service = auth.NewService(f.accounts, f.revoked, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	require.NoError(t, f.service.EnsureAdmin(ctx, adminEmail, adminPassword))

	hash, err := sec.HashPassword(adminPassword)
	require.NoError(t, err)
	require.NoError(t, f.accounts.Create(ctx, &auth.Account{ID: "reader-1", Email: readerEmail, PasswordHash: hash}))

	return f
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		loading   bool
		principal *auth.Principal
		want      auth.GateState
	}{
		{name: "loading_wins", loading: true, principal: &auth.Principal{IsAdmin: true}, want: auth.GateLoading},
		{name: "anonymous", want: auth.GateRedirectLogin},
		{name: "reader", principal: &auth.Principal{AccountID: "r", IsAdmin: false}, want: auth.GateRedirectLogin},
		{name: "admin", principal: &auth.Principal{AccountID: "a", IsAdmin: true}, want: auth.GateAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.Decide(tt.loading, tt.principal))
		})
	}
}

func TestPrincipalFrom(t *testing.T) {
	assert.Nil(t, auth.PrincipalFrom(nil))

	principal := auth.PrincipalFrom(&sec.SessionClaims{AccountID: "a1", Email: "a@x.com", Role: string(sec.RoleAdmin)})
	require.NotNil(t, principal)
	assert.Equal(t, "a1", principal.AccountID)
	assert.True(t, principal.IsAdmin)

	principal = auth.PrincipalFrom(&sec.SessionClaims{AccountID: "r1", Role: string(sec.RoleReader)})
	assert.False(t, principal.IsAdmin)
}

func TestService_Login(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantCode string
	}{
		{name: "admin", email: adminEmail, password: adminPassword},
		{name: "email_is_normalized", email: "  EDITOR@golpohub.com ", password: adminPassword},
		{name: "empty_password", email: adminEmail, wantCode: apperr.CodeValidation},
		{name: "wrong_password", email: adminEmail, password: "nope-nope", wantCode: apperr.CodeUnauthorized},
		{name: "unknown_email", email: "ghost@golpohub.com", password: adminPassword, wantCode: apperr.CodeUnauthorized},
		{name: "not_admin", email: readerEmail, password: adminPassword, wantCode: apperr.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := f.service.Login(context.Background(), tt.email, tt.password)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperr.IsCode(err, tt.wantCode), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.Token)
			assert.Equal(t, adminEmail, session.Account.Email)
			assert.WithinDuration(t, time.Now().Add(constants.SessionTTL), session.ExpiresAt, time.Minute)
		})
	}
}

func TestService_Login_RejectionsAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, wrongPassword := f.service.Login(ctx, adminEmail, "nope-nope")
	_, unknown := f.service.Login(ctx, "ghost@golpohub.com", adminPassword)
	_, notAdmin := f.service.Login(ctx, readerEmail, adminPassword)

	assert.Equal(t, apperr.Message(wrongPassword), apperr.Message(unknown))
	assert.Equal(t, apperr.Message(wrongPassword), apperr.Message(notAdmin))
}

func TestService_Logout_RevokesSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.service.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	claims, err := f.service.VerifySession(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())

	require.NoError(t, f.service.Logout(ctx, session.Token))

	_, err = f.service.VerifySession(ctx, session.Token)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized), "got %v", err)

	assert.NoError(t, f.service.Logout(ctx, "garbage"))
}

func TestService_VerifySession_RejectsForeignTokens(t *testing.T) {
	f := newFixture(t)

	other, err := sec.NewTokenService("another-secret", constants.AuthIssuer)
	require.NoError(t, err)
	token, _, err := other.IssueToken("x", adminEmail, sec.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = f.service.VerifySession(context.Background(), token)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnauthorized))
}

func TestService_EnsureAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Idempotent for an existing admin; the stored password is kept.
	require.NoError(t, f.service.EnsureAdmin(ctx, adminEmail, "a-different-password"))
	_, err := f.service.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	// Promotes an existing reader.
	require.NoError(t, f.service.EnsureAdmin(ctx, readerEmail, "whatever-long"))
	account, err := f.accounts.FindByEmail(ctx, readerEmail)
	require.NoError(t, err)
	assert.True(t, account.IsAdmin)

	err = f.service.EnsureAdmin(ctx, "not-an-email", "long-enough")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	err = f.service.EnsureAdmin(ctx, "new@golpohub.com", "short")
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestMemoryRevocationStore(t *testing.T) {
	store := auth.NewMemoryRevocationStore()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "expired", 0))
	require.NoError(t, store.Revoke(ctx, "live", time.Hour))

	revoked, err := store.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = store.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)
}

// # HTTP

func newRouter(f fixture) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(f.service))
	router.Mount("/auth", auth.NewHandler(f.service, false).Routes())
	return router
}

func sessionState(t *testing.T, router http.Handler, cookie *http.Cookie) map[string]any {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	if cookie != nil {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	return body.Data
}

func TestHandler_LoginSessionLogout(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)

	state := sessionState(t, router, nil)
	assert.Equal(t, string(auth.GateRedirectLogin), state["state"])
	assert.Equal(t, constants.LoginPath, state["redirect"])

	body := `{"email":"` + adminEmail + `","password":"` + adminPassword + `"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "token")

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, constants.SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	state = sessionState(t, router, cookie)
	assert.Equal(t, string(auth.GateAuthorized), state["state"])

	logout := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logout.AddCookie(cookie)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, logout)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	state = sessionState(t, router, cookie)
	assert.Equal(t, string(auth.GateRedirectLogin), state["state"])
}

func TestHandler_LoginRejected(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)

	body := `{"email":"` + readerEmail + `","password":"` + adminPassword + `"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, recorder.Result().Cookies())
}

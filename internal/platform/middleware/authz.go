// Copyright (c) 2026 GolpoHub. All rights reserved.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/constants"
	"github.com/golpohub/golpohub/internal/platform/ctxutil"
	"github.com/golpohub/golpohub/internal/platform/respond"
	"github.com/golpohub/golpohub/internal/platform/sec"
	"github.com/golpohub/golpohub/internal/users/auth"
)

// SessionVerifier validates a raw session token, including revocation.
//
// Declared here so tests can substitute a stub for [auth.Service].
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*sec.SessionClaims, error)
}

// Authenticate resolves the session from the cookie or the Authorization header.
//
// # Flow
//  1. Read the session cookie, falling back to 'Authorization: Bearer <token>'.
//  2. If absent, the request proceeds as anonymous.
//  3. If present but invalid, expired or revoked, the request also proceeds as
//     anonymous; the admin gate turns that into a login redirect.
//  4. Otherwise inject the claims and a logger tagged with the account ID.
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := sessionToken(request)
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := request.Context()
			claims, err := verifier.VerifySession(ctx, token)
			if err != nil {
				ctxutil.GetLogger(ctx).DebugContext(ctx, "session_rejected", slog.String("reason", err.Error()))
				next.ServeHTTP(writer, request)
				return
			}

			ctx = ctxutil.WithSession(ctx, claims, token)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("account_id", claims.AccountID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin lets the request through only when the admin gate authorizes it.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Anonymous visitors and
// signed-in readers get the same outcome: 401 with Location set to the login page.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := auth.PrincipalFrom(ctxutil.GetSession(request.Context()))

		if auth.Decide(false, principal) != auth.GateAuthorized {
			respond.Error(writer, request, apperr.RedirectToLogin(constants.LoginPath))
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// sessionToken extracts the raw token, preferring the browser cookie.
func sessionToken(request *http.Request) string {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := request.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

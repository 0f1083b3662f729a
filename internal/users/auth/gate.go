// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth

import "github.com/golpohub/golpohub/internal/platform/sec"

// GateState is the outcome of the admin gate.
type GateState string

const (
	// GateLoading means the session check has not resolved yet.
	GateLoading GateState = "loading"
	// GateRedirectLogin covers both "not signed in" and "signed in without admin".
	GateRedirectLogin GateState = "redirect_login"
	// GateAuthorized means the dashboard may render.
	GateAuthorized GateState = "authorized"
)

// Principal is the resolved identity behind a request.
type Principal struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// PrincipalFrom converts verified session claims into a [Principal].
// Nil claims yield a nil principal.
func PrincipalFrom(claims *sec.SessionClaims) *Principal {
	if claims == nil {
		return nil
	}
	return &Principal{
		AccountID: claims.AccountID,
		Email:     claims.Email,
		IsAdmin:   claims.IsAdmin(),
	}
}

// Decide maps the session check onto a gate state.
//
// Any failure to resolve a principal is treated as "not an admin".
func Decide(loading bool, principal *Principal) GateState {
	switch {
	case loading:
		return GateLoading
	case principal == nil || !principal.IsAdmin:
		return GateRedirectLogin
	default:
		return GateAuthorized
	}
}

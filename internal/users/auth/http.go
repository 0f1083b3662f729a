// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/golpohub/golpohub/internal/platform/constants"
	"github.com/golpohub/golpohub/internal/platform/ctxutil"
	"github.com/golpohub/golpohub/internal/platform/request"
	"github.com/golpohub/golpohub/internal/platform/respond"
)

// Handler implements the sign-in endpoints of the admin dashboard.
type Handler struct {
	service      *Service
	secureCookie bool
}

// NewHandler constructs a [Handler]. secureCookie should be false only for
// plain-HTTP development servers.
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{service: service, secureCookie: secureCookie}
}

// Routes returns a [chi.Router] configured with the auth endpoints.
//
// # Endpoints
//   - POST /login   : Verifies admin credentials and sets the session cookie.
//   - POST /logout  : Revokes the current session and clears the cookie.
//   - GET  /session : Reports the gate state for the current visitor.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/session", handler.session)

	return router
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /api/v1/auth/login.

Response:
  - 200: Session (token delivered only in the HttpOnly cookie)
  - 400: VALIDATION_ERROR
  - 401: UNAUTHORIZED (any rejected credential)
*/
func (handler *Handler) login(writer http.ResponseWriter, httpRequest *http.Request) {
	var input loginRequest
	if err := request.DecodeJSON(writer, httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	session, err := handler.service.Login(httpRequest.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	http.SetCookie(writer, handler.cookie(session.Token, session.ExpiresAt))
	respond.OK(writer, session)
}

/*
POST /api/v1/auth/logout.

Response:
  - 204: Always, once the session (if any) is revoked
*/
func (handler *Handler) logout(writer http.ResponseWriter, httpRequest *http.Request) {
	ctx := httpRequest.Context()

	if token := ctxutil.GetToken(ctx); token != "" {
		if err := handler.service.Logout(ctx, token); err != nil {
			respond.Error(writer, httpRequest, err)
			return
		}
	}

	http.SetCookie(writer, handler.cookie("", time.Unix(0, 0)))
	respond.NoContent(writer)
}

type sessionResponse struct {
	State    GateState  `json:"state"`
	Redirect string     `json:"redirect,omitempty"`
	Account  *Principal `json:"account,omitempty"`
}

/*
GET /api/v1/auth/session.

Description: The dashboard shell calls this on mount. Anonymous visitors and
signed-in non-admins both receive redirect_login.

Response:
  - 200: sessionResponse
*/
func (handler *Handler) session(writer http.ResponseWriter, httpRequest *http.Request) {
	principal := PrincipalFrom(request.Session(httpRequest))

	response := sessionResponse{State: Decide(false, principal)}
	if response.State == GateAuthorized {
		response.Account = principal
	} else {
		response.Redirect = constants.LoginPath
	}

	respond.OK(writer, response)
}

func (handler *Handler) cookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and the common body decoding
pattern so handlers report malformed input consistently.
*/
package request

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/ctxutil"
	"github.com/golpohub/golpohub/internal/platform/sec"
	"github.com/golpohub/golpohub/internal/platform/validate"
	"github.com/golpohub/golpohub/pkg/convert"
	"github.com/golpohub/golpohub/pkg/uuid"
)

// maxBodyBytes caps JSON bodies; story parts are long but not unbounded.
const maxBodyBytes = 4 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (ID, slug, username) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IDParam retrieves a named URL parameter that must hold a row identifier.

Parameters:
  - request: *http.Request
  - name: string (URL parameter name)
  - resource: string (entity named in the not-found message)

Returns:
  - string: The identifier
  - error: apperr.NotFound(resource) if the value is not a UUID
*/
func IDParam(request *http.Request, name, resource string) (string, error) {
	id := chi.URLParam(request, name)
	if !uuid.Valid(id) {
		return "", apperr.NotFound(resource)
	}
	return id, nil
}

/*
IntParam retrieves a named URL parameter as a positive integer.

Returns:
  - int: The parsed value
  - error: apperr.ValidationError if the parameter is not a positive integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || value < 1 {
		return 0, apperr.ValidationError("Invalid " + name)
	}
	return value, nil
}

/*
Confirmed reports whether the client acknowledged a destructive action
with ?confirm=true.
*/
func Confirmed(request *http.Request) bool {
	return convert.ToBool(request.URL.Query().Get("confirm"))
}

/*
Session extracts the verified session claims from the request context.

Returns nil if the request is anonymous.
*/
func Session(request *http.Request) *sec.SessionClaims {
	return ctxutil.GetSession(request.Context())
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package view

import (
	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/constants"
)

// BannerKind is the tone of an admin banner.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the transient, auto-dismissing notice shown after an admin action.
type Banner struct {
	Kind           BannerKind `json:"kind"`
	Message        string     `json:"message"`
	DismissAfterMS int64      `json:"dismiss_after_ms"`
}

// Success builds a success banner.
func Success(message string) Banner {
	return Banner{
		Kind:           BannerSuccess,
		Message:        message,
		DismissAfterMS: constants.BannerDismissAfter.Milliseconds(),
	}
}

// Failure builds an error banner carrying the client-safe text of err.
func Failure(err error) Banner {
	return Banner{
		Kind:           BannerError,
		Message:        apperr.Message(err),
		DismissAfterMS: constants.BannerDismissAfter.Milliseconds(),
	}
}

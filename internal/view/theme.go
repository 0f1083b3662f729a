// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package view derives reader-facing views from catalog snapshots.

Everything here is a pure function of its inputs: a slice of stories or
authors, the reader's [Theme] and query parameters. Nothing is cached; every
request recomputes its view from the current snapshot.
*/
package view

import (
	"net/http"

	"github.com/golpohub/golpohub/internal/markup"
	"github.com/golpohub/golpohub/internal/platform/constants"
)

// Theme is the reader's light/dark preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a raw value onto a [Theme], falling back to fallback.
func ParseTheme(raw string, fallback Theme) Theme {
	switch Theme(raw) {
	case ThemeDark, ThemeLight:
		return Theme(raw)
	}
	return fallback
}

// ThemeFromRequest resolves the theme from the theme cookie.
func ThemeFromRequest(r *http.Request, fallback Theme) Theme {
	cookie, err := r.Cookie(constants.ThemeCookieName)
	if err != nil {
		return fallback
	}
	return ParseTheme(cookie.Value, fallback)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Palette returns the colors the markup renderer uses under t.
func (t Theme) Palette() markup.Palette {
	if t == ThemeLight {
		return markup.Palette{Accent: "#F59E0B", Muted: "#6B7280"}
	}
	return markup.Palette{Accent: "#F59E0B", Muted: "#9CA3AF"}
}

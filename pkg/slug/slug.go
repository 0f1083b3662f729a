// Copyright (c) 2026 GolpoHub. All rights reserved.

// Package slug generates URL slugs from story titles in any script.
//
// # Usage
//
// Slugs are the public identifier of a story (e.g., "আমার-গল্প"). Bengali
// letters and their vowel signs are combining marks, so unlike ASCII slug
// generators nothing is transliterated or stripped of accents.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// From converts an arbitrary title into a URL slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC so visually equal titles produce equal slugs.
// 2. Converts to lowercase.
// 3. Keeps caseless and lowercase letters, combining marks, digits, '_' and '-'.
//    Uppercase letters without a lowercase form are dropped.
// 4. Turns each whitespace run into one hyphen and drops other punctuation.
// 5. Collapses repeated hyphens and trims leading/trailing hyphens.
// 6. Re-normalizes the result.
//
// From is idempotent: From(From(s)) == From(s).
func From(s string) string {
	normalized := strings.ToLower(norm.NFC.String(s))

	var b strings.Builder
	b.Grow(len(normalized))

	// pendingHyphen defers writing a separator until a kept rune follows it.
	pendingHyphen := false
	for _, r := range normalized {
		switch {
		case keep(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}

	// Dropping a rune can bring two composable runes together.
	return norm.NFC.String(b.String())
}

// keep reports whether r survives into the slug verbatim.
func keep(r rune) bool {
	return unicode.IsLower(r) ||
		unicode.Is(unicode.Lo, r) ||
		unicode.Is(unicode.Lm, r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		r == '_'
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

package slug_test

import (
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/golpohub/golpohub/internal/platform/validate"
	"github.com/golpohub/golpohub/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bengali_title", "আমার গল্প", "আমার-গল্প"},
		{"latin_title", "The Last Letter", "the-last-letter"},
		{"punctuation_dropped", "Hello, World!", "hello-world"},
		{"whitespace_runs", "  many   spaces\there ", "many-spaces-here"},
		{"hyphens_collapsed", "a -- b", "a-b"},
		{"digits_kept", "Part ২ of 3", "part-২-of-3"},
		{"underscore_kept", "snake_case title", "snake_case-title"},
		{"uncased_capital_dropped", "ℂ Story", "story"},
		{"titlecase_lowered", "ǅemal", "ǆemal"},
		{"only_punctuation", "?!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Idempotent checks that slugging an already slugged value is a no-op.
*/
func TestFrom_Idempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	idempotent := func(s string) bool {
		once := slug.From(s)
		return slug.From(once) == once
	}

	properties.Property("latin titles", prop.ForAll(idempotent, gen.AlphaString()))
	properties.Property("bengali titles", prop.ForAll(idempotent, gen.UnicodeString(unicode.Bengali)))
	properties.Property("mixed with separators", prop.ForAll(
		func(a, b string) bool { return idempotent(a + " - " + b + "!") },
		gen.AlphaString(),
		gen.UnicodeString(unicode.Bengali),
	))

	properties.TestingRun(t)
}

/*
TestFrom_PassesValidation checks that every non-empty generated slug is
accepted by the slug validator used when stories are saved.
*/
func TestFrom_PassesValidation(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	valid := func(s string) bool {
		generated := slug.From(s)
		if generated == "" {
			return true
		}
		return !(&validate.Validator{}).Slug("slug", generated).HasErrors()
	}

	properties.Property("any text", prop.ForAll(valid, gen.AnyString()))
	properties.Property("bengali titles", prop.ForAll(valid, gen.UnicodeString(unicode.Bengali)))

	assert.True(t, valid("ℂ Story"))
	properties.TestingRun(t)
}

// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package markup renders the lightweight formatting dialect used in story parts.

# Grammar

Block level, one line at a time:

	> text    blockquote
	# text    sub-heading
	anything  inline line

Inline spans nest and are matched by delimiter scanning:

	**text**  strong
	*text*    emphasis
	~text~    light (reduced opacity)

A backslash before any of \ * ~ # > emits that character literally. Unclosed
or empty delimiters are kept as literal text. All text is HTML-escaped, so the
only elements in the output are the ones listed above plus <br>.

Consecutive inline lines are joined with <br>; block elements carry their own
spacing and are never followed by one.
*/
package markup

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"
)

// Palette carries the theme colors the renderer needs.
type Palette struct {
	// Accent colors quote borders and headings.
	Accent string
	// Muted colors light spans.
	Muted string
}

// Style selects the spacing used for block elements.
type Style int

const (
	// Full is the reading view of a story part.
	Full Style = iota
	// Compact is used for excerpts on cards and listings.
	Compact
)

// Ellipsis is appended to truncated excerpts.
const Ellipsis = "…"

// Render converts source markup into HTML using the Full style.
func Render(source string, palette Palette) string {
	return RenderStyle(source, palette, Full)
}

/*
Excerpt renders at most limit runes of source in the Compact style.

Description: The source is truncated before rendering, so a span cut in half
becomes literal text instead of leaking an unclosed tag. An ellipsis is
appended when anything was dropped. A non-positive limit renders everything.

Parameters:
  - source: string
  - palette: Palette
  - limit: int (runes)

Returns:
  - string: HTML fragment
*/
func Excerpt(source string, palette Palette, limit int) string {
	truncated := false
	if limit > 0 && utf8.RuneCountInString(source) > limit {
		source = string([]rune(source)[:limit])
		source = strings.TrimRight(source, " \t\r\n")
		truncated = true
	}

	out := RenderStyle(source, palette, Compact)
	if truncated {
		out += Ellipsis
	}
	return out
}

// RenderStyle converts source markup into HTML with an explicit style.
func RenderStyle(source string, palette Palette, style Style) string {
	tags := tagsFor(palette, style)
	lines := strings.Split(source, "\n")

	var b strings.Builder
	b.Grow(len(source) + len(source)/2)

	prevInline := false
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasPrefix(line, "> "):
			b.WriteString(tags.quoteOpen)
			b.WriteString(renderInline(line[2:], tags))
			b.WriteString("</blockquote>")
			prevInline = false
		case strings.HasPrefix(line, "# "):
			b.WriteString(tags.headingOpen)
			b.WriteString(renderInline(line[2:], tags))
			b.WriteString("</h3>")
			prevInline = false
		default:
			if i > 0 && prevInline {
				b.WriteString("<br>")
			}
			b.WriteString(renderInline(line, tags))
			prevInline = true
		}
	}

	return b.String()
}

// # Styling

type tagSet struct {
	quoteOpen   string
	headingOpen string
	lightOpen   string
}

func tagsFor(palette Palette, style Style) tagSet {
	if style == Compact {
		return tagSet{
			quoteOpen:   fmt.Sprintf(`<blockquote style="border-left: 3px solid %s; padding-left: 12px; margin: 8px 0; opacity: 0.8;">`, html.EscapeString(palette.Accent)),
			headingOpen: `<h3 style="font-size: 1.2em; font-weight: bold; margin: 12px 0;">`,
			lightOpen:   `<span style="opacity: 0.7;">`,
		}
	}

	return tagSet{
		quoteOpen:   fmt.Sprintf(`<blockquote style="border-left: 3px solid %s; padding-left: 12px; margin: 16px 0; opacity: 0.8; font-style: italic;">`, html.EscapeString(palette.Accent)),
		headingOpen: fmt.Sprintf(`<h3 style="font-size: 1.3em; font-weight: bold; margin: 20px 0 12px 0; color: %s;">`, html.EscapeString(palette.Accent)),
		lightOpen:   fmt.Sprintf(`<span style="opacity: 0.7; color: %s;">`, html.EscapeString(palette.Muted)),
	}
}

// # Inline Parsing

const (
	closeStrong = "**"
	closeEm     = "*"
	closeLight  = "~"
)

type spanKey struct {
	closer string
	start  int
}

type spanResult struct {
	html string
	end  int
	ok   bool
}

// inlineParser is a recursive-descent parser over one line.
//
// Results are memoized by (closer, start) so repeated failed openings on
// delimiter-heavy input stay quadratic at worst.
type inlineParser struct {
	src  string
	tags tagSet
	memo map[spanKey]spanResult
}

func renderInline(line string, tags tagSet) string {
	p := &inlineParser{
		src:  line,
		tags: tags,
		memo: make(map[spanKey]spanResult),
	}
	result := p.span(0, "")
	return result.html
}

// span parses from start until closer at the current nesting level.
// An empty closer parses to the end of the line and always succeeds.
func (p *inlineParser) span(start int, closer string) spanResult {
	key := spanKey{closer: closer, start: start}
	if cached, ok := p.memo[key]; ok {
		return cached
	}

	result := p.scan(start, closer)
	p.memo[key] = result
	return result
}

func (p *inlineParser) scan(start int, closer string) spanResult {
	var b strings.Builder
	src := p.src
	i := start
	literal := start

	flush := func(to int) {
		if to > literal {
			b.WriteString(html.EscapeString(src[literal:to]))
		}
	}

	for i < len(src) {
		c := src[i]

		if c == '\\' && i+1 < len(src) && escapable(src[i+1]) {
			flush(i)
			b.WriteString(html.EscapeString(src[i+1 : i+2]))
			i += 2
			literal = i
			continue
		}

		if closer != "" && strings.HasPrefix(src[i:], closer) {
			// A "**" inside emphasis may open a strong span before it closes.
			if closer == closeEm && strings.HasPrefix(src[i:], closeStrong) {
				if inner := p.span(i+2, closeStrong); inner.ok {
					flush(i)
					b.WriteString("<strong>" + inner.html + "</strong>")
					i = inner.end
					literal = i
					continue
				}
			}
			if i == start {
				return spanResult{}
			}
			flush(i)
			return spanResult{html: b.String(), end: i + len(closer), ok: true}
		}

		if open, tag, closeTag, ok := p.opener(i); ok {
			if inner := p.span(i+len(open), open); inner.ok {
				flush(i)
				b.WriteString(tag + inner.html + closeTag)
				i = inner.end
				literal = i
				continue
			}
		}

		i++
	}

	if closer != "" {
		return spanResult{}
	}
	flush(len(src))
	return spanResult{html: b.String(), end: len(src), ok: true}
}

// opener reports the delimiter that could open a span at position i.
func (p *inlineParser) opener(i int) (delim, openTag, closeTag string, ok bool) {
	switch {
	case strings.HasPrefix(p.src[i:], closeStrong):
		return closeStrong, "<strong>", "</strong>", true
	case p.src[i] == '*':
		return closeEm, "<em>", "</em>", true
	case p.src[i] == '~':
		return closeLight, p.tags.lightOpen, "</span>", true
	}
	return "", "", "", false
}

func escapable(c byte) bool {
	switch c {
	case '\\', '*', '~', '#', '>':
		return true
	}
	return false
}

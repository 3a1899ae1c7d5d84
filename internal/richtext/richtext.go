// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package richtext converts between the rich HTML stored for notes,
// journal entries and task descriptions and their plain-text projection.
//
// The projection is what search, previews, version diffs and the
// "sanitized" database columns operate on. It is always derived from the
// HTML; callers never edit it directly.
package richtext

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blockElements = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Li:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Hr:         true,
	atom.Table:      true,
	atom.Tr:         true,
	atom.Section:    true,
	atom.Article:    true,
}

var (
	inlineSpaces = regexp.MustCompile(`[ \t\r\n\f]+`)
	blankRuns    = regexp.MustCompile(`\n{3,}`)
)

// PlainText returns the plain-text projection of an HTML fragment.
//
// Block elements end a line, <br> breaks a line, an empty paragraph
// yields an empty line, and entities are decoded. Whitespace inside inline
// text collapses to a single space except within <pre>. Script and style
// contents are dropped.
func PlainText(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return normalize(content)
	}

	z := nethtml.NewTokenizer(strings.NewReader(content))
	var (
		b         strings.Builder
		skipDepth int
		preDepth  int
		openedAt  = make([]int, 0, 8)
	)

	endLine := func() {
		s := b.String()
		if len(s) > 0 && !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}

	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			return normalize(b.String())

		case nethtml.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := string(z.Text())
			if preDepth == 0 {
				text = inlineSpaces.ReplaceAllString(text, " ")
				if strings.HasSuffix(b.String(), "\n") || b.Len() == 0 {
					text = strings.TrimLeft(text, " ")
				}
			}
			b.WriteString(text)

		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case a == atom.Script || a == atom.Style:
				if tt == nethtml.StartTagToken {
					skipDepth++
				}
			case a == atom.Br:
				b.WriteByte('\n')
			case a == atom.Hr:
				endLine()
			case blockElements[a]:
				endLine()
				if a == atom.Pre {
					preDepth++
				}
				if tt == nethtml.StartTagToken {
					openedAt = append(openedAt, b.Len())
				}
			}

		case nethtml.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case a == atom.Script || a == atom.Style:
				if skipDepth > 0 {
					skipDepth--
				}
			case blockElements[a]:
				if a == atom.Pre && preDepth > 0 {
					preDepth--
				}
				start := -1
				if n := len(openedAt); n > 0 {
					start = openedAt[n-1]
					openedAt = openedAt[:n-1]
				}
				if a == atom.P && start == b.Len() {
					b.WriteByte('\n')
					continue
				}
				endLine()
			}
		}
	}
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")

	return strings.Trim(s, "\n ")
}

// FromPlainText wraps every line of text into an escaped paragraph. It is
// used by editors that only produce plain text.
func FromPlainText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>")
	}
	return b.String()
}

// Excerpt returns at most limit runes of the first non-empty line of text,
// suffixed with an ellipsis when truncated.
func Excerpt(text string, limit int) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) <= limit {
			return line
		}
		runes := []rune(line)
		return strings.TrimSpace(string(runes[:limit])) + "…"
	}
	return ""
}

// Snippet returns the line of text containing query (case-insensitive),
// cut to about width runes around the match. Without a match it falls back
// to [Excerpt].
func Snippet(text, query string, width int) string {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return Excerpt(text, width)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		byteAt := strings.Index(lower, needle)
		if byteAt < 0 {
			continue
		}

		runes := []rune(line)
		if len(runes) <= width {
			return line
		}
		// ToLower may change byte lengths, so locate the match on the
		// lowered line and map it back by rune count.
		at := min(utf8.RuneCountInString(lower[:byteAt]), len(runes))
		needleLen := utf8.RuneCountInString(needle)

		start := max(0, at-(width-needleLen)/2)
		end := min(len(runes), start+width)
		start = max(0, end-width)

		snippet := strings.TrimSpace(string(runes[start:end]))
		if start > 0 {
			snippet = "…" + snippet
		}
		if end < len(runes) {
			snippet += "…"
		}
		return snippet
	}
	return Excerpt(text, width)
}

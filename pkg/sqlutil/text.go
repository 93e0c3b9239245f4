package sqlutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/IKAMTeam/sql-formatter-1/pkg/grammar"
	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FoldCase returns the text of tok the way the layout engine compares it:
// keywords and logical operators are lower-cased with internal whitespace
// collapsed to single spaces. Identifiers, literals and comments keep their case.
func FoldCase(tok tokenizer.Token, g *grammar.Grammar) string {
	switch tok.Kind {
	case tokenizer.TopLevel, tokenizer.Newline, tokenizer.Reserved:
		return lower(strings.Join(strings.Fields(tok.Value), " "))
	case tokenizer.OpenParen, tokenizer.CloseParen:
		return lower(tok.Value)
	case tokenizer.Word:
		if g.IsLogical(tok.Value) {
			return lower(tok.Value)
		}
	}
	return tok.Value
}

// lower builds a fresh Caser on each call: a Caser keeps state and must not be
// shared between goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// FirstWord returns the first word of s, skipping leading whitespace and opening
// brackets. The word ends at whitespace, a bracket or a comma.
func FirstWord(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '('
	})

	end := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')' || r == ','
	})
	if end < 0 {
		return s
	}
	return s[:end]
}

// Flatten normalizes s for comparisons: all whitespace is removed and the rest is
// lower-cased rune by rune.
func Flatten(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Width returns the display width of s in columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// LineIndent returns the number of leading whitespace characters in line.
func LineIndent(line string) int {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return utf8.RuneCountInString(line[:len(line)-len(trimmed)])
}

// Spaces returns n spaces, or the empty string when n is not positive.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Rebuild lays out text recovered from the original source. The first line is
// placed at indent. Every following line is placed at contIndent plus however
// far it was indented past origIndent in the source.
func Rebuild(indent, contIndent, origIndent int, text string) string {
	lines := strings.Split(text, "\n")

	var b strings.Builder
	b.WriteString(Spaces(indent))
	b.WriteString(strings.TrimSpace(lines[0]))

	for _, line := range lines[1:] {
		b.WriteByte('\n')

		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}

		b.WriteString(Spaces(contIndent + max(0, LineIndent(line)-origIndent)))
		b.WriteString(strings.TrimLeftFunc(line, unicode.IsSpace))
	}

	return b.String()
}

package format

import (
	"regexp"
	"strings"

	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
)

// spans are the literal and comment ranges of a piece of layout text. Their
// bytes are copied through untouched: nothing inside them is searched, split
// or re-indented.
type spans []tokenizer.Span

// opaque scans s, which always starts on a token boundary. Text that cannot be
// scanned is opaque as a whole.
func (l *layout) opaque(s string) spans {
	sp, err := l.tokenizer.Opaque(s)
	if err != nil {
		return spans{{Kind: tokenizer.Word, Start: 0, End: len(s)}}
	}
	return sp
}

func (sp spans) covers(i int) bool {
	for _, s := range sp {
		if i >= s.Start && i < s.End {
			return true
		}
	}
	return false
}

// multiline reports whether a span of s runs over more than one line.
func (sp spans) multiline(s string) bool {
	for _, span := range sp {
		if strings.Contains(s[span.Start:span.End], "\n") {
			return true
		}
	}
	return false
}

func (sp spans) has(kind tokenizer.Kind) bool {
	for _, s := range sp {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// indexOutside is strings.Index ignoring matches that start inside a literal
// or comment.
func (l *layout) indexOutside(s, substr string) int {
	sp := l.opaque(s)
	for from := 0; from <= len(s); {
		i := strings.Index(s[from:], substr)
		if i < 0 {
			return -1
		}
		if !sp.covers(from + i) {
			return from + i
		}
		from += i + 1
	}
	return -1
}

// splitOutside is strings.Split ignoring separators inside literals and
// comments.
func (l *layout) splitOutside(s, sep string) []string {
	sp := l.opaque(s)

	var (
		parts []string
		start int
	)

	for from := 0; from < len(s); {
		i := strings.Index(s[from:], sep)
		if i < 0 {
			break
		}

		at := from + i
		if !sp.covers(at) {
			parts = append(parts, s[start:at])
			start = at + len(sep)
		}
		from = at + 1
	}

	return append(parts, s[start:])
}

// matchesOutside returns the regexp matches in s that start outside literals
// and comments.
func (l *layout) matchesOutside(re *regexp.Regexp, s string) [][]int {
	sp := l.opaque(s)

	var out [][]int
	for _, m := range re.FindAllStringIndex(s, -1) {
		if !sp.covers(m[0]) {
			out = append(out, m)
		}
	}
	return out
}

package sqlutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type (
	// Cursor walks the original source of a statement strictly left to right.
	// Each successful lookup moves the cursor past the text it found, so repeated
	// identical fragments are matched by position rather than by first occurrence.
	Cursor struct {
		src string
		pos int
	}

	// Match is a verbatim span of the source found by Locate.
	Match struct {
		// Text is the source text, with its original casing and spacing.
		Text string
		// Indent is the column at which Text starts on its source line.
		Indent int
	}
)

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Remaining returns the unconsumed part of the source.
func (c *Cursor) Remaining() string {
	return c.src[c.pos:]
}

// Locate finds the first span after the cursor whose Flatten form equals flat.
// On success the cursor moves to the end of the span. It reports false when
// flat is empty or does not occur in the rest of the source.
func (c *Cursor) Locate(flat string) (Match, bool) {
	if flat == "" {
		return Match{}, false
	}

	rest := c.src[c.pos:]

	// norm is Flatten(rest); starts and ends map each byte of norm back to the
	// source rune it came from.
	var norm strings.Builder
	starts := make([]int, 0, len(rest))
	ends := make([]int, 0, len(rest))

	for i := 0; i < len(rest); {
		r, size := utf8.DecodeRuneInString(rest[i:])
		if !unicode.IsSpace(r) {
			n, _ := norm.WriteRune(unicode.ToLower(r))
			for range n {
				starts = append(starts, i)
				ends = append(ends, i+size)
			}
		}
		i += size
	}

	idx := strings.Index(norm.String(), flat)
	if idx < 0 {
		return Match{}, false
	}

	start := c.pos + starts[idx]
	end := c.pos + ends[idx+len(flat)-1]
	c.pos = end

	return Match{
		Text:   c.src[start:end],
		Indent: c.column(start),
	}, true
}

// OnOwnLine finds fragment verbatim after the cursor and reports whether only
// whitespace precedes it on its source line. The cursor moves past the fragment.
// A fragment that cannot be found is reported as inline.
func (c *Cursor) OnOwnLine(fragment string) bool {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return false
	}

	idx := strings.Index(c.src[c.pos:], fragment)
	if idx < 0 {
		return false
	}

	start := c.pos + idx
	c.pos = start + len(fragment)

	lineStart := strings.LastIndexByte(c.src[:start], '\n') + 1
	return strings.TrimSpace(c.src[lineStart:start]) == ""
}

// column returns the number of characters between the start of the source line
// containing offset and offset itself.
func (c *Cursor) column(offset int) int {
	lineStart := strings.LastIndexByte(c.src[:offset], '\n') + 1
	return utf8.RuneCountInString(c.src[lineStart:offset])
}

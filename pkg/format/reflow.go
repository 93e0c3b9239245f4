package format

import (
	"strings"

	"github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
	"github.com/pkg/errors"
)

// reflowThreshold is the width at which a line is replaced by its original text.
const reflowThreshold = 60

// reflow replaces every long line with the matching text of the original
// statement. Lines are matched in order against an advancing cursor, so
// repeated fragments resolve to successive occurrences.
func (l *layout) reflow() {
	src := sqlutil.NewCursor(l.query)

	for i, line := range l.lines {
		text := strings.TrimSpace(line)
		if sqlutil.Width(text) < reflowThreshold {
			continue
		}

		lead := ""
		if strings.HasPrefix(text, "(") || strings.HasPrefix(text, ")") {
			lead, text = text[:1], strings.TrimSpace(text[1:])
		}

		first := sqlutil.FirstWord(text)
		if strings.HasPrefix(first, "/*") || strings.HasPrefix(first, "--") {
			continue
		}

		m, ok := src.Locate(sqlutil.Flatten(text))
		if !ok {
			l.err = errors.Wrapf(ErrReflowUnrecoverable, "line %d: %q", i+1, text)
			return
		}

		// The layout line already holds a multi-line literal verbatim.
		if l.opaque(m.Text).multiline(m.Text) {
			continue
		}

		indent := sqlutil.LineIndent(line)
		cont := indent
		if l.grammar.IsReserved(first) {
			cont += sqlutil.Width(first) + 1
		}

		l.lines[i] = sqlutil.Rebuild(indent, cont, m.Indent, lead+m.Text)
	}
}

// mergeTrailingCloser drops trailing blank lines and attaches a final line
// holding only a closer or separator to the line before it.
func (l *layout) mergeTrailingCloser() {
	for len(l.lines) > 1 && l.blank() {
		l.popLine()
	}

	n := len(l.lines)
	if n < 2 {
		return
	}

	switch last := strings.TrimSpace(l.lines[n-1]); last {
	case ")", ");", ";":
		l.lines[n-2] += last
		l.lines = l.lines[:n-1]
	}
}

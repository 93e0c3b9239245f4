package format

import (
	"regexp"
	"strings"

	"github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
)

var wordBreaks = regexp.MustCompile(`\(|\)| `)

func (l *layout) blockComment(value string) {
	resume, inline := l.placeBlockComment(value)

	indent := sqlutil.Width(l.last()) + 2
	rows := strings.Split(value, "\n")

	var b strings.Builder
	b.WriteString(rows[0])
	for _, row := range rows[1:] {
		row = strings.TrimSpace(row)
		b.WriteByte('\n')
		if strings.HasPrefix(row, "*") {
			b.WriteString(sqlutil.Spaces(indent - 1))
		} else {
			b.WriteString(sqlutil.Spaces(indent + 1))
		}
		b.WriteString(row)
	}

	l.appendText(b.String())
	if inline {
		l.pushLine(resume)
		return
	}
	l.newLine(alignRight, value)
}

// placeBlockComment decides where a block comment starts. A comment that
// shared its source line with code is reattached to the last code line; the
// indentation of the line it replaced is returned so code can resume there.
func (l *layout) placeBlockComment(value string) (string, bool) {
	if !l.source.OnOwnLine(value) {
		return l.reattach()
	}

	parts := wordBreaks.Split(strings.TrimSpace(l.last()), -1)
	prev := lastOf(parts)

	switch {
	case !l.grammar.IsReserved(prev) || strings.HasSuffix(prev, ";"):
		l.newLine(alignRight, value)
	case !l.blank():
		l.newLine(alignLeft, value)
	}
	return "", false
}

func (l *layout) lineComment(value string) {
	if !l.source.OnOwnLine(value) {
		resume, ok := l.reattach()
		l.appendText(value)
		if ok {
			l.pushLine(resume)
			return
		}
		l.newLine(alignRight, "")
		return
	}

	indent, ok := l.indentFor(alignRight, "")
	if !ok {
		indent = -1
	}

	text := sqlutil.Spaces(indent+1) + value
	if l.blank() {
		l.setLast(text)
	} else {
		l.pushLine(text)
	}

	l.newLine(alignLeft, "")
}

// reattach drops the blank lines opened after the last code line so that a
// trailing comment continues it. It reports the indentation of the dropped
// line, if any.
func (l *layout) reattach() (string, bool) {
	var (
		resume string
		popped bool
	)
	for len(l.lines) > 1 && l.blank() {
		if !popped {
			resume = l.last()
		}
		l.popLine()
		popped = true
	}

	line := l.last()
	if popped && line != "" && !strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "(") {
		l.appendText(" ")
	}
	return resume, popped
}

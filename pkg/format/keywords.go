package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
)

// inlineAnchor replaces the anchor of a scope whose order by/group by list was
// exploded, so later items line up after it.
const inlineAnchor = "order by"

var connectives = regexp.MustCompile(` and | or | xor `)

// topLevel starts a clause. Statement starting keywords also open a scope at the
// current column. When the keyword directly follows a block comment the comment
// has already started a fresh line, so no line break is forced for a starter.
func (l *layout) topLevel(value string, prepare bool) {
	if !l.grammar.StartsBlock(headWord(value)) {
		l.newLine(alignRight, value)
		l.appendText(value)
		return
	}

	if prepare {
		trimmed := strings.TrimSpace(l.last())
		switch {
		case strings.Contains(l.last(), "union"):
			l.pop()
			l.newLine(alignRight, value)
		case trimmed != "" && strings.HasSuffix(trimmed, ")"):
			l.newLine(alignRight, value)
		}
	}

	l.push(value)
	l.appendText(value)
}

// into stays on the line of insert, returning and merge; anywhere else it is a
// clause of its own (select ... into ...).
func (l *layout) into(value string) {
	line := l.last()
	if strings.Contains(line, "insert") || strings.Contains(line, "returning") || strings.Contains(line, "merge") {
		l.appendText(value)
		return
	}

	l.topLevel(value, true)
}

func (l *layout) newlineWord(value string) {
	line := l.last()
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.Contains(line, "case") && !strings.Contains(line, "when"):
		// case when stays together
	case len(words(trimmed)) > 1 || trimmed == ")":
		l.newLine(alignLeft, value)
	}

	l.appendText(value)
}

func (l *layout) logical(op string) {
	l.trimEnd()
	l.mergeLoneCloser()

	line := l.last()
	joinCondition := strings.Contains(line, " on ") && !strings.Contains(line, " join ")

	if !joinCondition && openBetween(line) {
		l.appendText(" " + op)
		return
	}

	ws := words(line)
	indent := l.logicalIndent(op, line, ws[0])

	switch {
	case len(ws) > 1 && l.grammar.IsLogical(ws[0]) && strings.HasPrefix(ws[1], "(") && !strings.HasSuffix(lastOf(ws), ")"):
		l.appendText(" ")
	case joinCondition:
		l.explodeCondition(line, op)
	case strings.TrimSpace(line) != "" && indent > 0:
		l.pushLine(sqlutil.Spaces(indent))
	}

	l.appendText(op)
}

// logicalIndent picks the column for a logical operator continuing line. It
// lines the operator up with a leading operator, then with when, then with on.
// Failing those it starts a right-aligned line itself and returns -1.
func (l *layout) logicalIndent(op, line, first string) int {
	opWidth := sqlutil.Width(op)

	switch {
	case l.grammar.IsLogical(first):
		return sqlutil.LineIndent(line) + sqlutil.Width(first) - opWidth
	case strings.Contains(line, " when "):
		return sqlutil.Width(line[:strings.Index(line, "when")]) + 4 - opWidth
	case strings.Contains(line, " on(") || strings.Contains(line, " on "):
		i := strings.Index(line, " on(")
		if i < 0 {
			i = strings.Index(line, " on ")
		}
		return sqlutil.Width(line[:i]) + 3 - opWidth
	}

	l.newLine(alignRight, op)
	return -1
}

// explodeCondition puts each sub-expression of a long on condition on its own
// line. Operators are padded to three columns so the expressions line up.
func (l *layout) explodeCondition(line, op string) {
	seps := l.matchesOutside(connectives, line)
	if len(seps) < 3 {
		l.appendText(" ")
		return
	}

	indent := sqlutil.Width(line[:strings.Index(line, "on ")]) + 4
	l.setLast(line[:seps[0][0]])

	for i, sep := range seps {
		end := len(line)
		if i+1 < len(seps) {
			end = seps[i+1][0]
		}

		conn := strings.TrimSpace(line[sep[0]:sep[1]])
		l.pushLine(padOperator(indent, conn) + conn + " " + line[sep[1]:end])
	}

	l.pushLine(padOperator(indent, op))
}

func padOperator(indent int, op string) string {
	return sqlutil.Spaces(indent + max(0, 3-sqlutil.Width(op)))
}

// openBetween reports whether line ends inside a between range still waiting
// for its and.
func openBetween(line string) bool {
	i := strings.Index(line, " between ")
	return i >= 0 && !connectives.MatchString(line[i:])
}

func (l *layout) comma() {
	line := l.last()
	if l.grammar.IsInlineReserved(words(line)[0]) {
		l.commaInline(line)
		return
	}

	l.trimEnd()
	l.appendText(",")
	l.newLine(alignLeft, ",")
}

// commaInline keeps order by/group by lists on one line until a third comma
// shows up, then moves every item to its own line.
func (l *layout) commaInline(line string) {
	items := l.splitOutside(line, ",")
	f := l.top()
	if len(items) <= 2 || f == nil {
		l.trimEnd()
		l.appendText(",")
		return
	}

	l.setLast(strings.TrimRightFunc(items[0], unicode.IsSpace) + ",")
	f.indent++
	f.anchor = inlineAnchor
	l.newLine(alignLeft, ",")

	for _, item := range items[1:] {
		l.appendText(strings.TrimSpace(item) + ",")
		l.newLine(alignLeft, ",")
	}
}

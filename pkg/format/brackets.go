package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
)

const (
	// maxInlineValues is the number of comma separated items an INSERT column or
	// VALUES list may hold and still be collapsed onto one line.
	maxInlineValues = 3
	// maxInlineValuesWidth is the widest INSERT column or VALUES list that is
	// collapsed onto one line.
	maxInlineValuesWidth = 30
	// valuesIndent is the extra indentation of exploded INSERT/VALUES items.
	valuesIndent = 4
)

var (
	unionBoundary = regexp.MustCompile(`\sunion\s`)
	nestedLogic   = regexp.MustCompile(` (and|or|xor|not) `)
)

func (l *layout) openParen(value string) {
	trimmed := strings.TrimSpace(l.last())
	prev := lastOf(words(trimmed))

	switch {
	case value == "case" && strings.HasSuffix(trimmed, "select"):
	case value != "(" && value != "case" && !l.grammar.IsReserved(trimmed):
		l.newLine(alignLeft, value)
	case l.grammar.IsReserved(prev):
		if !strings.HasSuffix(l.last(), " ") {
			l.appendText(" ")
		}
	}

	// Function calls and column lists bind to the preceding word.
	if value == "(" && !l.grammar.KeepsBracketSpace(prev) {
		l.trimEnd()
	}

	l.push(value)
	l.appendText(value)
}

func (l *layout) closeParen(value string) {
	if value != ")" {
		l.newLine(alignRight, value)
		l.pop()
		l.appendText(value)
		return
	}

	if !l.blank() {
		l.trimEnd()
	} else if f := l.top(); f != nil {
		l.setLast(sqlutil.Spaces(f.indent))
	}

	if strings.Contains(l.last(), ")") {
		l.newLine(alignRight, value)
	}

	l.balance()
	l.pop()
	l.appendText(value)
}

// balance inspects the group closed by the ")" about to be written. It scans
// back to the matching "(" and either leaves the lines alone, explodes an
// INSERT/VALUES list or collapses the group onto the opener's line.
func (l *layout) balance() {
	row, col, ok := l.matchingOpen()
	if !ok {
		return
	}

	group := l.lines[row][col:]
	for _, line := range l.lines[row+1:] {
		group += " " + strings.TrimSpace(line)
	}

	opener := sqlutil.FirstWord(l.lines[row])
	first := sqlutil.FirstWord(group)

	switch {
	case l.grammar.StartsBlock(first):
		l.pop()
		return
	case first == "with":
		for range 1 + len(unionBoundary.FindAllStringIndex(group, -1)) {
			l.pop()
		}
		return
	case l.stuck(group):
		return
	case opener == "insert" || opener == "values":
		l.insertValues(row, col, opener, group)
	case !l.grammar.IsReserved(first) && !nestedLogic.MatchString(group):
		l.collapse(row, col, group)
	}
}

// stuck reports whether the lines of group must stay as they are. A line
// comment would swallow whatever is joined after it, and a literal or comment
// running over several lines would lose its line breaks.
func (l *layout) stuck(group string) bool {
	sp := l.opaque(group)
	return sp.has(tokenizer.LineComment) || sp.multiline(group)
}

// matchingOpen finds the "(" matching a ")" appended to the current line.
// Brackets inside literals and comments are not counted.
func (l *layout) matchingOpen() (row, col int, ok bool) {
	depth := 1
	for i := len(l.lines) - 1; i >= 0; i-- {
		line := l.lines[i]
		sp := l.opaque(line)
		for j := len(line) - 1; j >= 0; j-- {
			if sp.covers(j) {
				continue
			}

			switch line[j] {
			case ')':
				depth++
			case '(':
				depth--
			}

			if depth == 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

func (l *layout) insertValues(row, col int, opener, group string) {
	if opener == "values" {
		line := l.lines[row]
		if i := l.indexOutside(line, "values("); i >= 0 {
			l.lines[row] = line[:i] + "values (" + line[i+len("values("):]
			if i < col {
				col++
			}
		}
	}

	if len(l.splitOutside(group, ",")) <= maxInlineValues && sqlutil.Width(group) <= maxInlineValuesWidth {
		l.collapse(row, col, group)
		return
	}

	l.truncate(row)

	// The closer of an exploded column list moves down in front of values.
	if opener == "values" && row > 0 {
		prev := l.lines[row-1]
		i := l.indexOutside(l.lines[row], "values")
		if i >= 0 && i < col && strings.HasSuffix(strings.TrimSpace(prev), ")") && sqlutil.FirstWord(prev) != "insert" {
			prev = strings.TrimRightFunc(prev, unicode.IsSpace)
			l.lines[row-1] = prev[:len(prev)-1]
			l.lines[row] = l.lines[row][:i] + ") " + l.lines[row][i:]
			col += len(") ")
		}
	}

	l.lines[row] = l.lines[row][:col+1]

	indent := valuesIndent
	if len(l.frames) > 1 {
		indent += l.frames[len(l.frames)-2].indent
	}

	items := l.splitOutside(group, ", ")
	items[0] = strings.TrimPrefix(items[0], "(")
	for i, item := range items {
		if i > 0 {
			l.appendText(",")
		}
		l.pushLine(sqlutil.Spaces(indent) + strings.TrimSpace(item))
	}
}

// collapse replaces the lines of a bracketed group with its text joined onto
// the opener's line.
func (l *layout) collapse(row, col int, group string) {
	var joined strings.Builder
	for _, part := range strings.Split(group, "\n") {
		joined.WriteString(strings.TrimSpace(part))
		joined.WriteByte(' ')
	}

	l.lines[row] = strings.TrimRightFunc(l.lines[row][:col]+joined.String(), unicode.IsSpace)
	l.truncate(row)
}

package format

import (
	"strings"
	"unicode"

	"github.com/IKAMTeam/sql-formatter-1/pkg/grammar"
	"github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
)

type (
	// frame is an open clause or bracket scope. Continuation lines of the scope
	// are aligned relative to indent, the column at which anchor was written.
	frame struct {
		anchor string
		indent int
	}

	// layout is the state of a single Format call.
	layout struct {
		grammar   *grammar.Grammar
		tokenizer scanner
		query     string
		tokens    []tokenizer.Token
		index     int
		frames    []*frame
		lines     []string
		source    *sqlutil.Cursor
		err       error
	}

	alignment int
)

const (
	// alignRight ends the new line's first word in the same column as the
	// first word of the frame's anchor.
	alignRight alignment = iota
	// alignLeft starts the new line one column past the frame's anchor.
	alignLeft
)

func newLayout(g *grammar.Grammar, tk scanner, query string, tokens []tokenizer.Token) *layout {
	return &layout{
		grammar:   g,
		tokenizer: tk,
		query:     query,
		tokens:    tokens,
		lines:     []string{""},
		source:    sqlutil.NewCursor(query),
	}
}

func (l *layout) last() string {
	return l.lines[len(l.lines)-1]
}

func (l *layout) setLast(s string) {
	l.lines[len(l.lines)-1] = s
}

func (l *layout) appendText(s string) {
	l.lines[len(l.lines)-1] += s
}

func (l *layout) pushLine(s string) {
	l.lines = append(l.lines, s)
}

func (l *layout) popLine() {
	if len(l.lines) > 1 {
		l.lines = l.lines[:len(l.lines)-1]
	}
}

// truncate drops every line after lines[n].
func (l *layout) truncate(n int) {
	l.lines = l.lines[:n+1]
}

func (l *layout) blank() bool {
	return strings.TrimSpace(l.last()) == ""
}

// trimEnd removes trailing whitespace from the current line. Blank lines keep
// their indentation.
func (l *layout) trimEnd() {
	if !l.blank() {
		l.setLast(strings.TrimRightFunc(l.last(), unicode.IsSpace))
	}
}

// mergeLoneCloser moves a line holding only ")" onto the end of the line
// before it.
func (l *layout) mergeLoneCloser() bool {
	if len(l.lines) < 2 || strings.TrimSpace(l.last()) != ")" {
		return false
	}

	l.popLine()
	l.appendText(")")
	return true
}

func (l *layout) push(anchor string) {
	l.frames = append(l.frames, &frame{anchor: anchor, indent: sqlutil.Width(l.last())})
}

func (l *layout) pop() {
	if len(l.frames) > 0 {
		l.frames = l.frames[:len(l.frames)-1]
	}
}

func (l *layout) top() *frame {
	if len(l.frames) == 0 {
		return nil
	}
	return l.frames[len(l.frames)-1]
}

// indentFor returns the column a new line anchored on word starts at. It
// reports false when no scope is open.
func (l *layout) indentFor(align alignment, word string) (int, bool) {
	f := l.top()
	if f == nil {
		return 0, false
	}

	if align == alignLeft {
		return f.indent + sqlutil.Width(f.anchor) + 1, true
	}

	if word == ")" {
		return f.indent - 1, true
	}
	return f.indent + max(0, sqlutil.Width(headWord(f.anchor))-sqlutil.Width(headWord(word))), true
}

// newLine starts a new line aligned against the innermost scope. A blank
// current line is reused rather than left behind.
func (l *layout) newLine(align alignment, word string) {
	if !l.mergeLoneCloser() {
		l.trimEnd()
	}

	indent, ok := l.indentFor(align, word)
	if !ok {
		if l.blank() {
			l.setLast("")
		} else {
			l.pushLine("")
		}
		return
	}

	if l.blank() {
		l.setLast(sqlutil.Spaces(indent))
	} else {
		l.pushLine(sqlutil.Spaces(indent))
	}
}

// headWord returns the text of s before its first space.
func headWord(s string) string {
	head, _, _ := strings.Cut(s, " ")
	return strings.TrimSpace(head)
}

// words splits the trimmed line on single spaces. The result always has at
// least one element.
func words(line string) []string {
	return strings.Split(strings.TrimSpace(line), " ")
}

func lastOf(ws []string) string {
	return ws[len(ws)-1]
}

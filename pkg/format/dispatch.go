package format

import (
	"strings"

	"github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
)

// run lays out every token and then reflows long lines. The returned lines are
// not trimmed.
func (l *layout) run() ([]string, error) {
	for l.index = 0; l.index < len(l.tokens); l.index++ {
		tok := l.tokens[l.index]
		tok.Value = sqlutil.FoldCase(tok, l.grammar)
		l.tokens[l.index] = tok

		l.dispatch(tok)
		if l.err != nil {
			return nil, l.err
		}
	}

	l.reflow()
	if l.err != nil {
		return nil, l.err
	}

	l.mergeTrailingCloser()
	return l.lines, nil
}

// dispatch applies the first rule matching tok. The order of the cases matters:
// value based rules (logical operators, into) take precedence over the generic
// reserved word rule.
func (l *layout) dispatch(tok tokenizer.Token) {
	value := tok.Value

	if strings.HasPrefix(value, ".") && value != ".." {
		l.trimEnd()
	}

	switch {
	case tok.Kind == tokenizer.Whitespace:
		l.whitespace()
	case tok.Kind == tokenizer.LineComment:
		l.lineComment(value)
	case tok.Kind == tokenizer.BlockComment:
		l.blockComment(value)
	case tok.Kind == tokenizer.TopLevel:
		l.topLevel(value, !l.afterBlockComment())
	case tok.Kind == tokenizer.Newline:
		l.newlineWord(value)
	case l.grammar.IsLogical(value):
		l.logical(value)
	case value == "into":
		l.into(value)
	case tok.Kind == tokenizer.Reserved:
		l.withSpaces(value)
	case tok.Kind == tokenizer.OpenParen:
		l.openParen(value)
	case tok.Kind == tokenizer.CloseParen:
		l.closeParen(value)
	case tok.Kind == tokenizer.Placeholder:
		l.appendText(value)
	case value == ",":
		l.comma()
	case value == ":":
		l.trimEnd()
		l.appendText(value + " ")
	case value == "." || value == "%":
		l.trimEnd()
		l.appendText(value)
	case value == ";":
		l.separator(value)
	default:
		l.withSpaces(value)
	}
}

// whitespace collapses any run of whitespace to a single space. Nothing is
// added to an empty line or after a space or an opening bracket.
func (l *layout) whitespace() {
	line := l.last()
	if line == "" || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "(") {
		return
	}
	l.appendText(" ")
}

func (l *layout) withSpaces(value string) {
	if strings.HasSuffix(value, ".") {
		l.appendText(value)
		return
	}
	l.appendText(value + " ")
}

// separator ends a statement: the innermost scope is closed and the next
// statement starts on a new line.
func (l *layout) separator(value string) {
	l.pop()
	l.trimEnd()
	l.appendText(value)
	l.newLine(alignLeft, value)
}

// afterBlockComment reports whether the closest non-whitespace token before
// the current one is a block comment.
func (l *layout) afterBlockComment() bool {
	for i := l.index - 1; i >= 0; i-- {
		switch l.tokens[i].Kind {
		case tokenizer.Whitespace:
			continue
		case tokenizer.BlockComment:
			return true
		}
		return false
	}
	return false
}

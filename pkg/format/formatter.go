package format

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/IKAMTeam/sql-formatter-1/pkg/grammar"
	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
	"github.com/pkg/errors"
)

// ErrReflowUnrecoverable is the cause reported when a long output line cannot be
// located in the original statement.
var ErrReflowUnrecoverable = errors.New("line not found in original statement")

type (
	// Formatter formats statements with a fixed grammar. A Formatter is immutable
	// after construction and safe for concurrent use.
	Formatter struct {
		grammar   *grammar.Grammar
		tokenizer scanner
		logger    *slog.Logger
	}

	// scanner is the part of a tokenizer.Tokenizer used for layout.
	scanner interface {
		Tokenize(input string) ([]tokenizer.Token, error)
		Opaque(input string) ([]tokenizer.Span, error)
	}

	// Option customizes a Formatter built by New.
	Option func(*Formatter)
)

// WithGrammar sets the grammar used for tokenizing and layout. The default is
// grammar.PLSQL().
func WithGrammar(g *grammar.Grammar) Option {
	return func(f *Formatter) {
		if g != nil {
			f.grammar = g
		}
	}
}

// WithLogger sets the logger used to report statements that were returned
// unformatted. The default is slog.Default() at the time of the call.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = l
	}
}

// New creates a Formatter. It fails only when the grammar cannot be compiled
// into a tokenizer.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{grammar: grammar.PLSQL()}
	for _, opt := range opts {
		opt(f)
	}

	tk, err := tokenizer.New(f.grammar)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tokenizer")
	}

	f.tokenizer = tk
	return f, nil
}

var defaultFormatter = sync.OnceValue(func() *Formatter {
	f, err := New()
	if err != nil {
		panic(err)
	}
	return f
})

// Default returns the shared formatter for the PL/SQL grammar.
func Default() *Formatter {
	return defaultFormatter()
}

// Format formats a single statement with the default formatter.
func Format(query string) string {
	return Default().Format(query)
}

// FormatLines formats a single statement with the default formatter and
// returns the output lines.
func FormatLines(query string) []string {
	return Default().FormatLines(query)
}

// Format returns the formatted statement with surrounding whitespace trimmed,
// or query unchanged when it cannot be formatted safely.
func (f *Formatter) Format(query string) string {
	lines, err := f.render(query)
	if err != nil {
		f.log().Debug("Returning statement unformatted", "error", err)
		return query
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// FormatLines is Format split into lines. When the statement cannot be
// formatted the original lines are returned.
func (f *Formatter) FormatLines(query string) []string {
	lines, err := f.render(query)
	if err != nil {
		f.log().Debug("Returning statement unformatted", "error", err)
		return strings.Split(query, "\n")
	}

	return strings.Split(strings.TrimSpace(strings.Join(lines, "\n")), "\n")
}

func (f *Formatter) render(query string) ([]string, error) {
	tokens, err := f.tokenizer.Tokenize(query)
	if err != nil {
		return nil, err
	}

	return newLayout(f.grammar, f.tokenizer, query, tokens).run()
}

func (f *Formatter) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return slog.Default()
}

package format

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type (
	// failingScanner cannot tokenize anything.
	failingScanner struct{ *tokenizer.Tokenizer }

	// staleScanner tokenizes a fixed statement instead of its input, so long
	// lines of the layout never occur in the statement being formatted.
	staleScanner struct{ *tokenizer.Tokenizer }
)

func (failingScanner) Tokenize(string) ([]tokenizer.Token, error) {
	return nil, errors.New("lexer failure")
}

func (s staleScanner) Tokenize(string) ([]tokenizer.Token, error) {
	return s.Tokenizer.Tokenize("select some_really_long_column_name || another_really_long_column_name as x from t")
}

func TestFormatter_Unformatted(t *testing.T) {
	query := "select a\nFROM t  \n"

	tests := []struct {
		name    string
		scanner func(*tokenizer.Tokenizer) scanner
		reason  string
	}{
		{
			name:    "tokenizer error",
			scanner: func(tk *tokenizer.Tokenizer) scanner { return failingScanner{tk} },
			reason:  "lexer failure",
		},
		{
			name:    "long line not in statement",
			scanner: func(tk *tokenizer.Tokenizer) scanner { return staleScanner{tk} },
			reason:  ErrReflowUnrecoverable.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			f, err := New(WithLogger(logger))
			require.NoError(t, err)

			tk, err := tokenizer.New(f.grammar)
			require.NoError(t, err)
			f.tokenizer = tt.scanner(tk)

			require.Equal(t, query, f.Format(query))
			require.Equal(t, strings.Split(query, "\n"), f.FormatLines(query))
			require.Equal(t, 2, strings.Count(buf.String(), "Returning statement unformatted"))
			require.Contains(t, buf.String(), tt.reason)
		})
	}
}

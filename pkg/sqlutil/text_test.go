package sqlutil_test

import (
	"testing"

	"github.com/IKAMTeam/sql-formatter-1/pkg/grammar"
	. "github.com/IKAMTeam/sql-formatter-1/pkg/sqlutil"
	"github.com/IKAMTeam/sql-formatter-1/pkg/tokenizer"
	"github.com/stretchr/testify/require"
)

func TestFoldCase(t *testing.T) {
	g := grammar.PLSQL()

	tests := []struct {
		name string
		tok  tokenizer.Token
		want string
	}{
		{"top level", tokenizer.Token{Kind: tokenizer.TopLevel, Value: "SELECT"}, "select"},
		{"multi word", tokenizer.Token{Kind: tokenizer.TopLevel, Value: "GROUP \n  BY"}, "group by"},
		{"newline", tokenizer.Token{Kind: tokenizer.Newline, Value: "Then"}, "then"},
		{"reserved", tokenizer.Token{Kind: tokenizer.Reserved, Value: "AND"}, "and"},
		{"open paren", tokenizer.Token{Kind: tokenizer.OpenParen, Value: "CASE"}, "case"},
		{"close paren", tokenizer.Token{Kind: tokenizer.CloseParen, Value: "END"}, "end"},
		{"xor word", tokenizer.Token{Kind: tokenizer.Word, Value: "XOR"}, "xor"},
		{"identifier", tokenizer.Token{Kind: tokenizer.Word, Value: "MyTable"}, "MyTable"},
		{"string", tokenizer.Token{Kind: tokenizer.Word, Value: "'ABC'"}, "'ABC'"},
		{"comment", tokenizer.Token{Kind: tokenizer.LineComment, Value: "-- KEEP"}, "-- KEEP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FoldCase(tt.tok, g))
		})
	}
}

func TestFirstWord(t *testing.T) {
	tests := map[string]string{
		"select a, b":        "select",
		"   from t":          "from",
		"(select 1":          "select",
		"((a = 1":            "a",
		"values(1, 2":        "values",
		"insert into t(a, b": "insert",
		"f(x) = 1":           "f",
		"a,":                 "a",
		"/* note */":         "/*",
		"--comment":          "--comment",
		"":                   "",
		"   ":                "",
	}

	for input, want := range tests {
		require.Equal(t, want, FirstWord(input), "input: %q", input)
	}
}

func TestFlatten(t *testing.T) {
	require.Equal(t, "selecta,bfromt", Flatten("SELECT a,\n       b\n  FROM t"))
	require.Equal(t, "'abc'", Flatten(" 'A B C' "))
	require.Equal(t, "", Flatten(" \t\n"))
}

func TestLineIndent(t *testing.T) {
	require.Equal(t, 0, LineIndent("select"))
	require.Equal(t, 4, LineIndent("    from"))
	require.Equal(t, 2, LineIndent("\t from"))
	require.Equal(t, 3, LineIndent("   "))
}

func TestWidth(t *testing.T) {
	require.Equal(t, 6, Width("select"))
	require.Equal(t, 4, Width("名前"))
}

func TestSpaces(t *testing.T) {
	require.Equal(t, "", Spaces(-1))
	require.Equal(t, "", Spaces(0))
	require.Equal(t, "   ", Spaces(3))
}

func TestRebuild(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		require.Equal(t, "  WHERE a = 1", Rebuild(2, 8, 0, "WHERE a = 1"))
	})

	t.Run("continuation lines keep relative indent", func(t *testing.T) {
		text := "WHERE a = 1\n      AND b = 2\n          OR c = 3"
		want := " WHERE a = 1\n   AND b = 2\n       OR c = 3"
		require.Equal(t, want, Rebuild(1, 3, 6, text))
	})

	t.Run("lines left of the origin are clamped", func(t *testing.T) {
		text := "x = 1\nAND y = 2"
		require.Equal(t, "    x = 1\n      AND y = 2", Rebuild(4, 6, 4, text))
	})

	t.Run("blank lines stay empty", func(t *testing.T) {
		require.Equal(t, "a\n\n  b", Rebuild(0, 2, 0, "a\n   \nb"))
	})
}

// Package tokenizer splits SQL and PL/SQL statements into classified tokens.
//
// The tokenizer is a thin layer over participle's regex lexer. Rules are tried
// in a fixed priority order and the first match wins: whitespace, comments,
// strings, bracket-equivalent keywords, placeholders, numbers, top-level
// keywords, newline keywords, plain reserved words, words and operators. The
// keyword tables come from a grammar.Grammar.
//
// Every byte of the input belongs to exactly one token, so joining the values of
// the returned tokens reproduces the input.
//
//	tk, err := tokenizer.New(grammar.PLSQL())
//	if err != nil {
//		return err
//	}
//
//	tokens, err := tk.Tokenize("SELECT a FROM t")
package tokenizer

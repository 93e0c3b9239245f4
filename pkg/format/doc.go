// Package format lays out PL/SQL statements as canonically indented, multi-line
// text.
//
// The formatter never parses SQL. It walks the token stream produced by the
// tokenizer package once, left to right, and builds a line buffer guided by
// keyword and bracket structure:
//   - Clause keywords (select, from, where, ...) start right-aligned lines so
//     the keywords of a statement line up on their last character
//   - Commas, newline keywords and logical operators open continuation lines
//   - Brackets track a stack of indent frames; short bracketed groups are
//     collapsed back onto one line and long INSERT/VALUES lists are exploded
//     to one item per line
//   - Lines that end up 60 columns or wider are re-read from the original
//     source so that their casing and spacing survive verbatim
//
// Formatting never fails from the caller's point of view. When a line cannot
// be recovered from the source the original statement is returned unchanged.
//
// Usage:
//
//	// Package level helpers use the default PL/SQL grammar
//	out := format.Format("SELECT a, b FROM t WHERE a = 1 AND b = 2")
//
//	// A formatter with an extended grammar
//	g := grammar.PLSQL().Extend(grammar.Words{TopLevelWords: []string{"QUALIFY"}})
//	f, err := format.New(format.WithGrammar(g))
//	if err != nil {
//		return err
//	}
//	lines := f.FormatLines(query)
//
// Output of the first example:
//
//	select a,
//	       b
//	  from t
//	 where a = 1
//	   and b = 2
package format

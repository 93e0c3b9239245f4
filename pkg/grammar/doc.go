// Package grammar holds the static word tables that drive tokenization and layout.
//
// A Grammar is pure data: reserved words, clause-starting phrases (top-level
// words), newline-only phrases, quoting styles, bracket-equivalent keywords,
// placeholder and comment markers. On top of the lexical tables it carries the
// layout lists consulted by the format package: statement starters, the clauses
// whose comma lists stay inline, the logical operators, and the words that keep a
// space before a following bracket.
//
// Usage:
//
//	g := grammar.PLSQL()
//	g.IsReserved("select") // true
//
//	// Add project-specific keywords
//	g = g.Extend(grammar.Words{TopLevelWords: []string{"QUALIFY"}})
//
// All lookups are case-insensitive.
package grammar

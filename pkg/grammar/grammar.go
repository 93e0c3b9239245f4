package grammar

import (
	"slices"
	"strings"
)

type (
	// Grammar holds the word lists and lexical markers that drive tokenization and
	// layout. A Grammar is read-only once built; use Extend to derive a new one.
	Grammar struct {
		// ReservedWords are plain keywords that never start a new line on their own.
		ReservedWords []string
		// TopLevelWords are clause-starting phrases (SELECT, FROM, GROUP BY, ...).
		TopLevelWords []string
		// NewlineWords are phrases that start a new line without opening a scope.
		NewlineWords []string
		// StringTypes are the quoting styles recognized as string literals.
		StringTypes []string
		// OpenParens and CloseParens are the bracket-equivalent tokens.
		OpenParens  []string
		CloseParens []string
		// IndexedPlaceholders and NamedPlaceholders are bind variable prefixes.
		IndexedPlaceholders []string
		NamedPlaceholders   []string
		// LineComments are the markers that start a comment running to end of line.
		LineComments []string
		// SpecialWordChars are allowed inside identifiers besides letters and digits.
		SpecialWordChars []string

		// BlockStarters are the first words of clauses that start a full statement.
		BlockStarters []string
		// InlineReserved are clause words whose comma lists stay inline until they grow.
		InlineReserved []string
		// LogicalOperators are the boolean connectives aligned by the layout engine.
		LogicalOperators []string
		// BracketSpaced are words that keep a space before a following "(".
		BracketSpaced []string

		reserved map[string]struct{}
		starters map[string]struct{}
		logical  map[string]struct{}
		spaced   map[string]struct{}
		inline   map[string]struct{}
	}

	// Words are additional keywords merged into a Grammar by Extend.
	Words struct {
		ReservedWords []string `yaml:"reserved_words,omitempty"`
		TopLevelWords []string `yaml:"toplevel_words,omitempty"`
		NewlineWords  []string `yaml:"newline_words,omitempty"`
	}
)

// IsReserved reports whether word is a plain reserved word. The check ignores case.
func (g *Grammar) IsReserved(word string) bool {
	return contains(g.reserved, word)
}

// StartsBlock reports whether word begins a full statement (select, insert, ...).
func (g *Grammar) StartsBlock(word string) bool {
	return contains(g.starters, word)
}

// IsLogical reports whether word is a logical operator (and, or, xor).
func (g *Grammar) IsLogical(word string) bool {
	return contains(g.logical, word)
}

// IsInlineReserved reports whether word opens a clause whose comma list is kept
// on one line while it is short (order by, group by).
func (g *Grammar) IsInlineReserved(word string) bool {
	return contains(g.inline, word)
}

// KeepsBracketSpace reports whether a "(" following word stays separated by a space.
func (g *Grammar) KeepsBracketSpace(word string) bool {
	return contains(g.spaced, word)
}

// Extend returns a copy of the grammar with the extra words appended.
func (g *Grammar) Extend(w Words) *Grammar {
	ext := *g
	ext.ReservedWords = appendUnique(slices.Clone(g.ReservedWords), w.ReservedWords)
	ext.TopLevelWords = appendUnique(slices.Clone(g.TopLevelWords), w.TopLevelWords)
	ext.NewlineWords = appendUnique(slices.Clone(g.NewlineWords), w.NewlineWords)
	ext.BracketSpaced = appendUnique(slices.Clone(g.BracketSpaced), w.TopLevelWords)
	ext.BracketSpaced = appendUnique(ext.BracketSpaced, w.NewlineWords)
	ext.index()
	return &ext
}

func (g *Grammar) index() {
	g.reserved = toSet(g.ReservedWords)
	g.starters = toSet(g.BlockStarters)
	g.logical = toSet(g.LogicalOperators)
	g.spaced = toSet(g.BracketSpaced)
	g.inline = toSet(g.InlineReserved)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return set
}

func contains(set map[string]struct{}, word string) bool {
	if word == "" {
		return false
	}
	_, ok := set[strings.ToUpper(word)]
	return ok
}

func appendUnique(dst, extra []string) []string {
	for _, w := range extra {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" && !slices.Contains(dst, w) {
			dst = append(dst, w)
		}
	}
	return dst
}

package tokenizer

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/IKAMTeam/sql-formatter-1/pkg/grammar"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Kind classifies a token for the layout engine.
type Kind int

const (
	Whitespace Kind = iota
	LineComment
	BlockComment
	TopLevel
	Newline
	Reserved
	OpenParen
	CloseParen
	Placeholder
	Word
)

var kindNames = [...]string{
	Whitespace:   "Whitespace",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	TopLevel:     "TopLevel",
	Newline:      "Newline",
	Reserved:     "Reserved",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	Placeholder:  "Placeholder",
	Word:         "Word",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

type (
	// Token is a single classified lexical unit of a statement.
	Token struct {
		Kind  Kind
		Value string
	}

	// Span is the byte range [Start, End) of a single token within the scanned
	// text.
	Span struct {
		Kind       Kind
		Start, End int
	}

	// Tokenizer splits statements into tokens according to a grammar.
	// A Tokenizer is immutable and safe for concurrent use.
	Tokenizer struct {
		def    *lexer.StatefulDefinition
		kinds  map[lexer.TokenType]Kind
		opaque map[lexer.TokenType]bool
	}
)

// ruleKinds maps lexer rule names to the kind each one produces.
var ruleKinds = map[string]Kind{
	"Whitespace":       Whitespace,
	"LineComment":      LineComment,
	"BlockComment":     BlockComment,
	"String":           Word,
	"OpenParen":        OpenParen,
	"CloseParen":       CloseParen,
	"Placeholder":      Placeholder,
	"Number":           Word,
	"ReservedTopLevel": TopLevel,
	"ReservedNewline":  Newline,
	"Reserved":         Reserved,
	"Word":             Word,
	"Operator":         Word,
}

// opaqueRules are the rules whose tokens may hold brackets, commas, keywords or
// line breaks that belong to their text rather than to the statement.
var opaqueRules = []string{"LineComment", "BlockComment", "String", "Placeholder"}

var stringPatterns = map[string]string{
	"``":   "(?:`[^`]*(?:$|`))+",
	"[]":   `(?:\[[^\]]*(?:$|\]))(?:\][^\]]*(?:$|\]))*`,
	`""`:   `(?:"[^"\\]*(?:\\.[^"\\]*)*(?:"|$))+`,
	"''":   `(?:'[^'\\]*(?:\\.[^'\\]*)*(?:'|$))+`,
	"N''":  `(?:N'[^'\\]*(?:\\.[^'\\]*)*(?:'|$))+`,
	"E''":  `(?:E'[^'\\]*(?:\\.[^'\\]*)*(?:'|$))+`,
	"$$":   `(?:\$\$[\s\S]*?(?:\$\$|$))`,
	"q''":  `(?:[qQ]'\[[\s\S]*?(?:\]'|$))`,
	"X''":  `(?:[xX]'[0-9a-fA-F]*(?:'|$))`,
	"B''":  `(?:[bB]'[01]*(?:'|$))`,
	"U&''": `(?:U&'[^'\\]*(?:\\.[^'\\]*)*(?:'|$))`,
}

// New compiles a tokenizer for the grammar.
func New(g *grammar.Grammar) (*Tokenizer, error) {
	rules, err := buildRules(g)
	if err != nil {
		return nil, err
	}

	def, err := lexer.NewSimple(rules)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile tokenizer rules")
	}

	kinds := make(map[lexer.TokenType]Kind, len(ruleKinds))
	for name, typ := range def.Symbols() {
		if kind, ok := ruleKinds[name]; ok {
			kinds[typ] = kind
		}
	}

	symbols := def.Symbols()
	opaque := make(map[lexer.TokenType]bool, len(opaqueRules))
	for _, name := range opaqueRules {
		if typ, ok := symbols[name]; ok {
			opaque[typ] = true
		}
	}

	return &Tokenizer{def: def, kinds: kinds, opaque: opaque}, nil
}

// Tokenize splits input into tokens. Concatenating the token values yields input.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	lex, err := t.def.LexString("", input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start lexer")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize input")
	}

	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}

		kind := t.kinds[tok.Type]

		// A keyword right after a "." token is a member name.
		if isKeyword(kind) && lastValue(tokens) == "." {
			kind = Word
		}

		tokens = append(tokens, Token{Kind: kind, Value: tok.Value})
	}

	return tokens, nil
}

// Opaque returns the spans of input covered by string literals, comments and
// placeholders, in order.
func (t *Tokenizer) Opaque(input string) ([]Span, error) {
	lex, err := t.def.LexString("", input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start lexer")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize input")
	}

	var (
		spans  []Span
		offset int
	)

	for _, tok := range raw {
		if tok.EOF() {
			break
		}

		end := offset + len(tok.Value)
		if t.opaque[tok.Type] {
			spans = append(spans, Span{Kind: t.kinds[tok.Type], Start: offset, End: end})
		}
		offset = end
	}

	return spans, nil
}

func isKeyword(k Kind) bool {
	return k == TopLevel || k == Newline || k == Reserved
}

func lastValue(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1].Value
}

func buildRules(g *grammar.Grammar) ([]lexer.SimpleRule, error) {
	strs := make([]string, 0, len(g.StringTypes))
	for _, st := range g.StringTypes {
		p, ok := stringPatterns[st]
		if !ok {
			return nil, errors.Errorf("unsupported string type: %s", st)
		}
		strs = append(strs, p)
	}

	rules := []lexer.SimpleRule{{Name: "Whitespace", Pattern: `\s+`}}
	if len(g.LineComments) > 0 {
		rules = append(rules, lexer.SimpleRule{Name: "LineComment", Pattern: `(?:` + alternation(g.LineComments) + `)[^\r\n]*`})
	}
	rules = append(rules, lexer.SimpleRule{Name: "BlockComment", Pattern: `/\*[\s\S]*?(?:\*/|$)`})

	if len(strs) > 0 {
		rules = append(rules, lexer.SimpleRule{Name: "String", Pattern: strings.Join(strs, "|")})
	}

	rules = append(rules,
		lexer.SimpleRule{Name: "OpenParen", Pattern: parens(g.OpenParens)},
		lexer.SimpleRule{Name: "CloseParen", Pattern: parens(g.CloseParens)},
	)

	var placeholders []string
	if len(g.IndexedPlaceholders) > 0 {
		placeholders = append(placeholders, `(?:`+alternation(g.IndexedPlaceholders)+`)[0-9]*`)
	}
	if len(g.NamedPlaceholders) > 0 {
		named := alternation(g.NamedPlaceholders)
		placeholders = append(placeholders, `(?:`+named+`)[a-zA-Z0-9._$]+`)
		if len(strs) > 0 {
			placeholders = append(placeholders, `(?:`+named+`)(?:`+strings.Join(strs, "|")+`)`)
		}
	}
	if len(placeholders) > 0 {
		rules = append(rules, lexer.SimpleRule{Name: "Placeholder", Pattern: strings.Join(placeholders, "|")})
	}

	rules = append(rules,
		lexer.SimpleRule{Name: "Number", Pattern: `(?:(?:-\s*)?[0-9]+(?:\.[0-9]+)?|0x[0-9a-fA-F]+|0b[01]+)\b`},
		lexer.SimpleRule{Name: "ReservedTopLevel", Pattern: keywords(g.TopLevelWords)},
		lexer.SimpleRule{Name: "ReservedNewline", Pattern: keywords(g.NewlineWords)},
		lexer.SimpleRule{Name: "Reserved", Pattern: keywords(g.ReservedWords)},
		lexer.SimpleRule{Name: "Word", Pattern: `[\p{L}\p{N}\p{M}_` + charClass(g.SpecialWordChars) + `]+`},
		lexer.SimpleRule{Name: "Operator", Pattern: `:=|=>|!=|<>|==|<=|>=|!<|!>|\|\||::|->>|->|~~\*|~~|!~~\*|!~~|~\*|!~\*|!~|[\s\S]`},
	)

	return rules, nil
}

// keywords builds a case-insensitive whole-word pattern. Longer phrases come
// first so that "UNION ALL" wins over "UNION".
func keywords(words []string) string {
	if len(words) == 0 {
		return `[^\s\S]`
	}

	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	parts := make([]string, 0, len(sorted))
	for _, w := range sorted {
		fields := strings.Fields(w)
		for i, f := range fields {
			fields[i] = regexp.QuoteMeta(f)
		}
		parts = append(parts, strings.Join(fields, `\s+`))
	}

	return `(?i:(?:` + strings.Join(parts, "|") + `)\b)`
}

func parens(parens []string) string {
	parts := make([]string, 0, len(parens))
	for _, p := range parens {
		if len(p) == 1 {
			parts = append(parts, regexp.QuoteMeta(p))
		} else {
			parts = append(parts, `\b`+regexp.QuoteMeta(p)+`\b`)
		}
	}
	return `(?i:` + strings.Join(parts, "|") + `)`
}

func alternation(markers []string) string {
	parts := make([]string, 0, len(markers))
	for _, m := range markers {
		parts = append(parts, regexp.QuoteMeta(m))
	}
	return strings.Join(parts, "|")
}

func charClass(chars []string) string {
	var b strings.Builder
	for _, c := range chars {
		for _, r := range c {
			if strings.ContainsRune(`\]^-[`, r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Package ecmarex parses ECMAScript regular expression source text into an
// abstract syntax tree. It implements spec.md's three public operations —
// ParseLiteral, ParsePattern, ParseFlags — wiring internal/reader and
// internal/validator (the recursive-descent grammar/semantics checker) to
// internal/ast.Assembler (the event-driven tree builder). It validates
// syntax; it does not match strings against the resulting pattern.
package ecmarex

import (
	"github.com/0x4d5352/ecmarex/internal/ast"
	"github.com/0x4d5352/ecmarex/internal/validator"
)

// Re-exported AST node types, so callers never need to import
// internal/ast directly.
type (
	Node                        = ast.Node
	RegExpLiteral               = ast.RegExpLiteral
	Pattern                     = ast.Pattern
	Alternative                 = ast.Alternative
	Element                     = ast.Element
	Flags                       = ast.Flags
	Group                       = ast.Group
	Modifiers                   = ast.Modifiers
	ModifierFlags               = ast.ModifierFlags
	CapturingGroup              = ast.CapturingGroup
	Quantifier                  = ast.Quantifier
	EdgeAssertion               = ast.EdgeAssertion
	EdgeKind                    = ast.EdgeKind
	WordBoundaryAssertion       = ast.WordBoundaryAssertion
	LookaroundAssertion         = ast.LookaroundAssertion
	AnyCharacterSet             = ast.AnyCharacterSet
	EscapeCharacterSet          = ast.EscapeCharacterSet
	EscapeClassKind             = ast.EscapeClassKind
	UnicodePropertyCharacterSet = ast.UnicodePropertyCharacterSet
	Character                   = ast.Character
	CharacterClassRange         = ast.CharacterClassRange
	ClassElement                = ast.ClassElement
	CharacterClass              = ast.CharacterClass
	ExpressionCharacterClass    = ast.ExpressionCharacterClass
	ClassOperand                = ast.ClassOperand
	ClassIntersection           = ast.ClassIntersection
	ClassSubtraction            = ast.ClassSubtraction
	ClassStringDisjunction      = ast.ClassStringDisjunction
	StringAlternative           = ast.StringAlternative
	Backreference               = ast.Backreference
)

const QuantifierMaxUnbounded = ast.QuantifierMaxUnbounded

const (
	EdgeKindStart = ast.EdgeKindStart
	EdgeKindEnd   = ast.EdgeKindEnd
)

const (
	EscapeClassDigit = ast.EscapeClassDigit
	EscapeClassSpace = ast.EscapeClassSpace
	EscapeClassWord  = ast.EscapeClassWord
)

// Options configures a Parser: strict mode and the target ECMAScript
// edition. A zero Options selects ecmaVersion=2025, strict=false (§6.1).
type Options struct {
	Strict      bool
	ECMAVersion int
}

func (o Options) toValidator() validator.Options {
	return validator.Options{Strict: o.Strict, ECMAVersion: o.ECMAVersion}
}

// PatternOptions additionally selects the `u`/`v` dialect for ParsePattern,
// which (unlike ParseLiteral) has no flags section to read them from.
type PatternOptions struct {
	Unicode     bool
	UnicodeSets bool
}

// Parser parses ECMAScript regex source under a fixed Options. It holds no
// mutable state between calls and is safe to reuse and to share across
// goroutines, even though any single parse it drives is not (§5).
type Parser struct {
	opts Options
}

// NewParser returns a Parser configured with opts.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// ParseLiteral parses source[start:end], which must be a complete
// `/pattern/flags` literal, into a RegExpLiteral.
func (p *Parser) ParseLiteral(source string, start, end int) (*RegExpLiteral, error) {
	a := ast.NewAssembler(source)
	if err := validator.ValidateLiteral(a, source, start, end, p.opts.toValidator()); err != nil {
		return nil, err
	}
	lit := &RegExpLiteral{Pattern: a.Pattern(), Flags: a.Flags()}
	return lit, nil
}

// ParsePattern parses source[start:end] as a bare pattern body (no `/`
// delimiters or flags) under the given dialect.
func (p *Parser) ParsePattern(source string, start, end int, po PatternOptions) (*Pattern, error) {
	a := ast.NewAssembler(source)
	mode := validator.Mode{Unicode: po.Unicode, UnicodeSets: po.UnicodeSets}
	if err := validator.ValidatePattern(a, source, start, end, mode, p.opts.toValidator()); err != nil {
		return nil, err
	}
	return a.Pattern(), nil
}

// ParseFlags parses source[start:end] as a bare flags string (e.g. "gimsuy").
func (p *Parser) ParseFlags(source string, start, end int) (*Flags, error) {
	r, err := validator.ValidateFlags(source, start, end, p.opts.ECMAVersion)
	if err != nil {
		return nil, err
	}
	f := &Flags{
		Global: r.Global, IgnoreCase: r.IgnoreCase, Multiline: r.Multiline, Unicode: r.Unicode,
		Sticky: r.Sticky, DotAll: r.DotAll, HasIndices: r.HasIndices, UnicodeSets: r.UnicodeSets,
	}
	return f, nil
}

// defaultParser backs the package-level convenience functions, which use
// the §6.1 defaults (strict=false, ecmaVersion=2025).
var defaultParser = NewParser(Options{})

// ParseLiteral parses source[0:len(source)] with the default Options.
func ParseLiteral(source string) (*RegExpLiteral, error) {
	return defaultParser.ParseLiteral(source, 0, len(source))
}

// ParsePattern parses source[0:len(source)] with the default Options.
func ParsePattern(source string, po PatternOptions) (*Pattern, error) {
	return defaultParser.ParsePattern(source, 0, len(source), po)
}

// ParseFlags parses source[0:len(source)] with the default Options.
func ParseFlags(source string) (*Flags, error) {
	return defaultParser.ParseFlags(source, 0, len(source))
}

package validator

import (
	"strings"

	"github.com/0x4d5352/ecmarex/ecmaerr"
)

// parseAtom is called once tryParseAssertion has ruled out ^, $, \b, \B,
// and lookaround — everything left is `.`, a character class, a group, an
// escape, or a literal PatternCharacter.
func (v *Validator) parseAtom() {
	switch v.r.Current() {
	case '.':
		start := v.pos()
		v.r.Advance(1)
		v.sink.OnAnyCharacterSet(start, v.pos())
	case '[':
		v.parseCharacterClass()
	case '(':
		v.parseGroup()
	case '\\':
		v.parseAtomEscape()
	default:
		v.parseLiteralCharacter()
	}
}

func (v *Validator) parseLiteralCharacter() {
	c := v.r.Current()
	if c == -1 {
		v.internal(v.pos(), "parseLiteralCharacter called at end of input")
	}
	if isUnquantifiableSyntaxCharacter(c) || (!v.annexB && isAnnexBTolerantSyntaxCharacter(c)) {
		v.fail(v.pos(), ecmaerr.KindInvalidGrammar, "syntax character %q must be escaped", c)
	}
	start := v.pos()
	v.r.Advance(1)
	v.sink.OnCharacter(start, v.pos(), c)
}

// isSyntaxCharacter is the full SyntaxCharacter set used by the
// identity-escape rule (escapes.go): \SyntaxCharacter is always a legal
// escape, in every mode.
func isSyntaxCharacter(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}

// isUnquantifiableSyntaxCharacter reports the subset of SyntaxCharacter
// that can never appear as a literal PatternCharacter, in any mode,
// because each already starts its own production (quantifier prefix,
// group, class, escape, disjunction) wherever it can legally begin a
// Term. A bare `*`, `+`, or `?` — including one immediately following an
// Assertion, which never carries a Quantifier — is always a SyntaxError,
// even under Annex B.
func isUnquantifiableSyntaxCharacter(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', '|':
		return true
	}
	return false
}

// isAnnexBTolerantSyntaxCharacter reports ']', '{', and '}' — forbidden as
// a literal PatternCharacter under strict/unicode/unicodeSets mode, but
// tolerated under Annex B's ExtendedPatternCharacter production.
func isAnnexBTolerantSyntaxCharacter(c rune) bool {
	switch c {
	case ']', '{', '}':
		return true
	}
	return false
}

// parseGroup handles every `(` form: `(?:...)`, `(?<name>...)`,
// `(?ims-ims:...)`/`(?ims-ims)`, and plain `(...)`. Lookaround has already
// been peeled off by tryParseLookaround before this is reached.
func (v *Validator) parseGroup() {
	start := v.pos()
	v.r.Advance(1) // '('
	if v.r.Eat('?') {
		switch {
		case v.r.Eat(':'):
			v.parseNonCapturingGroupBody(start)
		case v.r.Current() == '<' && v.r.Peek(1) != '=' && v.r.Peek(1) != '!':
			if v.opts.ECMAVersion < 2018 {
				v.fail(start, ecmaerr.KindInvalidGrammar, "named capture groups require ecmaVersion 2018 or later")
			}
			v.r.Advance(1) // '<'
			name := v.parseGroupName()
			v.parseCapturingGroupBody(start, name)
		default:
			v.parseModifiersGroup(start)
		}
		return
	}
	v.parseCapturingGroupBody(start, "")
}

func (v *Validator) parseCapturingGroupBody(start int, name string) {
	if name != "" {
		if !v.names.Add(name, v.branches.Current()) {
			v.fail(start, ecmaerr.KindInvalidNamedCapture, "duplicate capture group name %q", name)
		}
	}
	v.groupNum++
	v.sink.OnCapturingGroupEnter(start, name)
	v.parseDisjunction()
	if !v.r.Eat(')') {
		v.fail(v.pos(), ecmaerr.KindUnterminatedGroup, "unterminated group")
	}
	end := v.pos()
	v.sink.OnCapturingGroupLeave(start, end)
}

func (v *Validator) parseNonCapturingGroupBody(start int) {
	v.sink.OnGroupEnter(start)
	v.parseDisjunction()
	if !v.r.Eat(')') {
		v.fail(v.pos(), ecmaerr.KindUnterminatedGroup, "unterminated group")
	}
	end := v.pos()
	v.sink.OnGroupLeave(start, end)
}

// parseModifiersGroup handles the ES2025 `(?ims-ims:...)` and bare
// `(?ims-ims)` forms (§4.2, "inline modifier groups").
func (v *Validator) parseModifiersGroup(start int) {
	if v.opts.ECMAVersion < 2025 {
		v.fail(start, ecmaerr.KindInvalidGrammar, "inline modifier groups require ecmaVersion 2025 or later")
	}
	modStart := v.pos()
	var addI, addM, addS, remI, remM, remS, seenDash bool

loop:
	for {
		switch c := v.r.Current(); c {
		case 'i':
			if seenDash {
				remI = true
			} else {
				addI = true
			}
			v.r.Advance(1)
		case 'm':
			if seenDash {
				remM = true
			} else {
				addM = true
			}
			v.r.Advance(1)
		case 's':
			if seenDash {
				remS = true
			} else {
				addS = true
			}
			v.r.Advance(1)
		case '-':
			if seenDash {
				v.fail(v.pos(), ecmaerr.KindInvalidGrammar, "modifier list may contain at most one '-'")
			}
			seenDash = true
			v.r.Advance(1)
		case ':', ')':
			break loop
		default:
			v.fail(v.pos(), ecmaerr.KindInvalidGrammar, "invalid modifier %q", c)
		}
	}

	if !addI && !addM && !addS && !remI && !remM && !remS {
		v.fail(modStart, ecmaerr.KindInvalidGrammar, "empty modifier list")
	}
	if seenDash && !remI && !remM && !remS {
		v.fail(modStart, ecmaerr.KindInvalidGrammar, "'-' with nothing to remove")
	}
	modEnd := v.pos()

	v.sink.OnGroupEnter(start)
	v.sink.OnModifiersEnter(modStart)
	if addI || addM || addS {
		v.sink.OnAddModifiers(modStart, modEnd, addI, addM, addS)
	}
	if remI || remM || remS {
		v.sink.OnRemoveModifiers(modStart, modEnd, remI, remM, remS)
	}
	v.sink.OnModifiersLeave(modStart, modEnd)

	if v.r.Eat(':') {
		v.parseDisjunction()
	}
	if !v.r.Eat(')') {
		v.fail(v.pos(), ecmaerr.KindUnterminatedGroup, "unterminated group")
	}
	end := v.pos()
	v.sink.OnGroupLeave(start, end)
}

// parseGroupName reads a capture-group or backreference name up to (and
// consuming) the closing '>'. Identifier validation is simplified to ASCII
// letters/digits/_/$ plus any non-ASCII code point (documented in
// DESIGN.md) rather than full ID_Start/ID_Continue Unicode classification.
func (v *Validator) parseGroupName() string {
	nameStart := v.pos()
	var sb strings.Builder
	for {
		if v.r.IsEnd() {
			v.fail(v.pos(), ecmaerr.KindUnterminatedGroup, "unterminated group name")
		}
		c := v.r.Current()
		if c == '>' {
			break
		}
		if c == '\\' {
			val, ok := v.r.EatRegExpUnicodeEscapeSequence(true)
			if !ok {
				v.fail(v.pos(), ecmaerr.KindInvalidEscape, "invalid identifier escape in group name")
			}
			sb.WriteRune(val)
			continue
		}
		sb.WriteRune(c)
		v.r.Advance(1)
	}
	v.r.Advance(1) // '>'
	name := sb.String()
	if name == "" {
		v.fail(nameStart, ecmaerr.KindInvalidNamedCapture, "empty group name")
	}
	if !isValidIdentifierName(name) {
		v.fail(nameStart, ecmaerr.KindInvalidNamedCapture, "invalid group name %q", name)
	}
	return name
}

func isValidIdentifierName(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r > 127:
			// permissive: any non-ASCII code point is accepted as a
			// potential Unicode identifier character.
		default:
			return false
		}
	}
	return true
}

package validator

import "github.com/0x4d5352/ecmarex/ecmaerr"

// tryParseAssertion consumes and emits a zero-width assertion (^, $, \b, \B,
// or a lookaround group) if one starts at the cursor, reporting whether it
// did, and whether the assertion it consumed was specifically a lookahead
// (as opposed to a lookbehind, edge, or word-boundary assertion), plus the
// offset a quantifier following it would attach to. Per §4.2.5, a
// Quantifier never follows an Assertion — except a lookahead under Annex B
// — so only the lookahead case gives the caller a usable start offset.
func (v *Validator) tryParseAssertion() (matched, lookahead bool, start int) {
	switch v.r.Current() {
	case '^':
		start := v.pos()
		v.r.Advance(1)
		v.sink.OnEdgeAssertion(start, v.pos(), '^')
		return true, false, start
	case '$':
		start := v.pos()
		v.r.Advance(1)
		v.sink.OnEdgeAssertion(start, v.pos(), '$')
		return true, false, start
	case '\\':
		switch v.r.Peek(1) {
		case 'b':
			start := v.pos()
			v.r.Advance(2)
			v.sink.OnWordBoundaryAssertion(start, v.pos(), false)
			return true, false, start
		case 'B':
			start := v.pos()
			v.r.Advance(2)
			v.sink.OnWordBoundaryAssertion(start, v.pos(), true)
			return true, false, start
		}
		return false, false, 0
	case '(':
		return v.tryParseLookaround()
	}
	return false, false, 0
}

// tryParseLookaround recognizes the four `(?=`, `(?!`, `(?<=`, `(?<!` forms
// without consuming anything if the cursor isn't actually at one of them —
// a bare `(?<name>` or `(?:`/`(?ims` must fall through to parseGroup.
// Lookbehind requires ecmaVersion 2018 or later (§4.2.1).
func (v *Validator) tryParseLookaround() (matched, lookahead bool, start int) {
	if v.r.Current() != '(' || v.r.Peek(1) != '?' {
		return false, false, 0
	}
	var behind, negate bool
	switch v.r.Peek(2) {
	case '=':
		behind, negate = false, false
	case '!':
		behind, negate = false, true
	case '<':
		switch v.r.Peek(3) {
		case '=':
			behind, negate = true, false
		case '!':
			behind, negate = true, true
		default:
			return false, false, 0
		}
	default:
		return false, false, 0
	}

	assertionStart := v.pos()
	if behind && v.opts.ECMAVersion < 2018 {
		v.fail(assertionStart, ecmaerr.KindInvalidGrammar, "lookbehind assertions require ecmaVersion 2018 or later")
	}
	if behind {
		v.r.Advance(4)
	} else {
		v.r.Advance(3)
	}
	v.sink.OnLookaroundAssertionEnter(assertionStart, behind, negate)
	v.parseDisjunction()
	if !v.r.Eat(')') {
		v.fail(v.pos(), ecmaerr.KindUnterminatedGroup, "unterminated lookaround group")
	}
	end := v.pos()
	v.sink.OnLookaroundAssertionLeave(assertionStart, end)
	return true, !behind, assertionStart
}

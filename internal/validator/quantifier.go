package validator

import "github.com/0x4d5352/ecmarex/ecmaerr"

// unboundedMax mirrors ast.QuantifierMaxUnbounded without importing the ast
// package: the event protocol carries only primitive values.
const unboundedMax = -1

// maybeParseQuantifier consumes a trailing `*`, `+`, `?`, `{n}`, `{n,}`, or
// `{n,m}` (each optionally followed by `?` for lazy matching) and emits
// OnQuantifier wrapping the element whose parse started at start. A `{`
// that cannot complete a quantifier is either a literal (Annex B) or a
// syntax error (strict/unicode/unicodeSets), per §4.2.2.
func (v *Validator) maybeParseQuantifier(start int) {
	braceOffset := v.pos()
	min, max, ok := v.tryEatQuantifierPrefix()
	if !ok {
		if v.r.Current() == '{' && !v.annexB {
			v.fail(braceOffset, ecmaerr.KindInvalidQuantifier, "lone quantifier brace must be escaped")
		}
		return
	}
	greedy := !v.r.Eat('?')
	end := v.pos()
	v.sink.OnQuantifier(start, end, min, max, greedy)
}

// maybeParseQuantifierAfterLookahead consumes a trailing quantifier
// following a lookahead assertion. Quantifying an Assertion is always
// invalid except for this one case: §4.2.5's Annex B carve-out lets a
// lookahead (never a lookbehind, edge, or word-boundary assertion) take a
// Quantifier. So a quantifier found here is legal under Annex B and a
// SyntaxError otherwise.
func (v *Validator) maybeParseQuantifierAfterLookahead(start int) {
	quantStart := v.pos()
	min, max, ok := v.tryEatQuantifierPrefix()
	if !ok {
		if v.r.Current() == '{' && !v.annexB {
			v.fail(quantStart, ecmaerr.KindInvalidQuantifier, "lone quantifier brace must be escaped")
		}
		return
	}
	if !v.annexB {
		v.fail(quantStart, ecmaerr.KindInvalidQuantifier, "a lookahead assertion cannot be quantified outside Annex B")
	}
	greedy := !v.r.Eat('?')
	end := v.pos()
	v.sink.OnQuantifier(start, end, min, max, greedy)
}

func (v *Validator) tryEatQuantifierPrefix() (min, max int, ok bool) {
	switch v.r.Current() {
	case '*':
		v.r.Advance(1)
		return 0, unboundedMax, true
	case '+':
		v.r.Advance(1)
		return 1, unboundedMax, true
	case '?':
		v.r.Advance(1)
		return 0, 1, true
	case '{':
		save := v.r.Offset()
		v.r.Advance(1)
		minV, minCount := v.r.EatDecimalDigits()
		if minCount == 0 {
			v.r.SetOffset(save)
			return 0, 0, false
		}
		if v.r.Eat(',') {
			maxV, maxCount := v.r.EatDecimalDigits()
			if maxCount == 0 {
				if !v.r.Eat('}') {
					v.r.SetOffset(save)
					return 0, 0, false
				}
				return minV, unboundedMax, true
			}
			if !v.r.Eat('}') {
				v.r.SetOffset(save)
				return 0, 0, false
			}
			if maxV < minV {
				v.fail(v.abs(save), ecmaerr.KindInvalidQuantifier, "quantifier range out of order: {%d,%d}", minV, maxV)
			}
			return minV, maxV, true
		}
		if !v.r.Eat('}') {
			v.r.SetOffset(save)
			return 0, 0, false
		}
		return minV, minV, true
	default:
		return 0, 0, false
	}
}

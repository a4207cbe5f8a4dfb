package validator

import "github.com/0x4d5352/ecmarex/ecmaerr"

func (v *Validator) parsePattern() {
	start := v.pos()
	v.sink.OnPatternEnter(start)
	v.parseDisjunction()
	if !v.r.IsEnd() {
		switch v.r.Current() {
		case ')':
			v.fail(v.pos(), ecmaerr.KindInvalidGrammar, "unmatched ')'")
		case ']':
			v.fail(v.pos(), ecmaerr.KindInvalidGrammar, "lone ']' must be escaped")
		default:
			v.fail(v.pos(), ecmaerr.KindInvalidGrammar, "unexpected trailing input")
		}
	}
	end := v.pos()
	v.sink.OnPatternLeave(start, end)
}

func (v *Validator) parseDisjunction() {
	v.branches.EnterDisjunction()
	v.parseAlternative()
	for v.r.Eat('|') {
		v.branches.NextAlternative()
		v.parseAlternative()
	}
	v.branches.LeaveDisjunction()
}

func (v *Validator) parseAlternative() {
	start := v.pos()
	v.sink.OnAlternativeEnter(start)
	for {
		if v.r.IsEnd() {
			break
		}
		c := v.r.Current()
		if c == '|' || c == ')' {
			break
		}
		v.parseTerm()
	}
	end := v.pos()
	v.sink.OnAlternativeLeave(start, end)
}

func (v *Validator) parseTerm() {
	if matched, lookahead, start := v.tryParseAssertion(); matched {
		if lookahead {
			v.maybeParseQuantifierAfterLookahead(start)
		}
		return
	}
	start := v.pos()
	v.parseAtom()
	v.maybeParseQuantifier(start)
}

package validator

import "github.com/0x4d5352/ecmarex/ecmaerr"

// parseClassSetExpression implements the `v`-flag character class grammar
// (§4.2.6): a ClassUnion, optionally followed by a chain of `&&` operators
// or a chain of `--` operators (never both within the same class). Each
// operator application emits OnClassIntersection/OnClassSubtraction, which
// the assembler interprets as "combine the operands appended since the
// last operator (or the buffered operator subtree, on a repeat call)".
func (v *Validator) parseClassSetExpression() {
	opStart := v.pos()
	beforeOffset := v.r.Offset()
	v.parseClassUnion()
	if v.r.Offset() == beforeOffset && v.startsOperator() {
		v.fail(opStart, ecmaerr.KindInvalidCharacterClass, "operand of '&&'/'--' must not be empty")
	}

	var opKind byte
	for {
		switch {
		case v.r.Current() == '&' && v.r.Peek(1) == '&':
			if opKind == '-' {
				v.fail(v.pos(), ecmaerr.KindInvalidCharacterClass, "cannot mix '&&' and '--' in one character class")
			}
			opKind = '&'
			v.r.Advance(2)
			v.parseClassSetOperand()
			v.sink.OnClassIntersection(opStart, v.pos())
		case v.r.Current() == '-' && v.r.Peek(1) == '-':
			if opKind == '&' {
				v.fail(v.pos(), ecmaerr.KindInvalidCharacterClass, "cannot mix '&&' and '--' in one character class")
			}
			opKind = '-'
			v.r.Advance(2)
			v.parseClassSetOperand()
			v.sink.OnClassSubtraction(opStart, v.pos())
		default:
			return
		}
	}
}

// parseClassUnion parses a run of class elements — characters, ranges,
// nested classes, and \q{...} string disjunctions — stopping at ']' or
// either operator token.
func (v *Validator) parseClassUnion() {
	for {
		if v.r.IsEnd() {
			v.fail(v.pos(), ecmaerr.KindUnterminatedClass, "unterminated character class")
		}
		switch {
		case v.r.Current() == ']':
			return
		case v.r.Current() == '&' && v.r.Peek(1) == '&':
			return
		case v.r.Current() == '-' && v.r.Peek(1) == '-':
			return
		case v.r.Current() == '[':
			v.parseCharacterClass()
		case v.r.Current() == '\\' && v.r.Peek(1) == 'q':
			v.parseClassStringDisjunction()
		default:
			v.parseClassRangeItem()
		}
	}
}

// parseClassSetOperand parses a single && / -- operand: a nested class, a
// \q{...} string disjunction, or one ClassAtom/range.
func (v *Validator) parseClassSetOperand() {
	opStart := v.pos()
	switch {
	case v.r.Current() == ']':
		v.fail(opStart, ecmaerr.KindInvalidCharacterClass, "operand of '&&'/'--' must not be empty")
	case v.r.Current() == '[':
		v.parseCharacterClass()
	case v.r.Current() == '\\' && v.r.Peek(1) == 'q':
		v.parseClassStringDisjunction()
	default:
		v.parseClassRangeItem()
	}
}

func (v *Validator) startsOperator() bool {
	return (v.r.Current() == '&' && v.r.Peek(1) == '&') || (v.r.Current() == '-' && v.r.Peek(1) == '-')
}

// parseClassStringDisjunction parses `\q{s1|s2|...}` (§4.3, v-mode only
// multi-character-string syntax).
func (v *Validator) parseClassStringDisjunction() {
	start := v.pos()
	v.r.Advance(2) // '\q'
	if !v.r.Eat('{') {
		v.fail(v.pos(), ecmaerr.KindInvalidCharacterClass, "expected '{' after \\q")
	}
	v.sink.OnClassStringDisjunctionEnter(start)
	v.parseStringAlternative()
	for v.r.Eat('|') {
		v.parseStringAlternative()
	}
	if !v.r.Eat('}') {
		v.fail(v.pos(), ecmaerr.KindUnterminatedClass, "unterminated string disjunction")
	}
	end := v.pos()
	v.sink.OnClassStringDisjunctionLeave(start, end)
}

func (v *Validator) parseStringAlternative() {
	start := v.pos()
	v.sink.OnStringAlternativeEnter(start)
	for {
		if v.r.IsEnd() {
			v.fail(v.pos(), ecmaerr.KindUnterminatedClass, "unterminated string disjunction")
		}
		c := v.r.Current()
		if c == '|' || c == '}' {
			break
		}
		atom := v.parseClassAtom()
		if !atom.isChar() {
			v.fail(atom.start, ecmaerr.KindInvalidCharacterClass, "only characters are allowed inside \\q{...}")
		}
		v.sink.OnCharacter(atom.start, atom.end, atom.char)
	}
	end := v.pos()
	v.sink.OnStringAlternativeLeave(start, end)
}

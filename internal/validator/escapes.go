package validator

import (
	"strings"

	"github.com/0x4d5352/ecmarex/ecmaerr"
)

// unicodeMode reports whether the pattern is parsed under the `u` or `v`
// flag, which governs escape-decoding strictness independently of whether
// Annex B legacy constructs (opts.Strict) are additionally tolerated.
func (v *Validator) unicodeMode() bool { return v.mode.Unicode || v.mode.UnicodeSets }

// parseAtomEscape handles `\...` when it appears as a Term's Atom (outside
// a character class): backreferences, \d/\D/\s/\S/\w/\W, \p{...}/\P{...},
// or a plain CharacterEscape.
func (v *Validator) parseAtomEscape() {
	start := v.pos()
	next := v.r.Peek(1)
	switch {
	case next >= '1' && next <= '9':
		v.parseDecimalBackreference(start)
	case next == 'k':
		if v.parseNamedBackreference(start) {
			return
		}
		val := v.parseCharacterEscape()
		v.sink.OnCharacter(start, v.pos(), val)
	case next == 'd' || next == 'D' || next == 's' || next == 'S' || next == 'w' || next == 'W':
		v.r.Advance(2)
		v.sink.OnEscapeCharacterSet(start, v.pos(), next)
	case next == 'p' || next == 'P':
		if v.unicodeMode() {
			key, value, negate, strings, end := v.parseUnicodePropertyEscape(start, next == 'P')
			v.sink.OnUnicodePropertyCharacterSet(start, end, key, value, negate, strings)
			return
		}
		val := v.parseCharacterEscape()
		v.sink.OnCharacter(start, v.pos(), val)
	default:
		val := v.parseCharacterEscape()
		v.sink.OnCharacter(start, v.pos(), val)
	}
}

func (v *Validator) parseDecimalBackreference(start int) {
	save := v.r.Offset()
	v.r.Advance(1) // '\'
	number, _ := v.r.EatDecimalDigits()
	end := v.pos()
	if number <= v.scan.captureCount {
		v.sink.OnBackreference(start, end, false, number, "")
		return
	}
	if !v.annexB {
		v.fail(start, ecmaerr.KindInvalidBackreference, "backreference to non-existent group %d", number)
	}
	v.r.SetOffset(save)
	val := v.parseCharacterEscape()
	v.sink.OnCharacter(start, v.pos(), val)
}

// parseNamedBackreference attempts `\k<name>`. It only commits (consumes
// input) once it has confirmed a '<' follows \k; otherwise it rewinds and
// reports false so the caller can fall back to a plain character escape.
func (v *Validator) parseNamedBackreference(start int) bool {
	if len(v.scan.names) == 0 {
		return false
	}
	save := v.r.Offset()
	v.r.Advance(2) // '\k'
	if !v.r.Eat('<') {
		v.r.SetOffset(save)
		return false
	}
	name := v.parseGroupName()
	if !v.scan.names[name] {
		v.fail(start, ecmaerr.KindInvalidBackreference, "backreference to undefined group name %q", name)
	}
	v.sink.OnBackreference(start, v.pos(), true, 0, name)
	return true
}

// parseUnicodePropertyEscape parses the `{Key}` or `{Key=Value}` body of a
// \p/\P escape whose backslash the cursor is still positioned at; negateLetter
// reports whether the escape letter was 'P'.
func (v *Validator) parseUnicodePropertyEscape(start int, negateLetter bool) (key, value string, negate, isStrings bool, end int) {
	v.r.Advance(2) // '\' + p/P
	if !v.r.Eat('{') {
		v.fail(v.pos(), ecmaerr.KindInvalidUnicodeProperty, "expected '{' after unicode property escape")
	}
	key = v.readPropertyIdentifier()
	if v.r.Eat('=') {
		value = v.readPropertyIdentifier()
	}
	if !v.r.Eat('}') {
		v.fail(v.pos(), ecmaerr.KindInvalidUnicodeProperty, "unterminated unicode property escape")
	}
	prop, ok := v.props.Lookup(key, value)
	if !ok {
		v.fail(start, ecmaerr.KindInvalidUnicodeProperty, "unknown unicode property %q", key)
	}
	if prop.Strings {
		if negateLetter {
			v.fail(start, ecmaerr.KindInvalidUnicodeProperty, "a property of strings cannot be negated")
		}
		if !v.mode.UnicodeSets {
			v.fail(start, ecmaerr.KindInvalidUnicodeProperty, "property of strings %q requires the v flag", key)
		}
	}
	return key, value, negateLetter, prop.Strings, v.pos()
}

func (v *Validator) readPropertyIdentifier() string {
	var sb strings.Builder
	for {
		c := v.r.Current()
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			sb.WriteRune(c)
			v.r.Advance(1)
			continue
		}
		break
	}
	if sb.Len() == 0 {
		v.fail(v.pos(), ecmaerr.KindInvalidUnicodeProperty, "expected a unicode property name")
	}
	return sb.String()
}

// parseCharacterEscape decodes one CharacterEscape (control, \x, \u, octal,
// or identity escape) with the cursor positioned at the leading backslash,
// returning the decoded code point. \1-\9 reach it only inside a class or
// as the Annex B fallback for a number with no matching group; with Annex B
// on, \1-\7 decode as octal escapes. \d/\D/\s/\S/\w/\W/\p/\P are dispatched
// by the caller.
func (v *Validator) parseCharacterEscape() rune {
	start := v.pos()
	next := v.r.Peek(1)
	switch next {
	case 'f':
		v.r.Advance(2)
		return '\f'
	case 'n':
		v.r.Advance(2)
		return '\n'
	case 'r':
		v.r.Advance(2)
		return '\r'
	case 't':
		v.r.Advance(2)
		return '\t'
	case 'v':
		v.r.Advance(2)
		return '\v'
	case 'c':
		save := v.r.Offset()
		v.r.Advance(2)
		cc := v.r.Current()
		if isASCIILetter(cc) {
			v.r.Advance(1)
			return rune(toUpperASCII(cc) % 32)
		}
		if !v.annexB {
			v.fail(start, ecmaerr.KindInvalidEscape, "\\c must be followed by a control letter")
		}
		v.r.SetOffset(save + 2)
		return 'c'
	case 'x':
		save := v.r.Offset()
		v.r.Advance(2)
		val, _, ok := v.r.EatHexDigits(2, true)
		if ok {
			return rune(val)
		}
		if v.unicodeMode() {
			v.fail(start, ecmaerr.KindInvalidEscape, "\\x must be followed by two hex digits")
		}
		v.r.SetOffset(save + 2)
		return 'x'
	case 'u':
		val, ok := v.r.EatRegExpUnicodeEscapeSequence(v.unicodeMode())
		if !ok {
			if v.unicodeMode() {
				v.fail(start, ecmaerr.KindInvalidEscape, "invalid unicode escape")
			}
			v.r.Advance(2)
			return 'u'
		}
		return val
	case '0':
		save := v.r.Offset()
		v.r.Advance(2)
		if isOctalDigit(v.r.Current()) {
			if !v.annexB {
				v.fail(start, ecmaerr.KindInvalidEscape, "octal escapes are not allowed here")
			}
			v.r.SetOffset(save + 1)
			val, _ := v.r.EatOctalDigits(3)
			return rune(val)
		}
		return 0
	default:
		if next >= '1' && next <= '7' && v.annexB {
			v.r.Advance(1)
			val, _ := v.r.EatOctalDigits(3)
			return rune(val)
		}
		if next == -1 {
			v.fail(v.pos(), ecmaerr.KindUnterminatedEscape, "unterminated escape sequence")
		}
		if v.unicodeMode() && !isSyntaxCharacter(next) && next != '/' {
			v.fail(start, ecmaerr.KindInvalidEscape, "invalid identity escape %q", next)
		}
		v.r.Advance(2)
		return next
	}
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toUpperASCII(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func isOctalDigit(c rune) bool { return c >= '0' && c <= '7' }

// Package ecmaerr defines the single error type surfaced by every entry
// point of the parser: an offset into the source, a fixed error kind, and
// an implementation-defined message.
package ecmaerr

import "fmt"

// Kind classifies why a parse failed. Callers should switch on Kind, not on
// Message text, which is not part of the stability contract.
type Kind int

const (
	// KindInternal marks a violation of the validator/assembler event
	// protocol. It indicates a bug in this module, not a bad pattern.
	KindInternal Kind = iota

	KindUnterminatedGroup
	KindUnterminatedClass
	KindUnterminatedEscape
	KindInvalidEscape
	KindInvalidCharacterClass
	KindInvalidQuantifier
	KindInvalidUnicodeProperty
	KindInvalidBackreference
	KindInvalidFlags
	KindInvalidNamedCapture
	KindInvalidGrammar
	KindInputTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "InternalError"
	case KindUnterminatedGroup:
		return "UnterminatedGroup"
	case KindUnterminatedClass:
		return "UnterminatedClass"
	case KindUnterminatedEscape:
		return "UnterminatedEscape"
	case KindInvalidEscape:
		return "InvalidEscape"
	case KindInvalidCharacterClass:
		return "InvalidCharacterClass"
	case KindInvalidQuantifier:
		return "InvalidQuantifier"
	case KindInvalidUnicodeProperty:
		return "InvalidUnicodeProperty"
	case KindInvalidBackreference:
		return "InvalidBackreference"
	case KindInvalidFlags:
		return "InvalidFlags"
	case KindInvalidNamedCapture:
		return "InvalidNamedCapture"
	case KindInvalidGrammar:
		return "InvalidGrammar"
	case KindInputTooLarge:
		return "InputTooLarge"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by every parser entry point.
type Error struct {
	Offset  int
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Is lets errors.Is match by Kind alone, so callers can test for a
// particular failure with a bare sentinel (e.g. &Error{Kind:
// KindInvalidQuantifier}) instead of comparing Offset and Message too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an Error. It is the only way non-internal callers should
// build one, so the offset/kind/message triple stays together.
func New(offset int, kind Kind, message string) *Error {
	return &Error{Offset: offset, Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting for Message.
func Newf(offset int, kind Kind, format string, args ...any) *Error {
	return New(offset, kind, fmt.Sprintf(format, args...))
}

// Internal builds a KindInternal error. Reaching this means the validator
// emitted an event the assembler's cursor could not accept, or a resolved
// backreference had an empty match set — both are bugs in this module.
func Internal(offset int, message string) *Error {
	return New(offset, KindInternal, message)
}

package validator

// EventSink receives the builder event stream a Validator emits while
// parsing. The interface uses only primitive parameter types so it carries
// no dependency on the AST package: an implementation may construct a full
// tree (internal/ast.Assembler) or accept and discard every call to do
// pure syntax validation with no allocation (§9, "dual validator/parser
// mode").
//
// Events are strictly properly nested: every Enter has a matching Leave at
// the same stack depth, in LIFO order.
type EventSink interface {
	OnPatternEnter(start int)
	OnPatternLeave(start, end int)

	OnAlternativeEnter(start int)
	OnAlternativeLeave(start, end int)

	OnGroupEnter(start int)
	OnGroupLeave(start, end int)

	OnCapturingGroupEnter(start int, name string)
	OnCapturingGroupLeave(start, end int)

	OnModifiersEnter(start int)
	OnModifiersLeave(start, end int)
	OnAddModifiers(start, end int, ignoreCase, multiline, dotAll bool)
	OnRemoveModifiers(start, end int, ignoreCase, multiline, dotAll bool)

	OnCharacterClassEnter(start int, negate, unicodeSets bool)
	OnCharacterClassLeave(start, end int)

	OnClassStringDisjunctionEnter(start int)
	OnClassStringDisjunctionLeave(start, end int)

	OnStringAlternativeEnter(start int)
	OnStringAlternativeLeave(start, end int)

	OnLookaroundAssertionEnter(start int, behind, negate bool)
	OnLookaroundAssertionLeave(start, end int)

	OnFlags(start, end int, global, ignoreCase, multiline, unicode, sticky, dotAll, hasIndices, unicodeSets bool)

	OnEdgeAssertion(start, end int, char rune) // '^' or '$'
	OnWordBoundaryAssertion(start, end int, negate bool)
	OnAnyCharacterSet(start, end int)
	OnEscapeCharacterSet(start, end int, letter rune) // 'd','D','s','S','w','W'
	OnUnicodePropertyCharacterSet(start, end int, key, value string, negate, strings bool)
	OnCharacter(start, end int, value rune)
	OnBackreference(start, end int, named bool, number int, name string)

	// OnCharacterClassRange signals that the last two Characters appended
	// to the current class should be combined into a CharacterClassRange.
	OnCharacterClassRange(start, end int)

	// OnClassIntersection / OnClassSubtraction signal that the operands
	// most recently appended to the current class (or, on a repeat call
	// for the same class, the operator subtree already buffered for it
	// plus one more freshly appended operand) should be combined into an
	// operator node (§4.2.6, §4.3).
	OnClassIntersection(start, end int)
	OnClassSubtraction(start, end int)

	OnQuantifier(start, end int, min, max int, greedy bool)
}

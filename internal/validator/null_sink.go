package validator

// NullSink implements EventSink by discarding every event. Embedding it
// gives a syntax-only validator (no AST materialized) for free, per the
// "fast syntax-check API" use case named in spec.md §9.
type NullSink struct{}

func (NullSink) OnPatternEnter(start int)     {}
func (NullSink) OnPatternLeave(start, end int) {}

func (NullSink) OnAlternativeEnter(start int)     {}
func (NullSink) OnAlternativeLeave(start, end int) {}

func (NullSink) OnGroupEnter(start int)     {}
func (NullSink) OnGroupLeave(start, end int) {}

func (NullSink) OnCapturingGroupEnter(start int, name string) {}
func (NullSink) OnCapturingGroupLeave(start, end int)         {}

func (NullSink) OnModifiersEnter(start int)     {}
func (NullSink) OnModifiersLeave(start, end int) {}
func (NullSink) OnAddModifiers(start, end int, ignoreCase, multiline, dotAll bool)    {}
func (NullSink) OnRemoveModifiers(start, end int, ignoreCase, multiline, dotAll bool) {}

func (NullSink) OnCharacterClassEnter(start int, negate, unicodeSets bool) {}
func (NullSink) OnCharacterClassLeave(start, end int)                      {}

func (NullSink) OnClassStringDisjunctionEnter(start int)     {}
func (NullSink) OnClassStringDisjunctionLeave(start, end int) {}

func (NullSink) OnStringAlternativeEnter(start int)     {}
func (NullSink) OnStringAlternativeLeave(start, end int) {}

func (NullSink) OnLookaroundAssertionEnter(start int, behind, negate bool) {}
func (NullSink) OnLookaroundAssertionLeave(start, end int)                 {}

func (NullSink) OnFlags(start, end int, global, ignoreCase, multiline, unicode, sticky, dotAll, hasIndices, unicodeSets bool) {
}

func (NullSink) OnEdgeAssertion(start, end int, char rune)          {}
func (NullSink) OnWordBoundaryAssertion(start, end int, negate bool) {}
func (NullSink) OnAnyCharacterSet(start, end int)                    {}
func (NullSink) OnEscapeCharacterSet(start, end int, letter rune)    {}
func (NullSink) OnUnicodePropertyCharacterSet(start, end int, key, value string, negate, strings bool) {
}
func (NullSink) OnCharacter(start, end int, value rune) {}
func (NullSink) OnBackreference(start, end int, named bool, number int, name string) {}

func (NullSink) OnCharacterClassRange(start, end int) {}
func (NullSink) OnClassIntersection(start, end int)   {}
func (NullSink) OnClassSubtraction(start, end int)    {}

func (NullSink) OnQuantifier(start, end int, min, max int, greedy bool) {}

var _ EventSink = NullSink{}

package ast

import (
	"strings"

	"github.com/0x4d5352/ecmarex/ecmaerr"
	"github.com/0x4d5352/ecmarex/internal/reader"
	"github.com/0x4d5352/ecmarex/internal/validator"
)

// Assembler implements validator.EventSink by building the node tree
// described in node.go. It holds no knowledge of regex grammar itself —
// every decision about what is legal has already been made by the
// Validator; the Assembler only has to route each event to the right
// place in the tree under construction (§4.3).
type Assembler struct {
	src string

	pattern *Pattern
	flags   *Flags

	containerStack []Node // *Pattern, *Group, *CapturingGroup, *LookaroundAssertion
	altStack       []*Alternative

	classStack      []*classFrame
	stringDisjStack []*ClassStringDisjunction
	stringAltStack  []*StringAlternative

	modifiersTarget  []*Group
	pendingModifiers *Modifiers

	captures     []*CapturingGroup
	captureNames map[string][]*CapturingGroup
	pendingRefs  []*Backreference
}

// classFrame tracks the CharacterClass currently being built plus any
// operator subtree accumulated for it by OnClassIntersection/
// OnClassSubtraction (§4.2.6).
type classFrame struct {
	node   *CharacterClass
	opNode ClassOperand
}

// NewAssembler returns an Assembler ready to receive events for a pattern
// parsed out of src. src must be the same string passed to the Validator,
// since node spans are absolute offsets into it.
func NewAssembler(src string) *Assembler {
	return &Assembler{src: src, captureNames: make(map[string][]*CapturingGroup)}
}

var _ validator.EventSink = (*Assembler)(nil)

// Pattern returns the root Pattern built, valid once OnPatternLeave has
// fired.
func (a *Assembler) Pattern() *Pattern { return a.pattern }

// Flags returns the Flags node built by OnFlags, or nil if the assembler
// was only driven through ValidatePattern (no literal flags section).
func (a *Assembler) Flags() *Flags { return a.flags }

func (a *Assembler) raw(start, end int) string { return a.src[start:end] }

func (b *base) setSpan(start, end int, raw string) {
	b.start = start
	b.end = end
	b.raw = raw
}

func (b *base) setParentNode(p Node) { b.parent = p }

type parentSetter interface{ setParentNode(Node) }

func setParentOf(n Node, p Node) {
	if ps, ok := n.(parentSetter); ok {
		ps.setParentNode(p)
	}
}

func (a *Assembler) currentAlt() *Alternative {
	return a.altStack[len(a.altStack)-1]
}

// attach routes a freshly built leaf/container node to whichever scope is
// innermost: a \q{...} string alternative, a character class, or a plain
// alternative.
func (a *Assembler) attach(n Node) {
	if len(a.stringAltStack) > 0 {
		sa := a.stringAltStack[len(a.stringAltStack)-1]
		ch, ok := n.(*Character)
		if !ok {
			panic(ecmaerr.Internal(n.Start(), "non-character node appended inside a string alternative"))
		}
		sa.Characters = append(sa.Characters, ch)
		ch.parent = sa
		return
	}
	if len(a.classStack) > 0 {
		frame := a.classStack[len(a.classStack)-1]
		ce, ok := n.(ClassElement)
		if !ok {
			panic(ecmaerr.Internal(n.Start(), "non-class-element node appended inside a character class"))
		}
		frame.node.Elements = append(frame.node.Elements, ce)
		setParentOf(n, frame.node)
		return
	}
	alt := a.currentAlt()
	el, ok := n.(Element)
	if !ok {
		panic(ecmaerr.Internal(n.Start(), "non-element node appended to an alternative"))
	}
	alt.Elements = append(alt.Elements, el)
	setParentOf(n, alt)
}

// wrapOperand turns a run of ClassElements accumulated since the last
// operator into a single ClassOperand: the lone element itself if it
// already qualifies as an operand (a nested class, property escape, class
// escape, or string disjunction), otherwise a synthetic CharacterClass
// wrapping all of them (§4.2.6: "an implicit operand class").
func (a *Assembler) wrapOperand(elems []ClassElement, unicodeSets bool) ClassOperand {
	if len(elems) == 1 {
		if op, ok := elems[0].(ClassOperand); ok {
			return op
		}
	}
	start, end := elems[0].Start(), elems[len(elems)-1].End()
	cc := &CharacterClass{UnicodeSets: unicodeSets, Elements: elems}
	cc.setSpan(start, end, a.raw(start, end))
	for _, e := range elems {
		setParentOf(e, cc)
	}
	return cc
}

// -----------------------------------------------------------------------
// Pattern / Alternative
// -----------------------------------------------------------------------

func (a *Assembler) OnPatternEnter(start int) {
	a.pattern = &Pattern{}
	a.containerStack = append(a.containerStack, a.pattern)
}

func (a *Assembler) OnPatternLeave(start, end int) {
	a.pattern.setSpan(start, end, a.raw(start, end))
	a.containerStack = a.containerStack[:len(a.containerStack)-1]
	a.resolveBackreferences()
}

func (a *Assembler) OnAlternativeEnter(start int) {
	a.altStack = append(a.altStack, &Alternative{})
}

func (a *Assembler) OnAlternativeLeave(start, end int) {
	alt := a.altStack[len(a.altStack)-1]
	a.altStack = a.altStack[:len(a.altStack)-1]
	alt.setSpan(start, end, a.raw(start, end))

	container := a.containerStack[len(a.containerStack)-1]
	alt.parent = container
	switch t := container.(type) {
	case *Pattern:
		t.Alternatives = append(t.Alternatives, alt)
	case *Group:
		t.Alternatives = append(t.Alternatives, alt)
	case *CapturingGroup:
		t.Alternatives = append(t.Alternatives, alt)
	case *LookaroundAssertion:
		t.Alternatives = append(t.Alternatives, alt)
	default:
		panic(ecmaerr.Internal(start, "alternative closed with no disjunction container on the stack"))
	}
}

// -----------------------------------------------------------------------
// Groups
// -----------------------------------------------------------------------

func (a *Assembler) OnGroupEnter(start int) {
	g := &Group{}
	a.attach(g)
	a.containerStack = append(a.containerStack, g)
	a.modifiersTarget = append(a.modifiersTarget, g)
}

func (a *Assembler) OnGroupLeave(start, end int) {
	g := a.modifiersTarget[len(a.modifiersTarget)-1]
	a.modifiersTarget = a.modifiersTarget[:len(a.modifiersTarget)-1]
	a.containerStack = a.containerStack[:len(a.containerStack)-1]
	g.setSpan(start, end, a.raw(start, end))
}

func (a *Assembler) OnCapturingGroupEnter(start int, name string) {
	cg := &CapturingGroup{Name: name}
	a.attach(cg)
	a.containerStack = append(a.containerStack, cg)
	a.captures = append(a.captures, cg)
	if name != "" {
		a.captureNames[name] = append(a.captureNames[name], cg)
	}
}

func (a *Assembler) OnCapturingGroupLeave(start, end int) {
	cg, ok := a.containerStack[len(a.containerStack)-1].(*CapturingGroup)
	if !ok {
		panic(ecmaerr.Internal(start, "capturing group closed out of order"))
	}
	a.containerStack = a.containerStack[:len(a.containerStack)-1]
	cg.setSpan(start, end, a.raw(start, end))
}

func (a *Assembler) OnModifiersEnter(start int) {
	a.pendingModifiers = &Modifiers{}
}

func (a *Assembler) OnModifiersLeave(start, end int) {
	mods := a.pendingModifiers
	a.pendingModifiers = nil
	mods.setSpan(start, end, a.raw(start, end))

	g := a.modifiersTarget[len(a.modifiersTarget)-1]
	g.Modifiers = mods
	setParentOf(mods, g)
	if mods.Add != nil {
		setParentOf(mods.Add, mods)
	}
	if mods.Remove != nil {
		setParentOf(mods.Remove, mods)
	}
}

func (a *Assembler) OnAddModifiers(start, end int, ignoreCase, multiline, dotAll bool) {
	f := &ModifierFlags{IgnoreCase: ignoreCase, Multiline: multiline, DotAll: dotAll}
	f.setSpan(start, end, a.raw(start, end))
	a.pendingModifiers.Add = f
}

func (a *Assembler) OnRemoveModifiers(start, end int, ignoreCase, multiline, dotAll bool) {
	f := &ModifierFlags{IgnoreCase: ignoreCase, Multiline: multiline, DotAll: dotAll}
	f.setSpan(start, end, a.raw(start, end))
	a.pendingModifiers.Remove = f
}

func (a *Assembler) OnLookaroundAssertionEnter(start int, behind, negate bool) {
	la := &LookaroundAssertion{Behind: behind, Negate: negate}
	a.attach(la)
	a.containerStack = append(a.containerStack, la)
}

func (a *Assembler) OnLookaroundAssertionLeave(start, end int) {
	la, ok := a.containerStack[len(a.containerStack)-1].(*LookaroundAssertion)
	if !ok {
		panic(ecmaerr.Internal(start, "lookaround assertion closed out of order"))
	}
	a.containerStack = a.containerStack[:len(a.containerStack)-1]
	la.setSpan(start, end, a.raw(start, end))
}

// -----------------------------------------------------------------------
// Character classes
// -----------------------------------------------------------------------

func (a *Assembler) OnCharacterClassEnter(start int, negate, unicodeSets bool) {
	cc := &CharacterClass{Negate: negate, UnicodeSets: unicodeSets}
	a.classStack = append(a.classStack, &classFrame{node: cc})
}

func (a *Assembler) OnCharacterClassLeave(start, end int) {
	frame := a.classStack[len(a.classStack)-1]
	a.classStack = a.classStack[:len(a.classStack)-1]
	raw := a.raw(start, end)

	cc := frame.node
	cc.setSpan(start, end, raw)

	if frame.opNode == nil {
		a.attach(cc)
		return
	}
	expr := &ExpressionCharacterClass{Negate: cc.Negate, Expression: frame.opNode}
	expr.setSpan(start, end, raw)
	setParentOf(frame.opNode, expr)
	a.attach(expr)
}

func (a *Assembler) OnCharacterClassRange(start, end int) {
	frame := a.classStack[len(a.classStack)-1]
	elems := frame.node.Elements
	n := len(elems)
	if n < 2 {
		panic(ecmaerr.Internal(start, "character class range with fewer than two buffered elements"))
	}
	maxC, ok1 := elems[n-1].(*Character)
	minC, ok2 := elems[n-2].(*Character)
	if !ok1 || !ok2 {
		panic(ecmaerr.Internal(start, "character class range endpoints are not plain characters"))
	}
	r := &CharacterClassRange{Min: minC, Max: maxC}
	r.setSpan(start, end, a.raw(start, end))
	setParentOf(minC, r)
	setParentOf(maxC, r)
	frame.node.Elements = append(elems[:n-2], r)
}

func (a *Assembler) OnClassIntersection(start, end int) {
	a.combineClassOperator(start, end, func(l, r ClassOperand) ClassOperand {
		op := &ClassIntersection{Left: l, Right: r}
		op.setSpan(start, end, a.raw(start, end))
		setParentOf(l, op)
		setParentOf(r, op)
		return op
	})
}

func (a *Assembler) OnClassSubtraction(start, end int) {
	a.combineClassOperator(start, end, func(l, r ClassOperand) ClassOperand {
		op := &ClassSubtraction{Left: l, Right: r}
		op.setSpan(start, end, a.raw(start, end))
		setParentOf(l, op)
		setParentOf(r, op)
		return op
	})
}

func (a *Assembler) combineClassOperator(start, end int, build func(left, right ClassOperand) ClassOperand) {
	frame := a.classStack[len(a.classStack)-1]
	n := len(frame.node.Elements)
	if n == 0 {
		panic(ecmaerr.Internal(start, "class operator with no buffered right operand"))
	}
	right := a.wrapOperand(frame.node.Elements[n-1:n], frame.node.UnicodeSets)

	var left ClassOperand
	if frame.opNode != nil {
		left = frame.opNode
	} else {
		leftElems := frame.node.Elements[:n-1]
		if len(leftElems) == 0 {
			panic(ecmaerr.Internal(start, "class operator with no buffered left operand"))
		}
		left = a.wrapOperand(leftElems, frame.node.UnicodeSets)
	}

	frame.opNode = build(left, right)
	frame.node.Elements = nil
}

func (a *Assembler) OnClassStringDisjunctionEnter(start int) {
	sd := &ClassStringDisjunction{}
	a.attach(sd)
	a.stringDisjStack = append(a.stringDisjStack, sd)
}

func (a *Assembler) OnClassStringDisjunctionLeave(start, end int) {
	sd := a.stringDisjStack[len(a.stringDisjStack)-1]
	a.stringDisjStack = a.stringDisjStack[:len(a.stringDisjStack)-1]
	sd.setSpan(start, end, a.raw(start, end))
}

func (a *Assembler) OnStringAlternativeEnter(start int) {
	a.stringAltStack = append(a.stringAltStack, &StringAlternative{})
}

func (a *Assembler) OnStringAlternativeLeave(start, end int) {
	sa := a.stringAltStack[len(a.stringAltStack)-1]
	a.stringAltStack = a.stringAltStack[:len(a.stringAltStack)-1]
	sa.setSpan(start, end, a.raw(start, end))
	sa.GraphemeLength = graphemeLength(sa.Characters)

	sd := a.stringDisjStack[len(a.stringDisjStack)-1]
	sa.parent = sd
	sd.Alternatives = append(sd.Alternatives, sa)
}

// graphemeLength counts the extended grapheme clusters the decoded
// characters of a \q{...} alternative form, not their rune count: a flag
// emoji or base+combining-mark pair the alternative spells out as several
// Characters still reads as one cluster for the "longer string first"
// v-mode matching rule.
func graphemeLength(chars []*Character) int {
	if len(chars) == 0 {
		return 0
	}
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteRune(c.Value)
	}
	return reader.GraphemeClusterCount(sb.String())
}

// -----------------------------------------------------------------------
// Flags
// -----------------------------------------------------------------------

func (a *Assembler) OnFlags(start, end int, global, ignoreCase, multiline, unicode, sticky, dotAll, hasIndices, unicodeSets bool) {
	f := &Flags{
		Global: global, IgnoreCase: ignoreCase, Multiline: multiline, Unicode: unicode,
		Sticky: sticky, DotAll: dotAll, HasIndices: hasIndices, UnicodeSets: unicodeSets,
	}
	f.setSpan(start, end, a.raw(start, end))
	a.flags = f
}

// -----------------------------------------------------------------------
// Leaf elements
// -----------------------------------------------------------------------

func (a *Assembler) OnEdgeAssertion(start, end int, char rune) {
	kind := EdgeKindStart
	if char == '$' {
		kind = EdgeKindEnd
	}
	n := &EdgeAssertion{Edge: kind}
	n.setSpan(start, end, a.raw(start, end))
	a.attach(n)
}

func (a *Assembler) OnWordBoundaryAssertion(start, end int, negate bool) {
	n := &WordBoundaryAssertion{Negate: negate}
	n.setSpan(start, end, a.raw(start, end))
	a.attach(n)
}

func (a *Assembler) OnAnyCharacterSet(start, end int) {
	n := &AnyCharacterSet{}
	n.setSpan(start, end, a.raw(start, end))
	a.attach(n)
}

func (a *Assembler) OnEscapeCharacterSet(start, end int, letter rune) {
	var kind EscapeClassKind
	switch letter {
	case 'd', 'D':
		kind = EscapeClassDigit
	case 's', 'S':
		kind = EscapeClassSpace
	case 'w', 'W':
		kind = EscapeClassWord
	}
	negate := letter == 'D' || letter == 'S' || letter == 'W'
	n := &EscapeCharacterSet{Class: kind, Negate: negate}
	n.setSpan(start, end, a.raw(start, end))
	a.attach(n)
}

func (a *Assembler) OnUnicodePropertyCharacterSet(start, end int, key, value string, negate, strings bool) {
	n := &UnicodePropertyCharacterSet{Key: key, Value: value, Negate: negate, Strings: strings}
	n.setSpan(start, end, a.raw(start, end))
	a.attach(n)
}

func (a *Assembler) OnCharacter(start, end int, value rune) {
	n := &Character{Value: value}
	n.setSpan(start, end, a.raw(start, end))
	a.attach(n)
}

func (a *Assembler) OnBackreference(start, end int, named bool, number int, name string) {
	br := &Backreference{Named: named, Number: number, Name: name}
	br.setSpan(start, end, a.raw(start, end))
	a.attach(br)
	a.pendingRefs = append(a.pendingRefs, br)
}

func (a *Assembler) OnQuantifier(start, end int, min, max int, greedy bool) {
	alt := a.currentAlt()
	n := len(alt.Elements)
	if n == 0 {
		panic(ecmaerr.Internal(start, "quantifier with no preceding element"))
	}
	target := alt.Elements[n-1]
	q := &Quantifier{Min: min, Max: max, Greedy: greedy, Element: target}
	q.setSpan(start, end, a.raw(start, end))
	setParentOf(target, q)
	setParentOf(q, alt)
	alt.Elements[n-1] = q
}

// -----------------------------------------------------------------------
// Backreference resolution (§4.3.1)
// -----------------------------------------------------------------------

func (a *Assembler) resolveBackreferences() {
	for _, br := range a.pendingRefs {
		var matches []*CapturingGroup
		if br.Named {
			matches = a.captureNames[br.Name]
		} else if br.Number >= 1 && br.Number <= len(a.captures) {
			matches = []*CapturingGroup{a.captures[br.Number-1]}
		}
		if len(matches) == 0 {
			panic(ecmaerr.Internal(br.Start(), "backreference resolved to no capturing group"))
		}
		br.Resolved = matches
		br.Ambiguous = len(matches) > 1
		for _, cg := range matches {
			cg.References = append(cg.References, br)
		}
	}
}

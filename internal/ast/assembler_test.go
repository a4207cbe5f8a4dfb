package ast

import (
	"testing"

	"github.com/0x4d5352/ecmarex/internal/validator"
)

func parse(t *testing.T, src string, mode validator.Mode, opts validator.Options) *Pattern {
	t.Helper()
	a := NewAssembler(src)
	if err := validator.ValidatePattern(a, src, 0, len(src), mode, opts); err != nil {
		t.Fatalf("ValidatePattern(%q): %v", src, err)
	}
	return a.Pattern()
}

func TestAssemblerSimpleAlternation(t *testing.T) {
	p := parse(t, "ab|cd", validator.Mode{}, validator.Options{})
	if len(p.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(p.Alternatives))
	}
	if len(p.Alternatives[0].Elements) != 2 || len(p.Alternatives[1].Elements) != 2 {
		t.Fatalf("expected 2 elements per alternative, got %v / %v", p.Alternatives[0].Elements, p.Alternatives[1].Elements)
	}
	c, ok := p.Alternatives[0].Elements[0].(*Character)
	if !ok || c.Value != 'a' {
		t.Errorf("expected first element 'a', got %#v", p.Alternatives[0].Elements[0])
	}
	if c.Parent() != p.Alternatives[0] {
		t.Error("character's parent should be its alternative")
	}
}

func TestAssemblerCapturingGroupAndBackreference(t *testing.T) {
	p := parse(t, "(a)\\1", validator.Mode{}, validator.Options{})
	alt := p.Alternatives[0]
	if len(alt.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(alt.Elements))
	}
	cg, ok := alt.Elements[0].(*CapturingGroup)
	if !ok {
		t.Fatalf("expected CapturingGroup, got %T", alt.Elements[0])
	}
	br, ok := alt.Elements[1].(*Backreference)
	if !ok {
		t.Fatalf("expected Backreference, got %T", alt.Elements[1])
	}
	if br.Number != 1 || br.Named {
		t.Errorf("expected numeric backreference 1, got %+v", br)
	}
	if len(br.Resolved) != 1 || br.Resolved[0] != cg {
		t.Errorf("expected backreference resolved to the capturing group, got %+v", br.Resolved)
	}
	if br.Ambiguous {
		t.Error("a single numeric target should never be ambiguous")
	}
	if len(cg.References) != 1 || cg.References[0] != br {
		t.Errorf("expected capturing group to back-link to the backreference, got %+v", cg.References)
	}
}

func TestAssemblerNamedBackreference(t *testing.T) {
	p := parse(t, "(?<n>a)\\k<n>", validator.Mode{}, validator.Options{})
	alt := p.Alternatives[0]
	cg := alt.Elements[0].(*CapturingGroup)
	br := alt.Elements[1].(*Backreference)
	if !br.Named || br.Name != "n" {
		t.Errorf("expected named backreference to 'n', got %+v", br)
	}
	if len(br.Resolved) != 1 || br.Resolved[0] != cg {
		t.Errorf("expected resolution to the named group, got %+v", br.Resolved)
	}
}

func TestAssemblerDuplicateNamedCaptureAcrossBranches(t *testing.T) {
	p := parse(t, "(?<n>a)|(?<n>b)", validator.Mode{}, validator.Options{ECMAVersion: 2025})
	if len(p.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(p.Alternatives))
	}
	cg0 := p.Alternatives[0].Elements[0].(*CapturingGroup)
	cg1 := p.Alternatives[1].Elements[0].(*CapturingGroup)
	if cg0.Name != "n" || cg1.Name != "n" {
		t.Fatalf("expected both groups named 'n', got %q / %q", cg0.Name, cg1.Name)
	}
}

func TestAssemblerQuantifierWrapsPrecedingElement(t *testing.T) {
	p := parse(t, "a{2,5}", validator.Mode{}, validator.Options{})
	alt := p.Alternatives[0]
	if len(alt.Elements) != 1 {
		t.Fatalf("expected quantifier to replace, not append: got %d elements", len(alt.Elements))
	}
	q, ok := alt.Elements[0].(*Quantifier)
	if !ok {
		t.Fatalf("expected Quantifier, got %T", alt.Elements[0])
	}
	if q.Min != 2 || q.Max != 5 {
		t.Errorf("expected {2,5}, got min=%d max=%d", q.Min, q.Max)
	}
	ch, ok := q.Element.(*Character)
	if !ok || ch.Value != 'a' {
		t.Fatalf("expected wrapped Character 'a', got %#v", q.Element)
	}
	if ch.Parent() != q {
		t.Error("wrapped element's parent should be the Quantifier")
	}
	if q.Parent() != alt {
		t.Error("quantifier's parent should be the alternative")
	}
}

func TestAssemblerUnboundedQuantifier(t *testing.T) {
	p := parse(t, "a+", validator.Mode{}, validator.Options{})
	q := p.Alternatives[0].Elements[0].(*Quantifier)
	if q.Max != QuantifierMaxUnbounded {
		t.Errorf("expected unbounded max, got %d", q.Max)
	}
}

func TestAssemblerCharacterClassRange(t *testing.T) {
	p := parse(t, "[a-z0-9]", validator.Mode{}, validator.Options{})
	cc, ok := p.Alternatives[0].Elements[0].(*CharacterClass)
	if !ok {
		t.Fatalf("expected CharacterClass, got %T", p.Alternatives[0].Elements[0])
	}
	if len(cc.Elements) != 2 {
		t.Fatalf("expected 2 ranges, got %d: %#v", len(cc.Elements), cc.Elements)
	}
	r0, ok := cc.Elements[0].(*CharacterClassRange)
	if !ok || r0.Min.Value != 'a' || r0.Max.Value != 'z' {
		t.Fatalf("expected a-z range, got %#v", cc.Elements[0])
	}
	if r0.Min.Parent() != r0 || r0.Max.Parent() != r0 {
		t.Error("range endpoints' parent should be the range")
	}
}

func TestAssemblerCharacterClassNegated(t *testing.T) {
	p := parse(t, "[^abc]", validator.Mode{}, validator.Options{})
	cc := p.Alternatives[0].Elements[0].(*CharacterClass)
	if !cc.Negate {
		t.Error("expected Negate to be true")
	}
	if len(cc.Elements) != 3 {
		t.Fatalf("expected 3 literal characters, got %d", len(cc.Elements))
	}
}

func TestAssemblerClassSetSubtraction(t *testing.T) {
	p := parse(t, "[a-z--[aeiou]]", validator.Mode{UnicodeSets: true}, validator.Options{ECMAVersion: 2024})
	expr, ok := p.Alternatives[0].Elements[0].(*ExpressionCharacterClass)
	if !ok {
		t.Fatalf("expected ExpressionCharacterClass, got %T", p.Alternatives[0].Elements[0])
	}
	sub, ok := expr.Expression.(*ClassSubtraction)
	if !ok {
		t.Fatalf("expected ClassSubtraction, got %T", expr.Expression)
	}
	left, ok := sub.Left.(*CharacterClass)
	if !ok || len(left.Elements) != 1 {
		t.Fatalf("expected left operand to be a synthetic CharacterClass wrapping the a-z range, got %#v", sub.Left)
	}
	right, ok := sub.Right.(*CharacterClass)
	if !ok || len(right.Elements) != 5 {
		t.Fatalf("expected right operand [aeiou], got %#v", sub.Right)
	}
}

func TestAssemblerClassSetIntersectionChain(t *testing.T) {
	p := parse(t, "[a-z&&[a-m]&&[c-k]]", validator.Mode{UnicodeSets: true}, validator.Options{ECMAVersion: 2024})
	expr := p.Alternatives[0].Elements[0].(*ExpressionCharacterClass)
	outer, ok := expr.Expression.(*ClassIntersection)
	if !ok {
		t.Fatalf("expected outer ClassIntersection, got %T", expr.Expression)
	}
	inner, ok := outer.Left.(*ClassIntersection)
	if !ok {
		t.Fatalf("expected chained intersection on the left, got %T", outer.Left)
	}
	if inner.Parent() != outer {
		t.Error("inner intersection's parent should be the outer intersection")
	}
}

func TestAssemblerLookaroundAssertion(t *testing.T) {
	p := parse(t, "a(?=b)", validator.Mode{}, validator.Options{})
	alt := p.Alternatives[0]
	if len(alt.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(alt.Elements))
	}
	la, ok := alt.Elements[1].(*LookaroundAssertion)
	if !ok {
		t.Fatalf("expected LookaroundAssertion, got %T", alt.Elements[1])
	}
	if la.Behind || la.Negate {
		t.Errorf("expected a plain lookahead, got %+v", la)
	}
	if len(la.Alternatives) != 1 || len(la.Alternatives[0].Elements) != 1 {
		t.Fatalf("expected one alternative with one element inside the lookahead, got %#v", la.Alternatives)
	}
}

func TestAssemblerInlineModifiers(t *testing.T) {
	p := parse(t, "(?i-m:a)", validator.Mode{}, validator.Options{ECMAVersion: 2025})
	g, ok := p.Alternatives[0].Elements[0].(*Group)
	if !ok {
		t.Fatalf("expected Group, got %T", p.Alternatives[0].Elements[0])
	}
	if g.Modifiers == nil {
		t.Fatal("expected Modifiers to be set")
	}
	if g.Modifiers.Add == nil || !g.Modifiers.Add.IgnoreCase {
		t.Errorf("expected Add.IgnoreCase, got %+v", g.Modifiers.Add)
	}
	if g.Modifiers.Remove == nil || !g.Modifiers.Remove.Multiline {
		t.Errorf("expected Remove.Multiline, got %+v", g.Modifiers.Remove)
	}
	if g.Modifiers.Parent() != g {
		t.Error("modifiers' parent should be the group")
	}
}

func TestAssemblerStringDisjunction(t *testing.T) {
	p := parse(t, `[\q{ab|c}]`, validator.Mode{UnicodeSets: true}, validator.Options{ECMAVersion: 2024})
	cc := p.Alternatives[0].Elements[0].(*CharacterClass)
	sd, ok := cc.Elements[0].(*ClassStringDisjunction)
	if !ok {
		t.Fatalf("expected ClassStringDisjunction, got %T", cc.Elements[0])
	}
	if len(sd.Alternatives) != 2 {
		t.Fatalf("expected 2 string alternatives, got %d", len(sd.Alternatives))
	}
	if len(sd.Alternatives[0].Characters) != 2 || len(sd.Alternatives[1].Characters) != 1 {
		t.Fatalf("expected 'ab' and 'c', got %#v", sd.Alternatives)
	}
	if sd.Alternatives[0].Characters[0].Parent() != sd.Alternatives[0] {
		t.Error("string alternative character's parent should be the StringAlternative")
	}
	if sd.Alternatives[0].GraphemeLength != 2 || sd.Alternatives[1].GraphemeLength != 1 {
		t.Errorf("expected grapheme lengths 2 and 1, got %d and %d",
			sd.Alternatives[0].GraphemeLength, sd.Alternatives[1].GraphemeLength)
	}
}

func TestAssemblerStringDisjunctionGraphemeLengthCountsClustersNotCodepoints(t *testing.T) {
	// U+0065 'e' + U+0301 COMBINING ACUTE ACCENT is two code points but one
	// extended grapheme cluster; a plain two-letter alternative is two
	// clusters. GraphemeLength must distinguish them for the v-mode
	// "longer string first" matching rule.
	p := parse(t, "[\\q{e\u0301|xy}]", validator.Mode{UnicodeSets: true}, validator.Options{ECMAVersion: 2024})
	cc := p.Alternatives[0].Elements[0].(*CharacterClass)
	sd := cc.Elements[0].(*ClassStringDisjunction)
	if len(sd.Alternatives[0].Characters) != 2 {
		t.Fatalf("expected the accented alternative to decode to 2 Characters, got %d", len(sd.Alternatives[0].Characters))
	}
	if sd.Alternatives[0].GraphemeLength != 1 {
		t.Errorf("expected combining-mark alternative to count as 1 grapheme cluster, got %d", sd.Alternatives[0].GraphemeLength)
	}
	if sd.Alternatives[1].GraphemeLength != 2 {
		t.Errorf("expected plain 2-letter alternative to count as 2 grapheme clusters, got %d", sd.Alternatives[1].GraphemeLength)
	}
}

func TestAssemblerUnicodePropertyEscape(t *testing.T) {
	p := parse(t, `\p{L}`, validator.Mode{Unicode: true}, validator.Options{})
	ps, ok := p.Alternatives[0].Elements[0].(*UnicodePropertyCharacterSet)
	if !ok {
		t.Fatalf("expected UnicodePropertyCharacterSet, got %T", p.Alternatives[0].Elements[0])
	}
	if ps.Key != "L" || ps.Negate {
		t.Errorf("expected property L, not negated, got %+v", ps)
	}
}

func TestAssemblerEscapeCharacterSet(t *testing.T) {
	p := parse(t, `\d\W`, validator.Mode{}, validator.Options{})
	alt := p.Alternatives[0]
	d := alt.Elements[0].(*EscapeCharacterSet)
	w := alt.Elements[1].(*EscapeCharacterSet)
	if d.Class != EscapeClassDigit || d.Negate {
		t.Errorf("expected non-negated digit class, got %+v", d)
	}
	if w.Class != EscapeClassWord || !w.Negate {
		t.Errorf("expected negated word class, got %+v", w)
	}
}

func TestAssemblerEdgeAndWordBoundaryAssertions(t *testing.T) {
	p := parse(t, `^\ba\B$`, validator.Mode{}, validator.Options{})
	alt := p.Alternatives[0]
	if len(alt.Elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(alt.Elements))
	}
	start := alt.Elements[0].(*EdgeAssertion)
	if start.Edge != EdgeKindStart {
		t.Errorf("expected start edge, got %+v", start)
	}
	wb := alt.Elements[1].(*WordBoundaryAssertion)
	if wb.Negate {
		t.Error("expected non-negated word boundary")
	}
	nwb := alt.Elements[3].(*WordBoundaryAssertion)
	if !nwb.Negate {
		t.Error("expected negated word boundary")
	}
	end := alt.Elements[4].(*EdgeAssertion)
	if end.Edge != EdgeKindEnd {
		t.Errorf("expected end edge, got %+v", end)
	}
}

func TestAssemblerFlags(t *testing.T) {
	a := NewAssembler("/ab/gi")
	if err := validator.ValidateLiteral(a, "/ab/gi", 0, len("/ab/gi"), validator.Options{}); err != nil {
		t.Fatalf("ValidateLiteral: %v", err)
	}
	f := a.Flags()
	if f == nil || !f.Global || !f.IgnoreCase || f.Multiline {
		t.Errorf("expected g+i flags only, got %+v", f)
	}
	if a.Pattern() == nil {
		t.Fatal("expected Pattern to be built alongside Flags")
	}
}

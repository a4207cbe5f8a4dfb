package ast

// Clone deep-copies a Pattern, rebuilding every parent link to point at the
// corresponding node in the copy. Required by spec.md §6.3: a Cache must
// return copies "mutation-isolated" from the tree it stored, since two
// callers sharing one cached AST could otherwise observe each other's edits
// (or race on them).
func Clone(p *Pattern) *Pattern {
	if p == nil {
		return nil
	}
	ctx := newCloneCtx()
	cp := &Pattern{base: p.base}
	cp.parent = nil // Clone always produces a detached root; see CloneLiteral to keep the RegExpLiteral link
	cp.Alternatives = ctx.cloneAlternatives(p.Alternatives, cp)
	ctx.relink()
	return cp
}

// CloneLiteral deep-copies a RegExpLiteral (its Pattern and its Flags).
func CloneLiteral(lit *RegExpLiteral) *RegExpLiteral {
	if lit == nil {
		return nil
	}
	ctx := newCloneCtx()
	out := &RegExpLiteral{base: lit.base}
	if lit.Pattern != nil {
		out.Pattern = &Pattern{base: lit.Pattern.base}
		out.Pattern.parent = out
		out.Pattern.Alternatives = ctx.cloneAlternatives(lit.Pattern.Alternatives, out.Pattern)
	}
	if lit.Flags != nil {
		f := *lit.Flags
		f.parent = out
		out.Flags = &f
	}
	ctx.relink()
	return out
}

// cloneCtx accumulates cross-reference bookkeeping for the duration of one
// Clone/CloneLiteral call: Backreferences can resolve to a CapturingGroup
// anywhere else in the whole pattern (a different alternative, an
// enclosing or sibling group, even one not yet walked when the
// backreference itself is cloned, per `/\1(a)/`). Relinking therefore
// happens once, after the entire tree has been copied and every
// CapturingGroup has an entry in captures.
type cloneCtx struct {
	captures     map[*CapturingGroup]*CapturingGroup
	origBackrefs []*Backreference
	newBackrefs  []*Backreference
}

func newCloneCtx() *cloneCtx {
	return &cloneCtx{captures: make(map[*CapturingGroup]*CapturingGroup)}
}

func (ctx *cloneCtx) relink() {
	for i, orig := range ctx.origBackrefs {
		clone := ctx.newBackrefs[i]
		for _, origGroup := range orig.Resolved {
			if cg, ok := ctx.captures[origGroup]; ok {
				clone.Resolved = append(clone.Resolved, cg)
				cg.References = append(cg.References, clone)
			}
		}
		clone.Ambiguous = orig.Ambiguous
	}
}

func (ctx *cloneCtx) cloneAlternatives(alts []*Alternative, parent Node) []*Alternative {
	if alts == nil {
		return nil
	}
	out := make([]*Alternative, len(alts))
	for i, a := range alts {
		ca := &Alternative{base: a.base}
		ca.parent = parent
		ca.Elements = ctx.cloneElements(a.Elements, ca)
		out[i] = ca
	}
	return out
}

func (ctx *cloneCtx) cloneElements(elems []Element, parent Node) []Element {
	if elems == nil {
		return nil
	}
	out := make([]Element, len(elems))
	for i, e := range elems {
		out[i] = ctx.cloneElement(e, parent)
	}
	return out
}

func (ctx *cloneCtx) cloneElement(e Element, parent Node) Element {
	switch n := e.(type) {
	case *Character:
		c := *n
		c.parent = parent
		return &c
	case *AnyCharacterSet:
		c := *n
		c.parent = parent
		return &c
	case *EscapeCharacterSet:
		c := *n
		c.parent = parent
		return &c
	case *UnicodePropertyCharacterSet:
		c := *n
		c.parent = parent
		return &c
	case *EdgeAssertion:
		c := *n
		c.parent = parent
		return &c
	case *WordBoundaryAssertion:
		c := *n
		c.parent = parent
		return &c
	case *Backreference:
		c := *n
		c.parent = parent
		c.Resolved = nil // relinked by ctx.relink once every capture is cloned
		ctx.origBackrefs = append(ctx.origBackrefs, n)
		ctx.newBackrefs = append(ctx.newBackrefs, &c)
		return &c
	case *Quantifier:
		c := *n
		c.parent = parent
		c.Element = ctx.cloneElement(n.Element, &c)
		return &c
	case *Group:
		c := *n
		c.parent = parent
		if n.Modifiers != nil {
			c.Modifiers = ctx.cloneModifiers(n.Modifiers, &c)
		}
		c.Alternatives = ctx.cloneAlternatives(n.Alternatives, &c)
		return &c
	case *CapturingGroup:
		c := *n
		c.parent = parent
		c.References = nil // relinked by ctx.relink
		c.Alternatives = ctx.cloneAlternatives(n.Alternatives, &c)
		ctx.captures[n] = &c
		return &c
	case *LookaroundAssertion:
		c := *n
		c.parent = parent
		c.Alternatives = ctx.cloneAlternatives(n.Alternatives, &c)
		return &c
	case *CharacterClass:
		c := *n
		c.parent = parent
		c.Elements = ctx.cloneClassElements(n.Elements, &c)
		return &c
	case *ExpressionCharacterClass:
		c := *n
		c.parent = parent
		c.Expression = ctx.cloneClassOperand(n.Expression, &c)
		return &c
	default:
		panic("ast: Clone encountered an unrecognized Element type")
	}
}

func (ctx *cloneCtx) cloneModifiers(m *Modifiers, parent Node) *Modifiers {
	cm := &Modifiers{base: m.base}
	cm.parent = parent
	if m.Add != nil {
		add := *m.Add
		add.parent = cm
		cm.Add = &add
	}
	if m.Remove != nil {
		rem := *m.Remove
		rem.parent = cm
		cm.Remove = &rem
	}
	return cm
}

func (ctx *cloneCtx) cloneClassElements(elems []ClassElement, parent Node) []ClassElement {
	if elems == nil {
		return nil
	}
	out := make([]ClassElement, len(elems))
	for i, e := range elems {
		out[i] = ctx.cloneClassElement(e, parent)
	}
	return out
}

func (ctx *cloneCtx) cloneClassElement(e ClassElement, parent Node) ClassElement {
	switch n := e.(type) {
	case *Character:
		c := *n
		c.parent = parent
		return &c
	case *EscapeCharacterSet:
		c := *n
		c.parent = parent
		return &c
	case *UnicodePropertyCharacterSet:
		c := *n
		c.parent = parent
		return &c
	case *CharacterClassRange:
		c := *n
		c.parent = parent
		min := *n.Min
		max := *n.Max
		min.parent = &c
		max.parent = &c
		c.Min = &min
		c.Max = &max
		return &c
	case *CharacterClass:
		c := *n
		c.parent = parent
		c.Elements = ctx.cloneClassElements(n.Elements, &c)
		return &c
	case *ExpressionCharacterClass:
		c := *n
		c.parent = parent
		c.Expression = ctx.cloneClassOperand(n.Expression, &c)
		return &c
	case *ClassStringDisjunction:
		c := *n
		c.parent = parent
		c.Alternatives = ctx.cloneStringAlternatives(n.Alternatives, &c)
		return &c
	default:
		panic("ast: Clone encountered an unrecognized ClassElement type")
	}
}

func (ctx *cloneCtx) cloneClassOperand(op ClassOperand, parent Node) ClassOperand {
	switch n := op.(type) {
	case *CharacterClass:
		c := *n
		c.parent = parent
		c.Elements = ctx.cloneClassElements(n.Elements, &c)
		return &c
	case *ClassStringDisjunction:
		c := *n
		c.parent = parent
		c.Alternatives = ctx.cloneStringAlternatives(n.Alternatives, &c)
		return &c
	case *ClassIntersection:
		c := *n
		c.parent = parent
		c.Left = ctx.cloneClassOperand(n.Left, &c)
		c.Right = ctx.cloneClassOperand(n.Right, &c)
		return &c
	case *ClassSubtraction:
		c := *n
		c.parent = parent
		c.Left = ctx.cloneClassOperand(n.Left, &c)
		c.Right = ctx.cloneClassOperand(n.Right, &c)
		return &c
	case *EscapeCharacterSet, *UnicodePropertyCharacterSet, *ExpressionCharacterClass:
		return ctx.cloneClassElement(n.(ClassElement), parent).(ClassOperand)
	default:
		panic("ast: Clone encountered an unrecognized ClassOperand type")
	}
}

func (ctx *cloneCtx) cloneStringAlternatives(alts []*StringAlternative, parent Node) []*StringAlternative {
	if alts == nil {
		return nil
	}
	out := make([]*StringAlternative, len(alts))
	for i, a := range alts {
		ca := &StringAlternative{base: a.base, GraphemeLength: a.GraphemeLength}
		ca.parent = parent
		ca.Characters = make([]*Character, len(a.Characters))
		for j, ch := range a.Characters {
			cc := *ch
			cc.parent = ca
			ca.Characters[j] = &cc
		}
		out[i] = ca
	}
	return out
}

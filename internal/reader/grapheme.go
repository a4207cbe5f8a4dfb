package reader

import "github.com/rivo/uniseg"

// GraphemeClusterCount reports how many extended grapheme clusters s
// forms. internal/ast.Assembler uses it to fill in
// StringAlternative.GraphemeLength for each `\q{...}` alternative; no
// validation step calls it, so it never causes a pattern to be rejected.
// uniseg's grapheme segmentation implements Unicode's extended grapheme
// cluster rules.
func GraphemeClusterCount(s string) int {
	count := 0
	state := -1
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		s = rest
		state = newState
		count++
	}
	return count
}

// IsSingleGraphemeCluster reports whether s is exactly one extended
// grapheme cluster, e.g. a flag emoji sequence or a base+combining-mark
// pair that a `v`-mode properties-of-strings set would match as one unit.
func IsSingleGraphemeCluster(s string) bool {
	return GraphemeClusterCount(s) == 1
}

package validator

// prescanResult is the outcome of the lightweight first pass over a
// pattern described in spec.md §4.2.3: how many capturing groups it
// contains, and what names they use. It is deliberately permissive about
// malformed syntax — the main validating pass is what rejects those —
// but it does respect escape and character-class syntax so that parens
// inside `\(` or `[(]` are never miscounted.
type prescanResult struct {
	captureCount int
	names        map[string]bool
}

// prescan walks src once, in source order, counting unescaped `(` not
// immediately followed by `?` as a numbered capturing group, and
// `(?<name>` (but not `(?<=`/`(?<!`, which are lookbehind) as a named one.
func prescan(src string) prescanResult {
	names := make(map[string]bool)
	count := 0
	inClass := false

	units := []rune(src)
	n := len(units)
	i := 0
	for i < n {
		c := units[i]
		switch {
		case c == '\\':
			i += 2 // skip the escaped character; malformed escapes are the main pass's problem
		case inClass:
			if c == ']' {
				inClass = false
			}
			i++
		case c == '[':
			inClass = true
			i++
		case c == '(':
			i++
			if i < n && units[i] == '?' {
				i++
				if i < n && units[i] == '<' && i+1 < n && units[i+1] != '=' && units[i+1] != '!' {
					i++ // consume '<'
					start := i
					for i < n && units[i] != '>' {
						i++
					}
					names[string(units[start:i])] = true
					if i < n {
						i++ // consume '>'
					}
					count++
				}
				// (?:...), (?=...), (?!...), (?<=...), (?<!...), (?ims:...): not a capture
			} else {
				count++
			}
		default:
			i++
		}
	}

	return prescanResult{captureCount: count, names: names}
}

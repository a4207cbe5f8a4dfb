package validator

import "github.com/0x4d5352/ecmarex/ecmaerr"

// FlagsResult is the decoded outcome of ValidateFlags.
type FlagsResult struct {
	Global      bool
	IgnoreCase  bool
	Multiline   bool
	Unicode     bool
	Sticky      bool
	DotAll      bool
	HasIndices  bool
	UnicodeSets bool
}

// ValidateFlags parses src[start:end] as a regexp flags string: zero or
// more of "dgimsuvy", each appearing at most once, with `u` and `v`
// mutually exclusive (§4.2, edge case table). ecmaVersion gates the `s`
// flag (2018), `d` flag (2022), and `v` flag (2024) per §4.2.1's edition
// table; 0 selects MaxECMAVersion.
func ValidateFlags(src string, start, end int, ecmaVersion int) (FlagsResult, error) {
	if ecmaVersion == 0 {
		ecmaVersion = MaxECMAVersion
	}
	var result FlagsResult
	seen := make(map[byte]bool, end-start)
	for i := start; i < end; i++ {
		c := src[i]
		if seen[c] {
			return FlagsResult{}, ecmaerr.Newf(i, ecmaerr.KindInvalidFlags, "duplicate flag %q", c)
		}
		seen[c] = true
		switch c {
		case 'd':
			if ecmaVersion < 2022 {
				return FlagsResult{}, ecmaerr.Newf(i, ecmaerr.KindInvalidFlags, "flag 'd' requires ecmaVersion 2022 or later")
			}
			result.HasIndices = true
		case 'g':
			result.Global = true
		case 'i':
			result.IgnoreCase = true
		case 'm':
			result.Multiline = true
		case 's':
			if ecmaVersion < 2018 {
				return FlagsResult{}, ecmaerr.Newf(i, ecmaerr.KindInvalidFlags, "flag 's' requires ecmaVersion 2018 or later")
			}
			result.DotAll = true
		case 'u':
			result.Unicode = true
		case 'v':
			if ecmaVersion < 2024 {
				return FlagsResult{}, ecmaerr.Newf(i, ecmaerr.KindInvalidFlags, "flag 'v' requires ecmaVersion 2024 or later")
			}
			result.UnicodeSets = true
		case 'y':
			result.Sticky = true
		default:
			return FlagsResult{}, ecmaerr.Newf(i, ecmaerr.KindInvalidFlags, "unrecognized flag %q", c)
		}
	}
	if result.Unicode && result.UnicodeSets {
		return FlagsResult{}, ecmaerr.New(start, ecmaerr.KindInvalidFlags, "flags 'u' and 'v' may not both be set")
	}
	return result, nil
}

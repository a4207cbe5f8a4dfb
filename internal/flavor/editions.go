package flavor

import "github.com/0x4d5352/ecmarex/internal/validator"

// edition is the concrete Flavor implementation shared by every registered
// ECMAScript version: a name, a description, a fixed ECMAVersion, and the
// feature table that version's §4.2.1 gating implies.
type edition struct {
	name        string
	description string
	version     int
	features    FeatureSet
}

func (e *edition) Name() string        { return e.name }
func (e *edition) Description() string { return e.description }

func (e *edition) Options() validator.Options {
	return validator.Options{ECMAVersion: e.version}
}

func (e *edition) Features() FeatureSet { return e.features }

func (e *edition) SupportedFlags() []FlagInfo {
	flags := []FlagInfo{
		{Char: 'g', Name: "global", Description: "find all matches rather than stopping after the first"},
		{Char: 'i', Name: "ignoreCase", Description: "case-insensitive matching"},
		{Char: 'm', Name: "multiline", Description: "^ and $ match line boundaries"},
		{Char: 'u', Name: "unicode", Description: "enable Unicode mode"},
		{Char: 'y', Name: "sticky", Description: "match only from the lastIndex position"},
	}
	if e.features.DotAllFlag {
		flags = append(flags, FlagInfo{Char: 's', Name: "dotAll", Description: ". matches line terminators"})
	}
	if e.features.HasIndicesFlag {
		flags = append(flags, FlagInfo{Char: 'd', Name: "hasIndices", Description: "generate start/end indices for captures"})
	}
	if e.features.UnicodeSets {
		flags = append(flags, FlagInfo{Char: 'v', Name: "unicodeSets", Description: "enable Unicode mode with class set notation"})
	}
	return flags
}

func init() {
	Register(&edition{
		name:        "es2015",
		description: "ECMAScript 2015 (ES6): the baseline regex grammar plus Annex B legacy syntax",
		version:     2015,
	})
	Register(&edition{
		name:        "es2018",
		description: "adds lookbehind assertions, named capture groups, dotAll, and Unicode property escapes",
		version:     2018,
		features: FeatureSet{
			Lookbehind:        true,
			NamedGroups:       true,
			UnicodeProperties: true,
			DotAllFlag:        true,
		},
	})
	Register(&edition{
		name:        "es2022",
		description: "adds the hasIndices (d) flag",
		version:     2022,
		features: FeatureSet{
			Lookbehind:        true,
			NamedGroups:       true,
			UnicodeProperties: true,
			DotAllFlag:        true,
			HasIndicesFlag:    true,
		},
	})
	Register(&edition{
		name:        "es2024",
		description: "adds the unicodeSets (v) flag and character class set notation (union, intersection, subtraction, \\q{...})",
		version:     2024,
		features: FeatureSet{
			Lookbehind:        true,
			NamedGroups:       true,
			UnicodeProperties: true,
			DotAllFlag:        true,
			HasIndicesFlag:    true,
			UnicodeSets:       true,
		},
	})
	Register(&edition{
		name:        "es2025",
		description: "adds duplicate named capture groups in disjoint alternation branches and inline modifier groups",
		version:     2025,
		features: FeatureSet{
			Lookbehind:             true,
			NamedGroups:            true,
			UnicodeProperties:      true,
			DotAllFlag:             true,
			HasIndicesFlag:         true,
			UnicodeSets:            true,
			DuplicateNamedCaptures: true,
			InlineModifiers:        true,
		},
	})
}

// Package flavor is a registry of named ECMAScript edition profiles. The
// teacher used this package to let a CLI pick among unrelated regex
// dialects (PCRE, POSIX, JavaScript, ...); this module parses exactly one
// dialect, so the registry now indexes editions of that one dialect
// instead — "es2018", "es2022", "es2025" — each bundling the
// validator.Options defaults and the feature-capability table that
// edition implies (§4.2.1's gating table, surfaced as data instead of a
// switch buried in the validator).
package flavor

import (
	"sort"
	"sync"

	"github.com/0x4d5352/ecmarex/internal/validator"
)

// Flavor describes one ECMAScript edition's regex capabilities.
type Flavor interface {
	// Name is the edition identifier, e.g. "es2018".
	Name() string

	// Description is a human-readable summary.
	Description() string

	// Options returns the validator.Options this edition implies.
	Options() validator.Options

	// SupportedFlags returns the regex flags recognized as of this edition.
	SupportedFlags() []FlagInfo

	// Features returns this edition's regex-syntax capability table.
	Features() FeatureSet
}

// FlagInfo describes a regex flag.
type FlagInfo struct {
	Char        rune
	Name        string
	Description string
}

// FeatureSet describes which ECMAScript regex-syntax features an edition
// supports. Unlike the teacher's version (which spanned unrelated regex
// dialects), every field here corresponds to a specific edition boundary
// in spec.md §4.2.1.
type FeatureSet struct {
	Lookbehind                bool // ES2018: (?<=...), (?<!...)
	NamedGroups               bool // ES2018: (?<name>...), \k<name>
	UnicodeProperties         bool // ES2018: \p{...}, \P{...}
	DotAllFlag                bool // ES2018: s flag
	HasIndicesFlag            bool // ES2022: d flag
	UnicodeSets               bool // ES2024: v flag, class set notation
	DuplicateNamedCaptures    bool // ES2025: same name in disjoint branches
	InlineModifiers           bool // ES2025: (?ims-ims:...), (?ims-ims)
}

var (
	registry     = make(map[string]Flavor)
	registryLock sync.RWMutex
)

// Register adds a Flavor to the registry, replacing any edition already
// registered under the same name. Called from this package's init().
func Register(f Flavor) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[f.Name()] = f
}

// Get retrieves a registered edition by name.
func Get(name string) (Flavor, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// List returns all registered edition names in sorted order.
func List() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the registry.
func All() map[string]Flavor {
	registryLock.RLock()
	defer registryLock.RUnlock()
	result := make(map[string]Flavor, len(registry))
	for name, f := range registry {
		result[name] = f
	}
	return result
}

// Count returns the number of registered editions.
func Count() int {
	registryLock.RLock()
	defer registryLock.RUnlock()
	return len(registry)
}

package validator

import (
	"testing"

	"github.com/dlclark/regexp2"
)

// oracleCases are patterns whose acceptance/rejection under this package's
// Validator (non-strict, default ECMAScript semantics, `u` flag) is expected
// to agree with github.com/dlclark/regexp2's own ECMAScript compatibility
// mode. regexp2 does not implement several ES2018+ constructs this package
// validates (named groups use a different syntax, `v`-mode class set
// notation and `\q{...}` don't exist in .NET-derived engines at all), so
// this oracle only covers the syntax shared by both: the classic grammar
// spec.md's own edge-case table traces back to ES5/ES2015.
var oracleCases = []string{
	`a(b|c)d`,
	`a*b+c?d{2}e{2,}f{2,5}`,
	`[a-z]`,
	`[^a-z0-9_]`,
	`(a)\1`,
	`a(?=b)`,
	`a(?!b)`,
	`^a$`,
	`\bfoo\B`,
	`\d\D\s\S\w\W`,
	`(a)(b)(c)\2\1`,
	`a|b|c`,
	`(?:abc)+`,
}

func TestOracleAgreementOnSharedSyntax(t *testing.T) {
	for _, pattern := range oracleCases {
		t.Run(pattern, func(t *testing.T) {
			_, oracleErr := regexp2.Compile(pattern, regexp2.ECMAScript)
			if oracleErr != nil {
				t.Fatalf("regexp2 rejected a pattern this oracle expected to accept: %v", oracleErr)
			}

			sink := &recordingSink{}
			if err := ValidatePattern(sink, pattern, 0, len(pattern), Mode{Unicode: true}, Options{}); err != nil {
				t.Fatalf("ValidatePattern(%q) disagreed with the regexp2 oracle (which accepted it): %v", pattern, err)
			}
		})
	}
}

// oracleRejectCases are malformed under both engines.
var oracleRejectCases = []string{
	`a(b`,
	`[a-`,
	`a{3,2}`,
	`*a`,
}

func TestOracleAgreementOnRejectedSyntax(t *testing.T) {
	for _, pattern := range oracleRejectCases {
		t.Run(pattern, func(t *testing.T) {
			_, oracleErr := regexp2.Compile(pattern, regexp2.ECMAScript)
			if oracleErr == nil {
				t.Skipf("regexp2 unexpectedly accepted %q; nothing to cross-check", pattern)
			}

			sink := &recordingSink{}
			err := ValidatePattern(sink, pattern, 0, len(pattern), Mode{Unicode: true}, Options{})
			if err == nil {
				t.Fatalf("ValidatePattern(%q) accepted a pattern the regexp2 oracle rejected: %v", pattern, oracleErr)
			}
		})
	}
}

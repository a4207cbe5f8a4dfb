// Package validator implements the recursive-descent ECMAScript regexp
// parser described in spec.md §4.2: it simultaneously validates pattern
// syntax for a given edition/flag combination and emits the builder event
// stream an EventSink reacts to. It never materializes an AST itself —
// that's internal/ast.Assembler's job, reached only through EventSink.
package validator

import (
	"unicode/utf16"

	"github.com/0x4d5352/ecmarex/ecmaerr"
	"github.com/0x4d5352/ecmarex/internal/reader"
	"github.com/0x4d5352/ecmarex/internal/unicodeprop"
)

// MinECMAVersion and MaxECMAVersion bound the editions §4.2.1's gating
// table recognizes.
const (
	MinECMAVersion = 2015
	MaxECMAVersion = 2025
)

// DefaultMaxInputLength is the resource cap recommended by spec.md §5: the
// largest pattern (in UTF-16 code units) a Validator accepts before
// returning ecmaerr.KindInputTooLarge.
const DefaultMaxInputLength = 1 << 20 // 1 MiB of UTF-16 code units

// Options configures a Validator.
type Options struct {
	Strict      bool
	ECMAVersion int // 0 means MaxECMAVersion
	MaxInputLength int // 0 means DefaultMaxInputLength
}

func (o Options) normalized() Options {
	if o.ECMAVersion == 0 {
		o.ECMAVersion = MaxECMAVersion
	}
	if o.MaxInputLength == 0 {
		o.MaxInputLength = DefaultMaxInputLength
	}
	return o
}

// Mode selects which character-class/backslash dialect governs a pattern:
// Unicode (`u`), UnicodeSets (`v`), or neither (default/Annex B eligible).
// At most one of the two may be true.
type Mode struct {
	Unicode     bool
	UnicodeSets bool
}

// Validator drives one parse. It is not safe for concurrent or repeated
// use — construct a fresh one per pattern (§5: "strictly single-threaded
// and synchronous").
type Validator struct {
	sink EventSink
	opts Options
	mode Mode
	annexB bool

	r         *reader.Reader
	bodyStart int // absolute source offset the reader's position 0 maps to

	scan     prescanResult
	branches *branchTree
	names    *nameScope
	props    *unicodeprop.Table

	groupNum int
}

// ValidatePattern parses src[start:end] as a bare pattern body under mode,
// emitting events to sink. It implements §6.1's parsePattern.
func ValidatePattern(sink EventSink, src string, start, end int, mode Mode, opts Options) (err error) {
	opts = opts.normalized()
	if err := checkOptions(opts); err != nil {
		return err
	}
	units := 0
	for _, c := range src[start:end] {
		units += utf16.RuneLen(c)
	}
	if units > opts.MaxInputLength {
		return ecmaerr.Newf(start, ecmaerr.KindInputTooLarge, "pattern of %d code units exceeds the %d limit", units, opts.MaxInputLength)
	}
	if mode.Unicode && mode.UnicodeSets {
		return ecmaerr.New(start, ecmaerr.KindInvalidFlags, "unicode and unicodeSets may not both be set")
	}
	if mode.UnicodeSets && opts.ECMAVersion < 2024 {
		return ecmaerr.New(start, ecmaerr.KindInvalidFlags, "the v mode/flag requires ecmaVersion 2024 or later")
	}

	v := newValidator(sink, src, start, end, mode, opts)
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ecmaerr.Error); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	v.parsePattern()
	return nil
}

// ValidateLiteral parses src[start:end], which must begin and end with
// `/`, as a `/pattern/flags` literal. It implements §6.1's parseLiteral.
func ValidateLiteral(sink EventSink, src string, start, end int, opts Options) (err error) {
	opts = opts.normalized()
	if err := checkOptions(opts); err != nil {
		return err
	}
	if end-start < 2 || src[start] != '/' {
		return ecmaerr.New(start, ecmaerr.KindInvalidGrammar, "a regexp literal must start with '/'")
	}
	lastSlash := -1
	for i := end - 1; i > start; i-- {
		if src[i] == '/' {
			lastSlash = i
			break
		}
	}
	if lastSlash <= start {
		return ecmaerr.New(end, ecmaerr.KindUnterminatedGroup, "a regexp literal must contain a closing '/'")
	}

	flagsResult, ferr := ValidateFlags(src, lastSlash+1, end, opts.ECMAVersion)
	if ferr != nil {
		return ferr
	}
	mode := Mode{Unicode: flagsResult.Unicode, UnicodeSets: flagsResult.UnicodeSets}

	if err := ValidatePattern(sink, src, start+1, lastSlash, mode, opts); err != nil {
		return err
	}
	sink.OnFlags(lastSlash+1, end,
		flagsResult.Global, flagsResult.IgnoreCase, flagsResult.Multiline, flagsResult.Unicode,
		flagsResult.Sticky, flagsResult.DotAll, flagsResult.HasIndices, flagsResult.UnicodeSets)
	return nil
}

func checkOptions(opts Options) error {
	if opts.ECMAVersion < MinECMAVersion || opts.ECMAVersion > MaxECMAVersion {
		return ecmaerr.Newf(0, ecmaerr.KindInvalidGrammar, "unsupported ecmaVersion %d", opts.ECMAVersion)
	}
	return nil
}

func newValidator(sink EventSink, src string, start, end int, mode Mode, opts Options) *Validator {
	body := src[start:end]
	scan := prescan(body)
	v := &Validator{
		sink:      sink,
		opts:      opts,
		mode:      mode,
		annexB:    !opts.Strict && !mode.Unicode && !mode.UnicodeSets,
		r:         reader.New(src, start, end, mode.Unicode || mode.UnicodeSets),
		bodyStart: start,
		scan:      scan,
		branches:  newBranchTree(),
		names:     newNameScope(opts.ECMAVersion < 2025),
		props:     unicodeprop.Build(opts.ECMAVersion),
	}
	return v
}

// fail aborts the parse by panicking with an *ecmaerr.Error; it is
// recovered at the ValidatePattern/ValidateLiteral boundary. Using panic
// here keeps the many, deeply nested recursive-descent methods free of
// `if err != nil { return err }` plumbing, matching how a single-pass,
// abort-on-first-error scanner is conventionally written.
func (v *Validator) fail(offset int, kind ecmaerr.Kind, format string, args ...any) {
	panic(ecmaerr.Newf(offset, kind, format, args...))
}

func (v *Validator) internal(offset int, message string) {
	panic(ecmaerr.Internal(offset, message))
}

// abs converts a Reader offset (relative to the pattern body the Reader was
// constructed over) to an absolute offset into the original source string.
func (v *Validator) abs(readerOffset int) int { return v.bodyStart + readerOffset }

// pos is shorthand for the current absolute offset.
func (v *Validator) pos() int { return v.abs(v.r.Offset()) }

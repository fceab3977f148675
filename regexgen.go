// Package regexgen synthesizes a single regular expression that matches
// exactly a finite set of test-case strings (or a controlled generalization
// of it), via grapheme tokenization, DFA construction and minimization,
// Brzozowski state elimination, and PCRE rendering.
//
// Example:
//
//	pattern, err := regexgen.NewBuilder("a", "aa", "aaa").Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pattern) // ^a(?:aa?)?$
package regexgen

import (
	"bufio"
	"os"
	"strings"

	"github.com/coregx/regexgen/dfa"
	"github.com/coregx/regexgen/grapheme"
	"github.com/coregx/regexgen/render"
	"github.com/coregx/regexgen/synth"
)

// Builder accumulates test cases and rendering options, then synthesizes a
// pattern on Build. A Builder owns its state exclusively; it is not safe
// for concurrent use by multiple goroutines (spec §5), matching the
// teacher's note that only read-only use of a compiled *Regex is shared.
type Builder struct {
	cases       []string
	readErr     error
	grapheme    grapheme.Options
	repetition  synth.RepetitionConfig
	convertReps bool
	render      render.Options
}

// NewBuilder starts a Builder from an in-memory list of test cases.
func NewBuilder(cases ...string) *Builder {
	return &Builder{
		cases:      cases,
		repetition: synth.DefaultRepetitionConfig(),
		render:     render.DefaultOptions(),
	}
}

// NewBuilderFromFile starts a Builder from a file of test cases, one per
// line (LF or CRLF terminated). A read failure is deferred and surfaced by
// Build as ErrIO, matching spec §7's "all errors surface at the builder's
// boundary" policy.
func NewBuilderFromFile(path string) *Builder {
	b := &Builder{
		repetition: synth.DefaultRepetitionConfig(),
		render:     render.DefaultOptions(),
	}
	f, err := os.Open(path)
	if err != nil {
		b.readErr = err
		return b
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		b.cases = append(b.cases, line)
	}
	if err := scanner.Err(); err != nil {
		b.readErr = err
	}
	return b
}

// Digits enables \d shorthand-class conversion.
func (b *Builder) Digits() *Builder { b.grapheme.Digits = true; return b }

// NonDigits enables \D shorthand-class conversion.
func (b *Builder) NonDigits() *Builder { b.grapheme.NonDigits = true; return b }

// Whitespace enables \s shorthand-class conversion.
func (b *Builder) Whitespace() *Builder { b.grapheme.Whitespace = true; return b }

// NonWhitespace enables \S shorthand-class conversion.
func (b *Builder) NonWhitespace() *Builder { b.grapheme.NonWhitespace = true; return b }

// Words enables \w shorthand-class conversion.
func (b *Builder) Words() *Builder { b.grapheme.Words = true; return b }

// NonWords enables \W shorthand-class conversion.
func (b *Builder) NonWords() *Builder { b.grapheme.NonWords = true; return b }

// CaseInsensitive enables the (?i) inline flag and lower-cases the test
// cases before tokenization, so case-equivalent inputs share DFA states.
func (b *Builder) CaseInsensitive() *Builder {
	b.render.CaseInsensitive = true
	b.grapheme.CaseInsensitive = true
	return b
}

// CapturingGroups uses (…) instead of (?:…).
func (b *Builder) CapturingGroups() *Builder { b.render.CapturingGroups = true; return b }

// EscapeNonASCII enables \u{HEX} escaping of non-ASCII codepoints;
// useSurrogates additionally splits astral codepoints into UTF-16
// surrogate pairs.
func (b *Builder) EscapeNonASCII(useSurrogates bool) *Builder {
	b.render.EscapeNonASCII = true
	b.render.UseSurrogatePairs = useSurrogates
	return b
}

// Verbose enables multi-line, indented rendering with a leading (?x) flag.
func (b *Builder) Verbose() *Builder { b.render.Verbose = true; return b }

// WithoutStartAnchor removes the leading ^.
func (b *Builder) WithoutStartAnchor() *Builder { b.render.AnchorStart = false; return b }

// WithoutEndAnchor removes the trailing $.
func (b *Builder) WithoutEndAnchor() *Builder { b.render.AnchorEnd = false; return b }

// WithoutAnchors removes both ^ and $.
func (b *Builder) WithoutAnchors() *Builder {
	b.render.AnchorStart = false
	b.render.AnchorEnd = false
	return b
}

// ConvertRepetitions enables the repetition analyzer (spec §4.5).
func (b *Builder) ConvertRepetitions() *Builder { b.convertReps = true; return b }

// MinRepetitions sets the repetition analyzer's minimum extra-repeat
// threshold (default 1). Values below 1 cause Build to fail with
// ErrInvalidConfig.
func (b *Builder) MinRepetitions(n int) *Builder { b.repetition.MinRepetitions = n; return b }

// MinSubstringLength sets the repetition analyzer's minimum repeated-unit
// width (default 1). Values below 1 cause Build to fail with
// ErrInvalidConfig.
func (b *Builder) MinSubstringLength(n int) *Builder { b.repetition.MinSubstringLength = n; return b }

// Build runs the synthesis pipeline and returns the PCRE pattern.
func (b *Builder) Build() (string, error) {
	if b.readErr != nil {
		return "", &BuildError{Stage: "read", Err: fmtIOError(b.readErr)}
	}
	if len(b.cases) == 0 {
		return "", &BuildError{Stage: "tokenize", Err: ErrEmptyInput}
	}
	if err := b.repetition.Validate(); err != nil {
		return "", &BuildError{Stage: "configure", Err: fmtInvalidConfig(err)}
	}

	words := make([][]grapheme.Symbol, len(b.cases))
	for i, s := range b.cases {
		if b.grapheme.CaseInsensitive {
			s = strings.ToLower(s)
		}
		words[i] = grapheme.Tokenize(s, b.grapheme)
	}

	d := dfa.Minimize(dfa.Build(words))
	e := synth.Synthesize(d)
	if b.convertReps {
		e = synth.AnalyzeRepetitions(e, b.repetition)
	}
	e = synth.Coalesce(e)

	return render.Render(e, b.render), nil
}

func fmtIOError(cause error) error {
	return &ioError{cause: cause}
}

type ioError struct{ cause error }

func (e *ioError) Error() string { return ErrIO.Error() + ": " + e.cause.Error() }
func (e *ioError) Unwrap() error { return ErrIO }

func fmtInvalidConfig(cause error) error {
	return &invalidConfigError{cause: cause}
}

type invalidConfigError struct{ cause error }

func (e *invalidConfigError) Error() string { return ErrInvalidConfig.Error() + ": " + e.cause.Error() }
func (e *invalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Package runner implements the CLI surface described in spec §6.2: parsing
// flags with goflags and reporting fatal errors with gologger, both
// grounded on projectdiscovery-alterx's internal/runner/runner.go.
package runner

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/regexgen"
)

// Options holds the parsed CLI flags, one field per spec §6.2 table entry.
type Options struct {
	Cases goflags.StringSlice
	File  string // "-" triggers a stdin read

	Digits        bool
	NonDigits     bool
	Whitespace    bool
	NonWhitespace bool
	Words         bool
	NonWords      bool

	ConvertRepetitions bool
	MinRepetitions     int
	MinSubstringLength int

	CaseInsensitive bool
	CapturingGroups bool
	EscapeNonASCII  bool
	WithSurrogates  bool
	Verbose         bool

	NoStartAnchor bool
	NoEndAnchor   bool
	NoAnchors     bool
}

// ParseFlags builds a goflags.FlagSet mirroring spec §6.2's table, grouped
// the way alterx groups "input"/"conversions"/"rendering" flags, and fatals
// via gologger on a parse failure.
func ParseFlags() *Options {
	opts := &Options{MinRepetitions: 1, MinSubstringLength: 1}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Synthesize a regular expression matching exactly a finite set of test-case strings.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Cases, "case", "c", nil, "test case strings (comma-separated, repeatable)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.File, "file", "f", "", "read test cases from a file, one per line (use '-' for stdin)"),
	)

	flagSet.CreateGroup("conversions", "Conversions",
		flagSet.BoolVarP(&opts.Digits, "digits", "d", false, "convert matching graphemes to \\d"),
		flagSet.BoolVarP(&opts.NonDigits, "non-digits", "D", false, "convert matching graphemes to \\D"),
		flagSet.BoolVarP(&opts.Whitespace, "whitespace", "s", false, "convert matching graphemes to \\s"),
		flagSet.BoolVarP(&opts.NonWhitespace, "non-whitespace", "S", false, "convert matching graphemes to \\S"),
		flagSet.BoolVarP(&opts.Words, "words", "w", false, "convert matching graphemes to \\w"),
		flagSet.BoolVarP(&opts.NonWords, "non-words", "W", false, "convert matching graphemes to \\W"),
		flagSet.BoolVarP(&opts.ConvertRepetitions, "repetitions", "r", false, "detect and contract run-length and repeated-substring patterns"),
		flagSet.IntVar(&opts.MinRepetitions, "min-repetitions", 1, "minimum extra-repeat threshold for -r (>= 1)"),
		flagSet.IntVar(&opts.MinSubstringLength, "min-substring-length", 1, "minimum repeated-unit width for -r (>= 1)"),
	)

	flagSet.CreateGroup("rendering", "Rendering",
		flagSet.BoolVarP(&opts.CaseInsensitive, "case-insensitive", "i", false, "emit (?i) and fold case during synthesis"),
		flagSet.BoolVarP(&opts.CapturingGroups, "capturing-groups", "g", false, "use (...) instead of (?:...)"),
		flagSet.BoolVar(&opts.CapturingGroups, "capturing", false, "alias of --capturing-groups"),
		flagSet.BoolVarP(&opts.EscapeNonASCII, "escape-non-ascii", "e", false, "escape non-ASCII codepoints as \\u{HEX}"),
		flagSet.BoolVar(&opts.WithSurrogates, "with-surrogates", false, "split astral codepoints into UTF-16 surrogate pairs (with -e)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "x", false, "multi-line indented (?x) rendering"),
		flagSet.BoolVar(&opts.NoStartAnchor, "no-start-anchor", false, "omit the leading ^"),
		flagSet.BoolVar(&opts.NoEndAnchor, "no-end-anchor", false, "omit the trailing $"),
		flagSet.BoolVar(&opts.NoAnchors, "no-anchors", false, "omit both ^ and $"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("regexgen: could not read flags: %s\n", err)
	}
	return opts
}

// ResolveCases gathers test cases from -c/--case and -f/--file (including
// "-" for stdin), fataling via gologger if none are found or the file
// cannot be read. goflags does not expose leftover positional arguments the
// way the stdlib flag package does, so, matching alterx's own input model
// (-l/--list plus a file/stdin fallback, never bare positional arguments),
// -c/--case is the positional-argument substitute here.
func (o *Options) ResolveCases() []string {
	var cases []string
	cases = append(cases, o.Cases...)

	switch o.File {
	case "":
		// no file requested
	case "-":
		lines, err := readLines(os.Stdin)
		if err != nil {
			gologger.Fatal().Msgf("regexgen: failed reading stdin: %s\n", err)
		}
		cases = append(cases, lines...)
	default:
		f, err := os.Open(o.File)
		if err != nil {
			gologger.Fatal().Msgf("regexgen: failed reading %s: %s\n", o.File, err)
		}
		defer f.Close()
		lines, err := readLines(f)
		if err != nil {
			gologger.Fatal().Msgf("regexgen: failed reading %s: %s\n", o.File, err)
		}
		cases = append(cases, lines...)
	}

	if len(cases) == 0 {
		gologger.Fatal().Msgf("regexgen: no test cases supplied\n")
	}
	return cases
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// Build applies o to a regexgen.Builder seeded with cases and runs Build,
// fataling via gologger on ErrEmptyInput/ErrInvalidConfig/ErrIO per spec §6.2.
func (o *Options) Build(cases []string) string {
	gologger.DefaultLogger.SetMaxLevel(levels.LevelInfo)

	b := regexgen.NewBuilder(cases...)
	if o.Digits {
		b = b.Digits()
	}
	if o.NonDigits {
		b = b.NonDigits()
	}
	if o.Whitespace {
		b = b.Whitespace()
	}
	if o.NonWhitespace {
		b = b.NonWhitespace()
	}
	if o.Words {
		b = b.Words()
	}
	if o.NonWords {
		b = b.NonWords()
	}
	if o.ConvertRepetitions {
		b = b.ConvertRepetitions().MinRepetitions(o.MinRepetitions).MinSubstringLength(o.MinSubstringLength)
	}
	if o.CaseInsensitive {
		b = b.CaseInsensitive()
	}
	if o.CapturingGroups {
		b = b.CapturingGroups()
	}
	if o.EscapeNonASCII {
		b = b.EscapeNonASCII(o.WithSurrogates)
	}
	if o.Verbose {
		b = b.Verbose()
	}
	if o.NoAnchors {
		b = b.WithoutAnchors()
	} else {
		if o.NoStartAnchor {
			b = b.WithoutStartAnchor()
		}
		if o.NoEndAnchor {
			b = b.WithoutEndAnchor()
		}
	}

	pattern, err := b.Build()
	if err != nil {
		gologger.Fatal().Msgf("regexgen: %s\n", err)
	}
	return pattern
}

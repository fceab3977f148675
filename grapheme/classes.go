package grapheme

import "unicode"

// Options selects which shorthand-class conversions are enabled during
// tokenization and whether the pipeline should treat case-equivalent
// graphemes as identical when building the DFA (spec §4.1).
type Options struct {
	Digits         bool
	NonDigits      bool
	Whitespace     bool
	NonWhitespace  bool
	Words          bool
	NonWords       bool
	CaseInsensitive bool
}

// Enabled reports whether any shorthand-class conversion is switched on.
func (o Options) Enabled() bool {
	return o.Digits || o.NonDigits || o.Whitespace || o.NonWhitespace || o.Words || o.NonWords
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// resolve computes the candidate shorthand classes a rune belongs to under
// the enabled options, then picks one using the precedence rules of spec
// §4.1. Those rules are not a total order: \D, \S and \W (the negated
// classes) dominate each other only pairwise and, for a character that is
// simultaneously non-digit, non-space and non-word, the three rules form a
// cycle (\S > \D, \D > \W, \W > \S). See DESIGN.md for the tie-break this
// implementation pins for that three-way case.
func resolve(r rune, o Options) (ClassKind, bool) {
	isDigit := unicode.IsDigit(r)
	isSpace := unicode.IsSpace(r)
	isWord := isWordRune(r)

	digit := o.Digits && isDigit
	word := o.Words && isWord
	space := o.Whitespace && isSpace
	nonSpace := o.NonWhitespace && !isSpace
	nonDigit := o.NonDigits && !isDigit
	nonWord := o.NonWords && !isWord

	switch {
	case digit:
		return ClassDigit, true
	case word:
		return ClassWord, true
	case space:
		return ClassSpace, true
	case nonSpace && nonDigit && nonWord:
		// Three-way cycle among the negated classes (\S > \D > \W > \S).
		// Pin to \D: it is the first of the three introduced by the spec's
		// domination rules ("\D dominates \W...", then "\W dominates \S...").
		return ClassNonDigit, true
	case nonWord && nonSpace:
		// "\W dominates \S ... for characters that are both non-word and
		// non-whitespace."
		return ClassNonWord, true
	case nonDigit && nonWord:
		// "\D dominates \W ... for characters that are both non-digit and
		// non-word."
		return ClassNonDigit, true
	case nonSpace && nonDigit:
		// Chain rule: \s > \D and \w > \D, and \S > \D is the remaining leg
		// of "\d over \w over \S over \D".
		return ClassNonSpace, true
	case nonSpace:
		return ClassNonSpace, true
	case nonDigit:
		return ClassNonDigit, true
	case nonWord:
		return ClassNonWord, true
	default:
		return ClassNone, false
	}
}

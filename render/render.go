// Package render serializes a synth.Expr into a PCRE pattern string (spec
// §4.7), honoring anchors, grouping style, case-insensitivity, non-ASCII
// escaping, and verbose multi-line rendering.
package render

import (
	"strings"

	"github.com/coregx/regexgen/synth"
)

// Options configures rendering. The zero value is not ready to use; start
// from DefaultOptions, mirroring the teacher's Config/DefaultConfig idiom
// (dfa/lazy.Config.WithMaxStates chains).
type Options struct {
	AnchorStart       bool
	AnchorEnd         bool
	CapturingGroups   bool
	CaseInsensitive   bool
	EscapeNonASCII    bool
	UseSurrogatePairs bool
	Verbose           bool
}

// DefaultOptions returns spec §6's default rendering: anchored on both
// ends, non-capturing groups, no escaping, no case folding, single line.
func DefaultOptions() Options {
	return Options{AnchorStart: true, AnchorEnd: true}
}

func (o Options) WithAnchorStart(v bool) Options       { o.AnchorStart = v; return o }
func (o Options) WithAnchorEnd(v bool) Options         { o.AnchorEnd = v; return o }
func (o Options) WithCapturingGroups(v bool) Options   { o.CapturingGroups = v; return o }
func (o Options) WithCaseInsensitive(v bool) Options   { o.CaseInsensitive = v; return o }
func (o Options) WithEscapeNonASCII(v bool) Options    { o.EscapeNonASCII = v; return o }
func (o Options) WithUseSurrogatePairs(v bool) Options { o.UseSurrogatePairs = v; return o }
func (o Options) WithVerbose(v bool) Options           { o.Verbose = v; return o }

// Render serializes e to a PCRE pattern under opts.
func Render(e *synth.Expr, opts Options) string {
	r := &renderer{opts: opts}
	body := r.renderTop(e)

	var b strings.Builder
	if opts.Verbose {
		b.WriteString("(?x)\n")
	}
	if opts.CaseInsensitive {
		b.WriteString("(?i)")
	}
	if opts.AnchorStart {
		b.WriteString("^")
	}
	b.WriteString(body)
	if opts.AnchorEnd {
		b.WriteString("$")
	}
	return b.String()
}

type renderer struct {
	opts Options
}

// renderTop renders the top-level expression. A top-level Alt always gets
// outer parentheses: with anchors, ^ would otherwise bind only to the first
// alternative and $ only to the last; without them, the group preserves
// precedence when the caller embeds the output in a larger pattern.
func (r *renderer) renderTop(e *synth.Expr) string {
	if e.Kind() == synth.KindAlt {
		return r.group(r.renderAlt(e, 0), 0)
	}
	return r.render(e, 0)
}

// render walks e, adding grouping only where precedence requires it (spec
// §4.7's table: Alt needs a group inside Concat or under a quantifier;
// Concat needs one only under a quantifier; Repetition/Optional/CharClass
// never do).
func (r *renderer) render(e *synth.Expr, depth int) string {
	switch e.Kind() {
	case synth.KindEmpty:
		return ""
	case synth.KindLiteral:
		return r.renderSymbol(e.Literal())
	case synth.KindConcat:
		var b strings.Builder
		for _, c := range e.Children() {
			b.WriteString(r.renderOperand(c, depth, false))
		}
		return b.String()
	case synth.KindAlt:
		return r.renderAlt(e, depth)
	case synth.KindOptional:
		return r.renderOperand(e.Children()[0], depth, true) + "?"
	case synth.KindRepetition:
		lo, hi := e.Bounds()
		return r.renderOperand(e.Children()[0], depth, true) + quantifierSuffix(lo, hi)
	case synth.KindCharClass:
		return r.renderCharClass(e)
	}
	return ""
}

// renderOperand renders a child of Concat or a quantified expression,
// grouping it when precedence demands: always for Alt, and for Concat only
// when underQuantifier.
func (r *renderer) renderOperand(e *synth.Expr, depth int, underQuantifier bool) string {
	s := r.render(e, depth+1)
	switch e.Kind() {
	case synth.KindAlt:
		return r.group(s, depth+1)
	case synth.KindConcat:
		if underQuantifier {
			return r.group(s, depth+1)
		}
		return s
	default:
		return s
	}
}

// renderAlt joins e's alternatives with "|"; in verbose mode each
// alternative is placed on its own indented line, leading "|" marking every
// alternative after the first (spec §4.7: "Alt renders each alternative on
// its own line with | lines between").
func (r *renderer) renderAlt(e *synth.Expr, depth int) string {
	children := e.Children()
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = r.renderOperand(c, depth+1, false)
	}
	if !r.opts.Verbose {
		return strings.Join(parts, "|")
	}
	indent := strings.Repeat("  ", depth+1)
	var b strings.Builder
	for i, p := range parts {
		if i == 0 {
			b.WriteString(indent + p)
		} else {
			b.WriteString("\n" + indent + "|" + p)
		}
	}
	return b.String()
}

// group wraps s in a (possibly capturing) group, multi-line and indented in
// verbose mode.
func (r *renderer) group(s string, depth int) string {
	open, close := "(?:", ")"
	if r.opts.CapturingGroups {
		open, close = "(", ")"
	}
	if !r.opts.Verbose {
		return open + s + close
	}
	indent := strings.Repeat("  ", depth)
	return open + "\n" + s + "\n" + indent + close
}

func quantifierSuffix(lo, hi int) string {
	if lo == hi {
		return "{" + itoa(lo) + "}"
	}
	return "{" + itoa(lo) + "," + itoa(hi) + "}"
}

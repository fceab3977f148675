package render

import (
	"testing"

	"github.com/coregx/regexgen/grapheme"
	"github.com/coregx/regexgen/synth"
)

func g(s string) *synth.Expr { return synth.NewLiteral(grapheme.NewGrapheme(s)) }

func TestRenderDefaultsAnchorBothEnds(t *testing.T) {
	// spec §8: ["a","aa","aaa"] -> ^a(?:aa?)?$
	a := g("a")
	e := synth.Concat(a, synth.Optional(synth.Concat(a, synth.Optional(a))))
	got := Render(e, DefaultOptions())
	want := "^a(?:aa?)?$"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderWithoutAnchors(t *testing.T) {
	a := g("a")
	e := synth.Concat(a, synth.Optional(synth.Concat(a, synth.Optional(a))))
	got := Render(e, Options{})
	want := "a(?:aa?)?"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCapturingGroupsAndCaseInsensitive(t *testing.T) {
	// spec §8: ["big","BIGGER"] case_insensitive, capturing_groups -> (?i)^big(ger)?$
	e := synth.Concat(g("b"), g("i"), g("g"), synth.Optional(synth.Concat(g("g"), g("e"), g("r"))))
	opts := DefaultOptions().WithCapturingGroups(true).WithCaseInsensitive(true)
	got := Render(e, opts)
	want := "(?i)^big(ger)?$"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderUnanchoredAltGetsOuterParens(t *testing.T) {
	e := synth.Alt(synth.Concat(g("c"), g("a"), g("t")), synth.Concat(g("d"), g("o"), g("g")))
	got := Render(e, Options{})
	want := "(?:cat|dog)"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderAnchoredAltGetsOuterParens(t *testing.T) {
	e := synth.Alt(synth.Concat(g("c"), g("a"), g("t")), synth.Concat(g("d"), g("o"), g("g")))
	got := Render(e, DefaultOptions())
	want := "^(?:cat|dog)$"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderEscapesNonASCIIAsHex(t *testing.T) {
	e := synth.Concat(g("Y"), g("o"), g("u"), g(" "), g("s"), g("m"), g("e"), g("l"), g("l"),
		g(" "), g("l"), g("i"), g("k"), g("e"), g(" "), g("💩"), g("."))
	opts := DefaultOptions().WithEscapeNonASCII(true)
	got := Render(e, opts)
	want := `^You smell like \u{1f4a9}\.$`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCharClassRange(t *testing.T) {
	e := synth.CharClass(grapheme.NewGrapheme("a"), grapheme.NewGrapheme("b"), grapheme.NewGrapheme("c"))
	got := Render(e, Options{})
	want := "[a-c]"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderVerboseStartsWithFlagAndAnchors(t *testing.T) {
	e := synth.Alt(g("a"), synth.Concat(g("b"), synth.Optional(synth.Concat(g("c"), g("d")))))
	opts := DefaultOptions().WithVerbose(true)
	got := Render(e, opts)
	if got[:5] != "(?x)\n" {
		t.Errorf("verbose output must start with \"(?x)\\n\", got %q", got)
	}
	if !contains(got, "^") || !contains(got, "$") {
		t.Errorf("verbose output must retain anchors: %q", got)
	}
	if !contains(got, "|") {
		t.Errorf("verbose Alt output must contain a | separator: %q", got)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

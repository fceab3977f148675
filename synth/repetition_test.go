package synth

import (
	"testing"

	"github.com/coregx/regexgen/grapheme"
)

func lit(s string) *Expr { return NewLiteral(grapheme.NewGrapheme(s)) }

func TestRunLengthPassContractsMaximalRun(t *testing.T) {
	children := []*Expr{lit("a"), lit("a"), lit("a"), lit("a"), lit("b")}
	cfg := DefaultRepetitionConfig()
	out := runLengthPass(children, cfg)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Kind() != KindRepetition {
		t.Fatalf("out[0].Kind() = %v, want KindRepetition", out[0].Kind())
	}
	lo, hi := out[0].Bounds()
	if lo != 4 || hi != 4 {
		t.Errorf("bounds = {%d,%d}, want {4,4}", lo, hi)
	}
}

func TestRunLengthPassRespectsMinRepetitions(t *testing.T) {
	children := []*Expr{lit("a"), lit("a"), lit("b")}
	cfg := RepetitionConfig{MinRepetitions: 2, MinSubstringLength: 1}
	out := runLengthPass(children, cfg)

	if len(out) != 3 {
		t.Fatalf("expected no contraction below threshold, got %d children", len(out))
	}
}

func TestRepeatedSubstringPassFindsPeriodicBlock(t *testing.T) {
	// "bc" repeated twice: b c b c
	children := []*Expr{lit("b"), lit("c"), lit("b"), lit("c")}
	cfg := DefaultRepetitionConfig()
	out := repeatedSubstringPass(children, cfg)

	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].Kind() != KindRepetition {
		t.Fatalf("out[0].Kind() = %v, want KindRepetition", out[0].Kind())
	}
	lo, hi := out[0].Bounds()
	if lo != 2 || hi != 2 {
		t.Errorf("bounds = {%d,%d}, want {2,2}", lo, hi)
	}
}

func TestCollapseAlternativeRepetitionsContiguousCounts(t *testing.T) {
	a := lit("a")
	// Repetition(a, 1, 1) normalizes to a itself, so the count-1 alternative
	// is the plain literal, not a Repetition node.
	members := []*Expr{a, Repetition(a, 2, 2), Repetition(a, 3, 3)}
	got := collapseAlternativeRepetitions(members)

	if got.Kind() != KindRepetition {
		t.Fatalf("got.Kind() = %v, want KindRepetition (contiguous counts collapse)", got.Kind())
	}
	lo, hi := got.Bounds()
	if lo != 1 || hi != 3 {
		t.Errorf("bounds = {%d,%d}, want {1,3}", lo, hi)
	}
}

func TestCollapseAlternativeRepetitionsNonContiguousCounts(t *testing.T) {
	a := lit("a")
	members := []*Expr{Repetition(a, 1, 1), Repetition(a, 4, 4)}
	got := collapseAlternativeRepetitions(members)

	if got.Kind() != KindAlt {
		t.Fatalf("got.Kind() = %v, want KindAlt (non-contiguous counts stay disjoint)", got.Kind())
	}
	if len(got.Children()) != 2 {
		t.Errorf("expected 2 disjoint repetitions, got %d", len(got.Children()))
	}
}

func TestRepetitionConfigValidateRejectsZero(t *testing.T) {
	cfg := RepetitionConfig{MinRepetitions: 0, MinSubstringLength: 1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for MinRepetitions = 0")
	}
}

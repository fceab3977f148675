package synth

import "github.com/coregx/regexgen/grapheme"

// Coalesce implements spec §4.6: rewrites every Alt node all of whose
// operands are single-symbol Literals into a CharClass, bottom-up so that
// nested unions collapse first. Range compaction of contiguous codepoints
// happens later, at render time, matching the teacher's split between
// structural extraction (nfa/charclass_extract.go) and byte-range merging.
func Coalesce(e *Expr) *Expr {
	switch e.Kind() {
	case KindConcat:
		children := make([]*Expr, len(e.children))
		for i, c := range e.children {
			children[i] = Coalesce(c)
		}
		return Concat(children...)
	case KindAlt:
		children := make([]*Expr, len(e.children))
		allLiteral := true
		for i, c := range e.children {
			children[i] = Coalesce(c)
			if children[i].Kind() != KindLiteral {
				allLiteral = false
			}
		}
		if allLiteral && len(children) > 1 {
			syms := make([]grapheme.Symbol, 0, len(children))
			for _, c := range children {
				syms = append(syms, c.Literal())
			}
			return CharClass(syms...)
		}
		return Alt(children...)
	case KindOptional:
		return Optional(Coalesce(e.children[0]))
	case KindRepetition:
		return Repetition(Coalesce(e.children[0]), e.lo, e.hi)
	default:
		return e
	}
}

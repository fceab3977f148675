// Package synth converts a minimized DFA into the Expression tree defined by
// spec.md §3, via Brzozowski's algebraic state-elimination method (§4.4),
// then optionally rewrites it with the repetition analyzer (§4.5) and
// character-class coalescer (§4.6).
package synth

import (
	"sort"

	"github.com/coregx/regexgen/grapheme"
)

// Kind discriminates Expr's variants. Expr is a tagged union implemented as
// a single struct (rather than an interface hierarchy), mirroring the
// teacher's concrete-struct NFA state variants.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindLiteral
	KindConcat
	KindAlt
	KindOptional
	KindRepetition
	KindCharClass
)

// Expr is one node of the Expression tree (spec §3). Only the fields
// relevant to Kind are meaningful:
//
//	KindLiteral:    literal
//	KindConcat:     children (len >= 2)
//	KindAlt:        children (len >= 2, pairwise distinct, no nested Alt)
//	KindOptional:   children[0]
//	KindRepetition: children[0], lo, hi
//	KindCharClass:  class (len >= 1)
type Expr struct {
	kind     Kind
	literal  grapheme.Symbol
	children []*Expr
	lo, hi   int
	class    []grapheme.Symbol
}

// Kind returns e's variant tag.
func (e *Expr) Kind() Kind { return e.kind }

// Literal returns the matched symbol for a KindLiteral node.
func (e *Expr) Literal() grapheme.Symbol { return e.literal }

// Children returns the operands of a KindConcat or KindAlt node, or the
// single wrapped expression (as a length-1 slice) for KindOptional and
// KindRepetition.
func (e *Expr) Children() []*Expr { return e.children }

// Bounds returns a KindRepetition node's {lo, hi} (1 <= lo <= hi).
func (e *Expr) Bounds() (lo, hi int) { return e.lo, e.hi }

// ClassMembers returns a KindCharClass node's alternatives.
func (e *Expr) ClassMembers() []grapheme.Symbol { return e.class }

var emptyExpr = &Expr{kind: KindEmpty}

// Empty returns the expression matching only the empty string.
func Empty() *Expr { return emptyExpr }

// NewLiteral returns the expression matching exactly one symbol.
func NewLiteral(sym grapheme.Symbol) *Expr {
	return &Expr{kind: KindLiteral, literal: sym}
}

// Concat builds an ordered concatenation, normalizing away Empty operands
// and degenerate arities per spec §3's no-redundant-nesting invariant:
// Concat() = Empty, Concat(e) = e, Concat(Empty, e) = Concat(e, Empty) = e.
func Concat(es ...*Expr) *Expr {
	var flat []*Expr
	for _, e := range es {
		if e.kind == KindEmpty {
			continue
		}
		if e.kind == KindConcat {
			flat = append(flat, e.children...)
			continue
		}
		flat = append(flat, e)
	}
	switch len(flat) {
	case 0:
		return Empty()
	case 1:
		return flat[0]
	default:
		return &Expr{kind: KindConcat, children: flat}
	}
}

// Alt builds an unordered (but deterministically stored) set of
// alternatives, flattening nested Alt and dropping structural duplicates.
// Alt() = Empty, Alt(e) = e. A bare Empty alternative is folded per spec
// §4.4's simplification rule Alt(S ∪ {Empty}) = Optional(Alt(S)): Empty is
// pulled out of the member set and the remaining alternatives (if any) are
// wrapped in Optional, rather than left as a literal Alt(Empty, ...) node.
func Alt(es ...*Expr) *Expr {
	var flat []*Expr
	for _, e := range es {
		if e.kind == KindAlt {
			flat = append(flat, e.children...)
			continue
		}
		flat = append(flat, e)
	}
	var uniq []*Expr
	hasEmpty := false
	for _, e := range flat {
		if e.kind == KindEmpty {
			hasEmpty = true
			continue
		}
		dup := false
		for _, u := range uniq {
			if Equal(u, e) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, e)
		}
	}
	if hasEmpty {
		return Optional(altFromUnique(uniq))
	}
	return altFromUnique(uniq)
}

func altFromUnique(uniq []*Expr) *Expr {
	switch len(uniq) {
	case 0:
		return Empty()
	case 1:
		return uniq[0]
	default:
		sort.SliceStable(uniq, func(i, j int) bool { return Less(uniq[i], uniq[j]) })
		return &Expr{kind: KindAlt, children: uniq}
	}
}

// Optional builds e?, collapsing Optional(Optional x) = Optional x and
// Optional(Empty) = Empty per spec §3.
func Optional(e *Expr) *Expr {
	if e.kind == KindEmpty {
		return Empty()
	}
	if e.kind == KindOptional {
		return e
	}
	return &Expr{kind: KindOptional, children: []*Expr{e}}
}

// Repetition builds e{lo,hi}, 1 <= lo <= hi. Callers must not request
// lo == hi == 1 (that is just e); Repetition normalizes it away.
func Repetition(e *Expr, lo, hi int) *Expr {
	if lo == 1 && hi == 1 {
		return e
	}
	return &Expr{kind: KindRepetition, children: []*Expr{e}, lo: lo, hi: hi}
}

// CharClass builds [members…], deduplicating and sorting by grapheme.Less
// so that rendering is deterministic. Panics if members is empty; callers
// (the coalescer) never produce an empty class.
func CharClass(members ...grapheme.Symbol) *Expr {
	if len(members) == 0 {
		panic("synth: CharClass requires at least one member")
	}
	var uniq []grapheme.Symbol
	for _, m := range members {
		dup := false
		for _, u := range uniq {
			if grapheme.Equal(u, m) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, m)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return grapheme.Less(uniq[i], uniq[j]) })
	return &Expr{kind: KindCharClass, class: uniq}
}

// Equal reports structural equality between two Expression trees.
func Equal(a, b *Expr) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindEmpty:
		return true
	case KindLiteral:
		return grapheme.Equal(a.literal, b.literal)
	case KindConcat, KindAlt:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	case KindOptional:
		return Equal(a.children[0], b.children[0])
	case KindRepetition:
		return a.lo == b.lo && a.hi == b.hi && Equal(a.children[0], b.children[0])
	case KindCharClass:
		if len(a.class) != len(b.class) {
			return false
		}
		for i := range a.class {
			if !grapheme.Equal(a.class[i], b.class[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Less gives Alt's stored alternatives a fixed deterministic order: by kind,
// then by the first distinguishing literal/class/child. It only needs to be
// a total order, not semantically meaningful.
func Less(a, b *Expr) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	switch a.kind {
	case KindLiteral:
		return grapheme.Less(a.literal, b.literal)
	case KindCharClass:
		return len(a.class) < len(b.class)
	case KindConcat, KindAlt:
		n := len(a.children)
		if len(b.children) < n {
			n = len(b.children)
		}
		for i := 0; i < n; i++ {
			if Equal(a.children[i], b.children[i]) {
				continue
			}
			return Less(a.children[i], b.children[i])
		}
		return len(a.children) < len(b.children)
	case KindOptional:
		return Less(a.children[0], b.children[0])
	case KindRepetition:
		if a.lo != b.lo {
			return a.lo < b.lo
		}
		if a.hi != b.hi {
			return a.hi < b.hi
		}
		return Less(a.children[0], b.children[0])
	}
	return false
}

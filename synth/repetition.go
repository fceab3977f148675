package synth

import (
	"errors"
	"fmt"
	"sort"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/regexgen/grapheme"
)

// ErrInvalidRepetitionConfig is returned by RepetitionConfig.Validate when a
// threshold is non-positive (spec §4.5: "both values >= 1; zero fails with
// InvalidConfig").
var ErrInvalidRepetitionConfig = errors.New("synth: invalid repetition config")

// RepetitionConfig configures the optional repetition analyzer (spec §4.5),
// following the teacher's Config/Validate/Default* idiom
// (dfa/lazy.Config/DefaultConfig/Config.Validate).
type RepetitionConfig struct {
	// MinRepetitions is the minimum number of *extra* repeats beyond the
	// first occurrence required before a run or repeated substring is
	// contracted. Default 1 ("at least one repetition").
	MinRepetitions int
	// MinSubstringLength is the minimum width, in graphemes for run-length
	// detection or in child count for repeated-substring detection, of the
	// unit being repeated. Default 1.
	MinSubstringLength int
}

// DefaultRepetitionConfig returns the spec's defaults: MinRepetitions=1,
// MinSubstringLength=1.
func DefaultRepetitionConfig() RepetitionConfig {
	return RepetitionConfig{MinRepetitions: 1, MinSubstringLength: 1}
}

// Validate reports ErrInvalidRepetitionConfig if either threshold is below 1.
func (c RepetitionConfig) Validate() error {
	if c.MinRepetitions < 1 {
		return fmt.Errorf("%w: min_repetitions must be >= 1, got %d", ErrInvalidRepetitionConfig, c.MinRepetitions)
	}
	if c.MinSubstringLength < 1 {
		return fmt.Errorf("%w: min_substring_length must be >= 1, got %d", ErrInvalidRepetitionConfig, c.MinSubstringLength)
	}
	return nil
}

// AnalyzeRepetitions rewrites e with run-length and repeated-substring
// contraction (spec §4.5), then collapses Alt alternatives that differ only
// in an inner Repetition's count. Callers apply this before Coalesce, since
// it only recognizes literal runs, not already-bracketed char classes.
func AnalyzeRepetitions(e *Expr, cfg RepetitionConfig) *Expr {
	switch e.Kind() {
	case KindConcat:
		children := make([]*Expr, len(e.children))
		for i, c := range e.children {
			children[i] = AnalyzeRepetitions(c, cfg)
		}
		children = runLengthPass(children, cfg)
		children = repeatedSubstringPass(children, cfg)
		return Concat(children...)
	case KindAlt:
		rewritten := make([]*Expr, len(e.children))
		for i, c := range e.children {
			rewritten[i] = AnalyzeRepetitions(c, cfg)
		}
		return collapseAlternativeRepetitions(rewritten)
	case KindOptional:
		return Optional(AnalyzeRepetitions(e.children[0], cfg))
	case KindRepetition:
		return Repetition(AnalyzeRepetitions(e.children[0], cfg), e.lo, e.hi)
	default:
		return e
	}
}

// runLengthPass contracts a maximal run of k structurally-identical literal
// children into Repetition(symbol, k, k) once k exceeds MinRepetitions+1 and
// the symbol's grapheme width clears MinSubstringLength.
func runLengthPass(children []*Expr, cfg RepetitionConfig) []*Expr {
	var out []*Expr
	i := 0
	for i < len(children) {
		c := children[i]
		if c.Kind() != KindLiteral {
			out = append(out, c)
			i++
			continue
		}
		j := i + 1
		for j < len(children) && children[j].Kind() == KindLiteral && grapheme.Equal(children[j].Literal(), c.Literal()) {
			j++
		}
		k := j - i
		if k >= cfg.MinRepetitions+1 && c.Literal().Width() >= cfg.MinSubstringLength {
			out = append(out, Repetition(c, k, k))
		} else {
			for n := 0; n < k; n++ {
				out = append(out, c)
			}
		}
		i = j
	}
	return out
}

// repeatedSubstringPass greedily finds and contracts the best-scoring
// (offset, period) repeat in children, one at a time, until none remain.
func repeatedSubstringPass(children []*Expr, cfg RepetitionConfig) []*Expr {
	for {
		o, p, count, found := bestRepeat(children, cfg)
		if !found {
			return children
		}
		block := append([]*Expr(nil), children[o:o+p]...)
		rep := Repetition(Concat(block...), count, count)

		next := make([]*Expr, 0, len(children)-count*p+1)
		next = append(next, children[:o]...)
		next = append(next, rep)
		next = append(next, children[o+count*p:]...)
		children = next
	}
}

// bestRepeat scans every (offset, period) pair per spec §4.5's preference
// order: larger total covered length first, then smaller period, then
// smaller offset.
func bestRepeat(children []*Expr, cfg RepetitionConfig) (offset, period, count int, found bool) {
	m := len(children)
	ac := newRunAccelerator(children)

	bestCovered := -1
	for p := cfg.MinSubstringLength; p <= m/(cfg.MinRepetitions+1); p++ {
		for o := 0; o+p*(cfg.MinRepetitions+1) <= m; o++ {
			c := repeatCount(children, ac, o, p)
			if c < cfg.MinRepetitions+1 {
				continue
			}
			covered := c * p
			better := !found ||
				covered > bestCovered ||
				(covered == bestCovered && p < period) ||
				(covered == bestCovered && p == period && o < offset)
			if better {
				bestCovered = covered
				period = p
				offset = o
				count = c
				found = true
			}
		}
	}
	return offset, period, count, found
}

// repeatCount returns how many consecutive period-p blocks starting at
// offset are structurally equal to the first one.
func repeatCount(children []*Expr, ac *runAccelerator, offset, period int) int {
	count := 1
	for {
		next := offset + count*period
		if next+period > len(children) {
			return count
		}
		if !ac.blocksEqual(children, offset, next, period) {
			return count
		}
		count++
	}
}

// runAccelerator speeds up repeated block-equality checks over a long run of
// single-codepoint literal children by encoding each distinct symbol as one
// byte and using the teacher's Aho-Corasick automaton (its own dependency,
// coregx/ahocorasick) to confirm a candidate block recurs at a given offset
// in a single pass instead of a per-pair element scan. It degrades to nil
// (direct structural comparison) whenever the run is not purely literal or
// has more than 255 distinct symbols, since the one-byte encoding cannot
// represent more.
type runAccelerator struct {
	code []byte
}

func newRunAccelerator(children []*Expr) *runAccelerator {
	ids := make(map[grapheme.Symbol]byte)
	code := make([]byte, len(children))
	for i, c := range children {
		if c.Kind() != KindLiteral {
			return nil
		}
		sym := c.Literal()
		id, ok := ids[sym]
		if !ok {
			if len(ids) >= 255 {
				return nil
			}
			id = byte(len(ids))
			ids[sym] = id
		}
		code[i] = id
	}
	return &runAccelerator{code: code}
}

// blocksEqual reports whether children[a:a+n] and children[b:b+n] match. It
// prefers the accelerated byte-automaton check, falling back to direct
// structural comparison when acceleration is unavailable (non-literal runs
// or alphabets too large to byte-encode).
func (ac *runAccelerator) blocksEqual(children []*Expr, a, b, n int) bool {
	if ac == nil {
		return directBlocksEqual(children, a, b, n)
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(ac.code[a : a+n])
	automaton, err := builder.Build()
	if err != nil {
		return directBlocksEqual(children, a, b, n)
	}
	m := automaton.Find(ac.code[b:b+n], 0)
	return m != nil && m.Start == 0 && m.End == n
}

func directBlocksEqual(children []*Expr, a, b, n int) bool {
	for i := 0; i < n; i++ {
		if !Equal(children[a+i], children[b+i]) {
			return false
		}
	}
	return true
}

// collapseAlternativeRepetitions implements spec §4.5's cross-alternative
// rule: alternatives that are exact-count Repetitions of the same inner
// expression collapse into one Repetition spanning each contiguous run of
// counts; non-contiguous counts stay as a union of disjoint Repetitions.
func collapseAlternativeRepetitions(members []*Expr) *Expr {
	type group struct {
		inner  *Expr
		counts []int
	}
	var groups []*group
	used := make([]bool, len(members))

	for i, m := range members {
		if m.Kind() != KindRepetition {
			continue
		}
		lo, hi := m.Bounds()
		if lo != hi {
			continue
		}
		inner := m.children[0]
		var g *group
		for _, cand := range groups {
			if Equal(cand.inner, inner) {
				g = cand
				break
			}
		}
		if g == nil {
			g = &group{inner: inner}
			groups = append(groups, g)
		}
		g.counts = append(g.counts, lo)
		used[i] = true
	}

	// Repetition(e, 1, 1) normalizes to e itself, so a plain alternative
	// structurally equal to a group's inner expression contributes an
	// implicit count of 1 to that group.
	for i, m := range members {
		if used[i] {
			continue
		}
		for _, g := range groups {
			if Equal(g.inner, m) {
				g.counts = append(g.counts, 1)
				used[i] = true
				break
			}
		}
	}

	var result []*Expr
	for i, m := range members {
		if !used[i] {
			result = append(result, m)
		}
	}
	for _, g := range groups {
		counts := dedupSortInts(g.counts)
		i := 0
		for i < len(counts) {
			j := i
			for j+1 < len(counts) && counts[j+1] == counts[j]+1 {
				j++
			}
			result = append(result, Repetition(g.inner, counts[i], counts[j]))
			i = j + 1
		}
	}
	return Alt(result...)
}

func dedupSortInts(in []int) []int {
	sort.Ints(in)
	out := in[:0]
	for i, v := range in {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

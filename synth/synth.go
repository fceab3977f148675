package synth

import (
	"github.com/coregx/regexgen/dfa"
)

// Synthesize converts a minimized DFA into an Expression tree whose language
// equals d's, via Brzozowski's algebraic state-elimination method (spec
// §4.4). It augments d with a virtual start state S and a virtual final
// state F (S --ε--> q0, and q --ε--> F for every accepting q), eliminates
// every real state, and returns the surviving S->F label.
//
// Self-loops are detected but never expected to survive into the rewiring
// step: a minimized DFA built from a finite word set is acyclic, so the
// self-loop factor (spec's α*) is always Empty. A non-empty self-loop
// indicates the automaton was not built from a finite language, which is an
// invariant violation rather than a user-facing error (spec §7).
func Synthesize(d *dfa.DFA) *Expr {
	g := newGraph(d)
	for g.hasRemaining() {
		g.eliminateCheapest()
	}
	ans, ok := g.edge(g.start, g.final)
	if !ok {
		// Unreachable for any DFA built over a nonempty word set: q0 either
		// accepts (ε path to F) or has at least one outgoing path to an
		// accepting state.
		return Empty()
	}
	return ans
}

const (
	virtualStart = -1
	virtualFinal = -2
)

type graph struct {
	start, final int
	edges        map[int]map[int]*Expr
	remaining    []int // active real state ids, in original creation order
}

func newGraph(d *dfa.DFA) *graph {
	g := &graph{
		start: virtualStart,
		final: virtualFinal,
		edges: make(map[int]map[int]*Expr),
	}

	n := d.NumStates()
	for q := 0; q < n; q++ {
		g.remaining = append(g.remaining, q)
		for _, tr := range d.Transitions(dfa.StateID(q)) {
			g.addEdge(q, int(tr.To), NewLiteral(tr.Symbol))
		}
		if d.IsAccepting(dfa.StateID(q)) {
			g.addEdge(q, g.final, Empty())
		}
	}
	g.addEdge(g.start, int(d.Start()), Empty())
	return g
}

func (g *graph) edge(from, to int) (*Expr, bool) {
	m, ok := g.edges[from]
	if !ok {
		return nil, false
	}
	e, ok := m[to]
	return e, ok
}

// addEdge merges label into any existing (from, to) edge via Alt, which
// folds an Empty member into Optional(rest) per spec §4.4 — the common case
// here, since an accepting state's ε edge to F is Empty.
func (g *graph) addEdge(from, to int, label *Expr) {
	m := g.edges[from]
	if m == nil {
		m = make(map[int]*Expr)
		g.edges[from] = m
	}
	if existing, ok := m[to]; ok {
		m[to] = Alt(existing, label)
	} else {
		m[to] = label
	}
}

func (g *graph) allIDs() []int {
	ids := make([]int, 0, len(g.remaining)+2)
	ids = append(ids, g.start, g.final)
	ids = append(ids, g.remaining...)
	return ids
}

func (g *graph) hasRemaining() bool { return len(g.remaining) > 0 }

// eliminateCheapest removes the remaining real state with the smallest
// out-degree * in-degree, recomputed against the current edge set each call
// (spec §4.4's sizing heuristic); ties break on smaller state id.
func (g *graph) eliminateCheapest() {
	best := -1
	bestCost := -1
	for _, q := range g.remaining {
		cost := g.outDegree(q) * g.inDegree(q)
		if best == -1 || cost < bestCost || (cost == bestCost && q < best) {
			best = q
			bestCost = cost
		}
	}
	g.eliminate(best)
}

func (g *graph) outDegree(q int) int {
	n := 0
	for to := range g.edges[q] {
		if to != q {
			n++
		}
	}
	return n
}

func (g *graph) inDegree(q int) int {
	n := 0
	for _, id := range g.allIDs() {
		if id == q {
			continue
		}
		if _, ok := g.edge(id, q); ok {
			n++
		}
	}
	return n
}

func (g *graph) eliminate(q int) {
	if self, ok := g.edge(q, q); ok && self.kind != KindEmpty {
		panic("synth: minimized DFA has a self-loop; it does not recognize a finite language")
	}

	ids := g.allIDs()
	var preds, succs []int
	for _, p := range ids {
		if p == q {
			continue
		}
		if _, ok := g.edge(p, q); ok {
			preds = append(preds, p)
		}
	}
	for _, r := range ids {
		if r == q {
			continue
		}
		if _, ok := g.edge(q, r); ok {
			succs = append(succs, r)
		}
	}

	for _, p := range preds {
		beta, _ := g.edge(p, q)
		for _, r := range succs {
			gamma, _ := g.edge(q, r)
			g.addEdge(p, r, Concat(beta, gamma))
		}
	}

	delete(g.edges, q)
	for _, p := range ids {
		if m, ok := g.edges[p]; ok {
			delete(m, q)
		}
	}

	for i, id := range g.remaining {
		if id == q {
			g.remaining = append(g.remaining[:i], g.remaining[i+1:]...)
			break
		}
	}
}

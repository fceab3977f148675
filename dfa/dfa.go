// Package dfa builds and minimizes the deterministic finite automaton that
// recognizes exactly a tokenized set of test cases (spec §4.2, §4.3).
package dfa

import (
	"sort"

	"github.com/coregx/regexgen/grapheme"
)

// StateID is an arena index into a DFA's state slice.
type StateID int

type transition struct {
	sym grapheme.Symbol
	to  StateID
}

// State is one DFA state: an accepting flag plus its outgoing transitions,
// kept sorted by grapheme.Less so that iteration is deterministic.
type State struct {
	transitions []transition
	accepting   bool
}

// DFA is the tuple (Q, Σ, δ, q0, F) of spec §3. States are addressed by
// StateID (an arena index); δ is represented as each state's own sorted
// transition list rather than a global map, matching the teacher's
// arena-of-states NFA builder (nfa.Builder/nfa.State) this package is
// modeled on.
type DFA struct {
	states []State
	start  StateID
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int { return len(d.states) }

// Start returns the initial state q0.
func (d *DFA) Start() StateID { return d.start }

// IsAccepting reports whether s is an accepting state.
func (d *DFA) IsAccepting(s StateID) bool { return d.states[s].accepting }

// Transition is one outgoing (symbol, target) edge.
type Transition struct {
	Symbol grapheme.Symbol
	To     StateID
}

// Transitions returns s's outgoing edges in deterministic (grapheme.Less)
// order.
func (d *DFA) Transitions(s StateID) []Transition {
	out := make([]Transition, len(d.states[s].transitions))
	for i, t := range d.states[s].transitions {
		out[i] = Transition{Symbol: t.sym, To: t.to}
	}
	return out
}

// Alphabet returns the distinct symbols used anywhere in the automaton's
// transitions, sorted by grapheme.Less.
func (d *DFA) Alphabet() []grapheme.Symbol {
	var alphabet []grapheme.Symbol
	for _, st := range d.states {
		for _, tr := range st.transitions {
			alphabet = appendUniqueSymbol(alphabet, tr.sym)
		}
	}
	sort.Slice(alphabet, func(i, j int) bool { return grapheme.Less(alphabet[i], alphabet[j]) })
	return alphabet
}

func appendUniqueSymbol(symbols []grapheme.Symbol, sym grapheme.Symbol) []grapheme.Symbol {
	for _, s := range symbols {
		if grapheme.Equal(s, sym) {
			return symbols
		}
	}
	return append(symbols, sym)
}

func (d *DFA) addState() StateID {
	d.states = append(d.states, State{})
	return StateID(len(d.states) - 1)
}

func (d *DFA) transitionOn(s StateID, sym grapheme.Symbol) (StateID, bool) {
	for _, t := range d.states[s].transitions {
		if grapheme.Equal(t.sym, sym) {
			return t.to, true
		}
	}
	return 0, false
}

func (d *DFA) addTransition(from StateID, sym grapheme.Symbol, to StateID) {
	d.states[from].transitions = append(d.states[from].transitions, transition{sym: sym, to: to})
	sort.Slice(d.states[from].transitions, func(i, j int) bool {
		return grapheme.Less(d.states[from].transitions[i].sym, d.states[from].transitions[j].sym)
	})
}

package dfa

import "github.com/coregx/regexgen/grapheme"

// Build constructs the DFA accepting exactly the set of tokenized words
// (spec §4.2). It grows a prefix trie: states reachable by the same input
// prefix are, by construction, the same state, so the trie is already
// deterministic and needs no separate determinization step.
func Build(words [][]grapheme.Symbol) *DFA {
	d := &DFA{states: []State{{}}, start: 0}
	for _, word := range words {
		cur := d.start
		for _, sym := range word {
			next, ok := d.transitionOn(cur, sym)
			if !ok {
				next = d.addState()
				d.addTransition(cur, sym, next)
			}
			cur = next
		}
		d.states[cur].accepting = true
	}
	return d
}

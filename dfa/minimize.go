package dfa

import (
	"sort"

	"github.com/coregx/regexgen/grapheme"
	"github.com/coregx/regexgen/internal/sparse"
)

// Minimize runs Hopcroft's partition-refinement algorithm (spec §4.3) and
// returns the canonical minimal DFA equivalent to d. Symbols are iterated in
// grapheme.Less order and blocks are processed in insertion order so the
// result is reproducible across runs on the same input.
func Minimize(d *DFA) *DFA {
	n := d.NumStates()
	if n == 0 {
		return d
	}
	alphabet := d.Alphabet()
	// Hopcroft's algorithm needs a total transition function, but this
	// automaton's δ is partial (spec §3). States 0..n-1 are real; index n is
	// a virtual dead/reject state that every missing transition targets. Its
	// block is dropped when the minimal DFA is rebuilt.
	total := n + 1

	delta := buildTotalTransitions(d, alphabet, n)

	blockOf := make([]int, total)
	var blockMembers [][]int

	addBlock := func(members []int) int {
		id := len(blockMembers)
		cp := append([]int(nil), members...)
		blockMembers = append(blockMembers, cp)
		for _, s := range cp {
			blockOf[s] = id
		}
		return id
	}

	var accepting, rest []int
	for s := 0; s < n; s++ {
		if d.IsAccepting(StateID(s)) {
			accepting = append(accepting, s)
		} else {
			rest = append(rest, s)
		}
	}
	rest = append(rest, n) // dead state is always non-accepting

	if len(accepting) > 0 {
		addBlock(accepting)
	}
	addBlock(rest)

	inWork := make([]bool, total)
	work := sparse.NewSparseSet(uint32(total))
	for id := range blockMembers {
		work.Insert(uint32(id))
		inWork[id] = true
	}

	for !work.IsEmpty() {
		vals := work.Values()
		a := int(vals[len(vals)-1])
		work.Remove(uint32(a))
		inWork[a] = false

		setA := blockMembers[a]
		inA := make(map[int]bool, len(setA))
		for _, s := range setA {
			inA[s] = true
		}

		for ai := range alphabet {
			var x []int
			for s := 0; s < total; s++ {
				if inA[delta[s][ai]] {
					x = append(x, s)
				}
			}
			if len(x) == 0 {
				continue
			}
			inX := make(map[int]bool, len(x))
			touchedBlocks := make(map[int]bool)
			for _, s := range x {
				inX[s] = true
				touchedBlocks[blockOf[s]] = true
			}

			var ys []int
			for y := range touchedBlocks {
				ys = append(ys, y)
			}
			sort.Ints(ys)

			for _, y := range ys {
				members := blockMembers[y]
				var inter, diff []int
				for _, s := range members {
					if inX[s] {
						inter = append(inter, s)
					} else {
						diff = append(diff, s)
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				blockMembers[y] = diff
				for _, s := range diff {
					blockOf[s] = y
				}
				newID := addBlock(inter)

				if inWork[y] {
					work.Insert(uint32(newID))
					inWork[newID] = true
				} else if len(inter) <= len(diff) {
					work.Insert(uint32(newID))
					inWork[newID] = true
				} else {
					work.Insert(uint32(y))
					inWork[y] = true
				}
			}
		}
	}

	return rebuild(d, alphabet, blockMembers, blockOf, n)
}

// buildTotalTransitions materializes δ over Q ∪ {dead} so every (state,
// symbol) pair has a defined target, as Hopcroft's algorithm requires.
func buildTotalTransitions(d *DFA, alphabet []grapheme.Symbol, n int) [][]int {
	total := n + 1
	delta := make([][]int, total)
	for s := 0; s < total; s++ {
		row := make([]int, len(alphabet))
		for i := range row {
			row[i] = n // dead
		}
		delta[s] = row
	}
	for s := 0; s < n; s++ {
		for _, tr := range d.Transitions(StateID(s)) {
			delta[s][indexOfSymbol(alphabet, tr.Symbol)] = int(tr.To)
		}
	}
	return delta
}

func indexOfSymbol(alphabet []grapheme.Symbol, sym grapheme.Symbol) int {
	for i, a := range alphabet {
		if grapheme.Equal(a, sym) {
			return i
		}
	}
	return -1
}

// rebuild renumbers partition blocks into a fresh minimal DFA. Blocks are
// assigned ids in the order their first member is encountered scanning
// states 0..n-1, which places the original start state's block first.
func rebuild(d *DFA, alphabet []grapheme.Symbol, blockMembers [][]int, blockOf []int, n int) *DFA {
	deadBlock := blockOf[n]

	newID := make(map[int]int)
	order := make([]int, 0, len(blockMembers))
	for s := 0; s < n; s++ {
		b := blockOf[s]
		if b == deadBlock {
			continue
		}
		if _, seen := newID[b]; !seen {
			newID[b] = len(order)
			order = append(order, b)
		}
	}

	if len(order) == 0 {
		// The start state's block collapsed into the dead block: every word
		// is rejected. Represent that with a single non-accepting, transition-
		// less trap state rather than an empty state slice.
		return &DFA{states: []State{{}}, start: 0}
	}

	out := &DFA{states: make([]State, len(order))}
	out.start = StateID(newID[blockOf[int(d.Start())]])

	for newB, oldB := range order {
		members := blockMembers[oldB]
		rep := members[0]
		out.states[newB].accepting = d.IsAccepting(StateID(rep))

		// All members of a block agree on every (symbol -> target block)
		// transition by construction of the refinement; the representative's
		// transitions fully describe the merged state.
		for _, tr := range d.Transitions(StateID(rep)) {
			targetBlock := blockOf[int(tr.To)]
			if targetBlock == deadBlock {
				continue
			}
			out.addTransition(StateID(newB), tr.Symbol, StateID(newID[targetBlock]))
		}
	}
	return out
}

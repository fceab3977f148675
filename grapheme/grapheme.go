package grapheme

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Tokenize splits s into extended grapheme clusters per Unicode UAX #29,
// substituting shorthand-class symbols for clusters that qualify under the
// enabled conversions (spec §4.1). Non-ASCII escaping and case folding are
// rendering concerns and are not applied here.
func Tokenize(s string, opts Options) []Symbol {
	seg := graphemes.FromString(s)
	var out []Symbol
	for seg.Next() {
		out = append(out, classify(seg.Value(), opts))
	}
	return out
}

func classify(cluster string, opts Options) Symbol {
	if !opts.Enabled() {
		return NewGrapheme(cluster)
	}
	sym := NewGrapheme(cluster)
	r, ok := sym.Rune()
	if !ok {
		// Multi-codepoint clusters are never shorthand-class members.
		return sym
	}
	if class, matched := resolve(r, opts); matched {
		return NewClass(class)
	}
	return sym
}

// Join reconstructs the original string from a tokenized sequence, used to
// check tokenization's idempotence (spec §8 property 4). Class symbols have
// no inverse and are not expected to appear when Join is meaningful (i.e.
// when called with Options{} disabled during tokenization).
func Join(symbols []Symbol) string {
	var b []byte
	for _, s := range symbols {
		b = append(b, s.Text()...)
	}
	return string(b)
}

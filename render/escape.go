package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/regexgen/grapheme"
	"github.com/coregx/regexgen/internal/conv"
	"github.com/coregx/regexgen/synth"
)

const metaChars = `\.+*?()[]{}|^$`

// renderSymbol renders one literal symbol: a shorthand class token
// unescaped, or an escaped/possibly non-ASCII-escaped grapheme cluster.
func (r *renderer) renderSymbol(sym grapheme.Symbol) string {
	if sym.IsClass() {
		return sym.Class().Token()
	}
	return r.renderGrapheme(sym.Text())
}

// renderGrapheme escapes regex metacharacters in a literal grapheme
// cluster, and (when enabled) non-ASCII codepoints per spec §4.7.
func (r *renderer) renderGrapheme(cluster string) string {
	var b strings.Builder
	for _, c := range cluster {
		if c > 0x7f && r.opts.EscapeNonASCII {
			b.WriteString(r.escapeNonASCII(c))
			continue
		}
		if strings.ContainsRune(metaChars, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	s := b.String()
	if r.opts.EscapeNonASCII && multiCodepointHasAstral(cluster) && len([]rune(cluster)) > 1 {
		return "(?:" + s + ")"
	}
	return s
}

func multiCodepointHasAstral(cluster string) bool {
	for _, c := range cluster {
		if c >= 0x10000 {
			return true
		}
	}
	return false
}

// escapeNonASCII renders one non-ASCII codepoint as \u{HEX} (spec §4.7),
// or as an escaped UTF-16 surrogate pair when UseSurrogatePairs is set and
// the codepoint is astral.
func (r *renderer) escapeNonASCII(c rune) string {
	if r.opts.UseSurrogatePairs && c >= 0x10000 {
		hi, lo := utf16Pair(c)
		return "\\u{" + strconv.FormatUint(uint64(hi), 16) + "}\\u{" + strconv.FormatUint(uint64(lo), 16) + "}"
	}
	return "\\u{" + strconv.FormatInt(int64(c), 16) + "}"
}

// utf16Pair splits an astral codepoint into its UTF-16 surrogate pair. Both
// halves are narrowed through conv.IntToUint16, the teacher's bounds-checked
// narrowing helper (dfa/lazy/cache.go), rather than a bare uint16 cast: a
// surrogate half is always in-range by construction, but the conversion
// documents that invariant at the boundary instead of assuming it silently.
func utf16Pair(c rune) (hi, lo uint16) {
	c -= 0x10000
	hi = conv.IntToUint16(int(0xd800 + (c >> 10)))
	lo = conv.IntToUint16(int(0xdc00 + (c & 0x3ff)))
	return hi, lo
}

// renderCharClass renders [members…], sorting by codepoint (shorthand
// classes sort after graphemes, per grapheme.Less) and compacting
// contiguous single-codepoint runs into `a-z` ranges (spec §4.6). Classes
// inside brackets escape `]`, `\`, `-`, and `^` instead of the full
// metacharacter set.
func (r *renderer) renderCharClass(e *synth.Expr) string {
	members := append([]grapheme.Symbol(nil), e.ClassMembers()...)
	sort.Slice(members, func(i, j int) bool { return grapheme.Less(members[i], members[j]) })

	var b strings.Builder
	b.WriteByte('[')
	i := 0
	for i < len(members) {
		if members[i].IsClass() {
			b.WriteString(members[i].Class().Token())
			i++
			continue
		}
		lo, ok := members[i].Rune()
		if !ok {
			b.WriteString(escapeInClass(members[i].Text()))
			i++
			continue
		}
		j := i
		for j+1 < len(members) {
			next, ok := members[j+1].Rune()
			if !ok || !members[j+1].IsGrapheme() || next != lo+rune(j+1-i) {
				break
			}
			j++
		}
		if j > i {
			hi, _ := members[j].Rune()
			b.WriteString(escapeInClass(string(lo)))
			b.WriteByte('-')
			b.WriteString(escapeInClass(string(hi)))
			i = j + 1
		} else {
			b.WriteString(escapeInClass(members[i].Text()))
			i++
		}
	}
	b.WriteByte(']')
	return b.String()
}

func escapeInClass(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case ']', '\\', '-', '^':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func itoa(n int) string { return strconv.Itoa(n) }

package emoji

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// NormalizeKey computes the comparison key for a glyph. It iterates the
// string's grapheme clusters and drops every cluster that consists only
// of spacing combining marks (general category Mc); all other clusters
// contribute their codepoints unchanged.
//
// The chart renders some rows with combining sequences that the GitHub
// codepoint list omits, so both sides must be normalized before joining.
func NormalizeKey(s string) string {
	out := make([]rune, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		if allSpacingCombining(runes) {
			continue
		}
		out = append(out, runes...)
	}
	return string(out)
}

// Key returns the normalized join key of a Unicode literal. Custom
// literals have no key; callers must not ask for one.
func (l Literal) Key() string {
	return NormalizeKey(string(l.codepoints))
}

func allSpacingCombining(runes []rune) bool {
	for _, r := range runes {
		if !unicode.Is(unicode.Mc, r) {
			return false
		}
	}
	return true
}

/*
Package uninorm decomposes ligature characters for text extraction.

A single ligature or precomposed character ("ﬁ", Arabic presentation
letters) stands for a sequence of base characters. When glyph runs are
turned back into plain text, such characters are replaced by their
decomposition — and for right-to-left scripts the decomposed sequence must
additionally be reversed, because combining sequences are stored in logical
order while extraction concatenates in visual order.

This is deliberately not full Unicode normalization and not the Unicode
bidirectional algorithm: only single-character decompositions and a one-step
reversal heuristic for single-script sequences are provided.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package uninorm

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'uniglyph.norm'
func tracer() tracing.Trace {
	return tracing.Select("uniglyph.norm")
}

var (
	normalizedOnce sync.Once
	normalized     map[rune]string
)

// NormalizedUnicodes returns the table mapping single ligature and
// precomposed characters to their decomposed representation. Characters
// without a listed decomposition are absent; callers treat absence as "use
// the character unchanged".
//
// The table is built once on first use and cached for the lifetime of the
// process. It is returned without copying and must be treated as read-only.
func NormalizedUnicodes() map[rune]string {
	normalizedOnce.Do(buildNormalized)
	return normalized
}

// buildNormalized collects the compatibility decompositions of the Basic
// Multilingual Plane: characters whose NFKD form differs while NFD leaves
// them untouched. Canonically precomposed characters (é and friends) stay
// composed — extracted text should keep them as they are.
func buildNormalized() {
	normalized = make(map[rune]string)
	for r := rune(0x00A0); r <= 0xFFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		s := string(r)
		if norm.NFD.String(s) != s {
			continue
		}
		if d := norm.NFKD.String(s); d != s {
			normalized[r] = d
		}
	}
	tracer().Debugf("built ligature decomposition table with %d entries", len(normalized))
}

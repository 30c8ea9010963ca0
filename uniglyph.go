/*
Package uniglyph resolves the Unicode identity of glyphs for text extraction.

Document renderers reference glyphs by name or by code point, and neither is
guaranteed to denote a standard Unicode character: fonts in the wild carry
synthetic glyph names ("uni0041", "g1234"), legacy vendor encodings park
symbols in the Private Use Area, and ligature glyphs stand for more than one
character. This package answers the questions a font/text layer has to ask
continually when turning glyph runs back into readable text:

▪︎ which standard code point does a (possibly vendor-remapped) code point
really represent — see [github.com/npillmayer/uniglyph/unicat],

▪︎ is a character a combining diacritic or whitespace — see
[github.com/npillmayer/uniglyph/unicat],

▪︎ which code point does an arbitrary glyph name denote — see
[github.com/npillmayer/uniglyph/glyphname],

▪︎ which numbered font-coverage sub-range contains a code point — see
[github.com/npillmayer/uniglyph/unirange],

▪︎ how does a ligature character decompose, and in which order should the
decomposition be read — see [github.com/npillmayer/uniglyph/uninorm].

The functions in this top-level package chain the sub-packages together into
the glyph-to-text pipeline a text extractor needs. All operations are pure
and may be called concurrently without synchronization.

This package does not parse fonts (the glyph-name tables are supplied by the
font-parsing layer, or taken from the built-in glyph lists), does not perform
full Unicode normalization, and does not implement the Unicode bidirectional
algorithm — only the narrow right-to-left correction needed for decomposed
ligatures.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package uniglyph

import (
	"strings"

	"github.com/npillmayer/uniglyph/glyphname"
	"github.com/npillmayer/uniglyph/unicat"
	"github.com/npillmayer/uniglyph/uninorm"
)

// TextForGlyph returns the extracted-text representation of a single named
// glyph. The glyph name is resolved against table t (and the numeric-escape
// naming conventions), the resulting code point is corrected for legacy
// Private-Use-Area remappings, and ligature characters are decomposed into
// their base-character sequence in visual reading order.
//
// The empty string is returned for glyph names that cannot be resolved to a
// character, including names that resolve to an unmapped Private-Use-Area
// code point.
func TextForGlyph(name string, t glyphname.Table) string {
	r := glyphname.UnicodeForGlyph(name, t)
	if r < 0 {
		return ""
	}
	r = unicat.MapSpecialValue(r)
	if r == 0 {
		return ""
	}
	if decomposed, ok := uninorm.NormalizedUnicodes()[r]; ok {
		return uninorm.ReverseIfRTL(decomposed)
	}
	return string(r)
}

// TextForGlyphs concatenates [TextForGlyph] over a sequence of glyph names,
// skipping unresolvable glyphs.
func TextForGlyphs(names []string, t glyphname.Table) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(TextForGlyph(name, t))
	}
	return sb.String()
}

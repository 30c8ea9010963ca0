/*
Package unicat classifies code points for text extraction.

Two classifications are provided: the character category relevant to glyph
runs (combining diacritic, whitespace) and the correction of legacy
Private-Use-Area code points, which vendor-specific font encodings use for
characters that have a standard Unicode identity.

All tables are static and read-only; every function is pure and total.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package unicat

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Category holds the classification flags of a single character. The flags
// are evaluated independently; no code point sets both in practice.
type Category struct {
	IsDiacritic  bool
	IsWhitespace bool
}

// whitespace covers the space separators (Zs), line and paragraph
// separators, the ASCII control whitespace, NEL, and the zero-width no-break
// space in its byte-order-mark role.
var whitespace = rangetable.Merge(
	unicode.Zs, unicode.Zl, unicode.Zp,
	rangetable.New('\t', '\n', '\v', '\f', '\r', 0x0085, 0xFEFF),
)

// diacritics covers the nonspacing combining marks (Mn), which include the
// combining diacritical blocks, tone marks and the combining half marks.
var diacritics = rangetable.Merge(unicode.Mn)

// CategoryOf classifies a single character.
func CategoryOf(r rune) Category {
	return Category{
		IsDiacritic:  unicode.Is(diacritics, r),
		IsWhitespace: unicode.Is(whitespace, r),
	}
}

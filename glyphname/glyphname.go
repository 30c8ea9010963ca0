/*
Package glyphname resolves textual glyph names to Unicode code points.

Glyph names found in font subtables follow no single convention: some come
from a standard glyph list ("fi", "Adieresis"), some encode a code point
numerically ("uni0041", "u1F030"), and some are entirely synthetic. The
resolver consults a caller-supplied name table first and falls back to the
numeric-escape conventions, reporting failure with the NoUnicode sentinel
instead of an error.

The package also carries built-in name tables (the base glyph list and its
ZapfDingbats variant) for callers that have no font-specific table at hand.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphname

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'uniglyph.names'
func tracer() tracing.Trace {
	return tracing.Select("uniglyph.names")
}

// NoUnicode is returned by UnicodeForGlyph for glyph names that cannot be
// resolved to a code point.
const NoUnicode rune = -1

// Table maps glyph names to code points. Tables are built by the
// font-parsing layer (or taken from the built-in glyph lists) and are
// treated as read-only by this package.
type Table map[string]rune

// UnicodeForGlyph resolves a glyph name to a code point. Resolution is
// attempted in order:
//
//  1. direct lookup of name in t,
//  2. "uniXXXX" with exactly four hex digits,
//  3. "uXXXX" … "uXXXXXX" with four to six hex digits.
//
// Hex digits are accepted in either case; the prefix letters must be
// lowercase as produced by font tools. Names that match no strategy yield
// NoUnicode. A nil table is valid and skips the first strategy.
func UnicodeForGlyph(name string, t Table) rune {
	if r, ok := t[name]; ok {
		return r
	}
	if len(name) == 7 && strings.HasPrefix(name, "uni") {
		if r, ok := parseHexScalar(name[3:]); ok {
			return r
		}
	} else if len(name) >= 5 && len(name) <= 7 && name[0] == 'u' {
		if r, ok := parseHexScalar(name[1:]); ok {
			return r
		}
	}
	return NoUnicode
}

// parseHexScalar parses a run of hex digits into a code point. Values beyond
// the Unicode code space are rejected; anything that is not purely hex
// digits is rejected as well.
func parseHexScalar(s string) (rune, bool) {
	var val rune
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			val = val*16 + (c - '0')
		case c >= 'A' && c <= 'F':
			val = val*16 + (c - 'A' + 10)
		case c >= 'a' && c <= 'f':
			val = val*16 + (c - 'a' + 10)
		default:
			return 0, false
		}
	}
	if val > 0x10FFFF {
		return 0, false
	}
	return val, true
}

package uniglyph

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uniglyph/glyphname"
)

func TestTextForGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	glyphs := glyphname.BuiltinGlyphs()
	cases := []struct {
		name string
		want string
	}{
		{"A", "A"},
		{"space", " "},
		{"fi", "fi"},                // ligature glyph decomposes
		{"uni0675", "\u0627\u0674"}, // RTL decomposition comes out in visual order
		{"uniF8E9", "\u00a9"},       // legacy PUA copyright symbol
		{"uniE000", ""},             // unmapped PUA carries no text
		{"uniFFFF", ""},
		{"g1234", ""}, // unresolvable
	}
	for _, c := range cases {
		if got := TextForGlyph(c.name, glyphs); got != c.want {
			t.Errorf("TextForGlyph(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestTextForGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	glyphs := glyphname.BuiltinGlyphs()
	names := []string{"T", "e", "x", "t", "space", "g99", "fi", "n", "e"}
	if got := TextForGlyphs(names, glyphs); got != "Text fine" {
		t.Errorf("expected extracted text \"Text fine\", got %q", got)
	}
}

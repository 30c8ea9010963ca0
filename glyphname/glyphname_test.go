package glyphname

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableLookupWinsOverEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	table := Table{"uni0041": 0x2603} // deliberately not 'A'
	if r := UnicodeForGlyph("uni0041", table); r != 0x2603 {
		t.Errorf("expected table entry to shadow the uniXXXX escape, got %#x", r)
	}
	if r := UnicodeForGlyph("g42", Table{"g42": 0x0031}); r != 0x0031 {
		t.Errorf("expected direct lookup of 'g42' to yield 0x31, got %#x", r)
	}
}

func TestUniEscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	cases := []struct {
		name string
		want rune
	}{
		{"uni0041", 0x0041},
		{"uni00e4", 0x00E4}, // lowercase hex digits are fine
		{"uniFB01", 0xFB01},
		{"uni041", NoUnicode},   // three digits
		{"uni00412", NoUnicode}, // five digits
		{"unixyzw", NoUnicode},
		{"Uni0041", NoUnicode}, // prefix is case-sensitive
	}
	for _, c := range cases {
		if r := UnicodeForGlyph(c.name, nil); r != c.want {
			t.Errorf("UnicodeForGlyph(%q) = %#x, want %#x", c.name, r, c.want)
		}
	}
}

func TestUEscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	cases := []struct {
		name string
		want rune
	}{
		{"u0041", 0x0041},
		{"u1F030", 0x1F030},
		{"u10FFFF", 0x10FFFF},
		{"u110000", NoUnicode}, // beyond the code space
		{"u41", NoUnicode},     // too short
		{"u0000041", NoUnicode},
		{"uzzzz", NoUnicode},
	}
	for _, c := range cases {
		if r := UnicodeForGlyph(c.name, nil); r != c.want {
			t.Errorf("UnicodeForGlyph(%q) = %#x, want %#x", c.name, r, c.want)
		}
	}
}

func TestUnresolvableNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	for _, name := range []string{"", "glyph1", "x0041", "uni", "u"} {
		if r := UnicodeForGlyph(name, Table{"A": 0x41}); r != NoUnicode {
			t.Errorf("expected %q to be unresolvable, got %#x", name, r)
		}
	}
}

func TestBuiltinGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	glyphs := BuiltinGlyphs()
	cases := []struct {
		name string
		want rune
	}{
		{"A", 0x0041},
		{"fi", 0xFB01},
		{"Adieresis", 0x00C4},
		{"afii57664", 0x05D0}, // Hebrew alef
		{"Euro", 0x20AC},
	}
	for _, c := range cases {
		if r, ok := glyphs[c.name]; !ok || r != c.want {
			t.Errorf("builtin glyph %q = %#x (present=%v), want %#x", c.name, r, ok, c.want)
		}
	}
	if _, ok := glyphs[".notdef"]; ok {
		t.Error("expected .notdef to have no Unicode mapping")
	}
}

func TestBuiltinDingbats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.names")
	defer teardown()
	//
	dingbats := BuiltinDingbats()
	if r := UnicodeForGlyph("a1", dingbats); r != 0x2701 {
		t.Errorf("expected dingbats glyph 'a1' to be U+2701, got %#x", r)
	}
	if r := UnicodeForGlyph("a19", dingbats); r != 0x2714 {
		t.Errorf("expected dingbats glyph 'a19' to be U+2714, got %#x", r)
	}
	// tables are cached after first construction
	if len(BuiltinDingbats()) != len(dingbats) {
		t.Error("expected built-in dingbats table to be stable across calls")
	}
}

package uninorm

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLigatureDecompositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.norm")
	defer teardown()
	//
	table := NormalizedUnicodes()
	cases := []struct {
		r    rune
		want string
	}{
		{0xFB01, "fi"},
		{0xFB02, "fl"},
		{0xFB03, "ffi"},
		{0x0675, "\u0674\u0627"}, // Arabic high hamza alef -> high hamza + alef
		{0x2026, "..."},          // horizontal ellipsis
	}
	for _, c := range cases {
		if got, ok := table[c.r]; !ok || got != c.want {
			t.Errorf("decomposition of U+%04X = %q (present=%v), want %q", c.r, got, ok, c.want)
		}
	}
}

func TestUndecomposedCharactersAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.norm")
	defer teardown()
	//
	table := NormalizedUnicodes()
	// plain characters and canonically precomposed ones stay as they are
	for _, r := range []rune{'A', 'z', 0x00E9, 0x05D0, 0x4E2D} {
		if got, ok := table[r]; ok {
			t.Errorf("expected U+%04X to have no decomposition, got %q", r, got)
		}
	}
}

func TestNormalizedTableIsCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.norm")
	defer teardown()
	//
	first := NormalizedUnicodes()
	second := NormalizedUnicodes()
	if len(first) == 0 || len(first) != len(second) {
		t.Errorf("expected a stable cached table, sizes %d and %d", len(first), len(second))
	}
}

func TestReverseIfRTL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.norm")
	defer teardown()
	//
	if got := ReverseIfRTL("\u0674\u0627"); got != "\u0627\u0674" {
		t.Errorf("expected Arabic sequence to be reversed, got %q", got)
	}
	if got := ReverseIfRTL("\u05e9\u05b0"); got != "\u05b0\u05e9" {
		t.Errorf("expected Hebrew base+mark sequence to be reversed, got %q", got)
	}
	for _, s := range []string{"fi", "abc", "", "\u0627", "a\u0627"} {
		if got := ReverseIfRTL(s); got != s {
			t.Errorf("expected %q to pass through unchanged, got %q", s, got)
		}
	}
}

func TestReverseIfRTLInvolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uniglyph.norm")
	defer teardown()
	//
	// the reversed strings start with an R or AL rune again, so reversing
	// twice restores the original
	for _, s := range []string{"\u0674\u0627", "\u05d0\u05d1\u05d2"} {
		if got := ReverseIfRTL(ReverseIfRTL(s)); got != s {
			t.Errorf("expected double reversal to restore %q, got %q", s, got)
		}
	}
}

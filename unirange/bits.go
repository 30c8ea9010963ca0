package unirange

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'uniglyph.coverage'
func tracer() tracing.Trace {
	return tracing.Select("uniglyph.coverage")
}

// Bits is the 128-bit `ulUnicodeRange` coverage bitfield of an OS/2 font
// table. Bit i corresponds to sub-range index i as reported by RangeFor;
// word 0 holds bits 0–31, word 3 holds bits 96–127.
type Bits [4]uint32

// Set marks sub-range index as covered. Indexes outside the declared table
// are ignored.
func (b *Bits) Set(index int) {
	if index < 0 || index >= NumRanges {
		return
	}
	b[index/32] |= 1 << (index % 32)
}

// IsSet reports whether sub-range index is marked as covered.
func (b Bits) IsSet(index int) bool {
	if index < 0 || index >= NumRanges {
		return false
	}
	return b[index/32]&(1<<(index%32)) != 0
}

// Add marks the sub-range containing r, if any.
func (b *Bits) Add(r rune) {
	b.Set(RangeFor(r))
}

// Indexes returns the covered sub-range indexes in ascending order.
func (b Bits) Indexes() []int {
	var indexes []int
	for i := 0; i < NumRanges; i++ {
		if b.IsSet(i) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// String formats the bitfield the way font dumps usually do, as four
// hex words, high word first.
func (b Bits) String() string {
	var sb strings.Builder
	for i := 3; i >= 0; i-- {
		if i < 3 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08X", b[i])
	}
	return sb.String()
}

// FromRunes returns the coverage bitfield for a set of runes.
func FromRunes(runes []rune) Bits {
	var b Bits
	for _, r := range runes {
		b.Add(r)
	}
	return b
}

// FontCoverage derives the coverage bitfield a font should declare, by
// probing the font's character map for every code point of every declared
// sub-range. A sub-range is covered as soon as one of its code points has a
// glyph. The surrogate sub-range (bit 57) cannot be probed through a rune
// based character map and is left unset.
func FontCoverage(f *sfnt.Font) (Bits, error) {
	var b Bits
	buf := &sfnt.Buffer{}
	for i, ur := range unicodeRanges {
		if ur.begin >= 0xD800 && ur.begin <= 0xDFFF {
			continue
		}
		for r := ur.begin; r < ur.end; r++ {
			gid, err := f.GlyphIndex(buf, r)
			if err != nil {
				return Bits{}, err
			}
			if gid != 0 {
				b.Set(i)
				break
			}
		}
	}
	tracer().Debugf("font covers %d of %d sub-ranges", len(b.Indexes()), NumRanges)
	return b, nil
}

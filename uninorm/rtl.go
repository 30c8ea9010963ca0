package uninorm

import "golang.org/x/text/unicode/bidi"

// ReverseIfRTL reverses the rune order of s if it holds right-to-left
// content, and returns s unchanged otherwise. Whether s is right-to-left is
// decided by the bidi class of its first rune (R or AL, which covers the
// Hebrew and Arabic blocks and their presentation forms).
//
// The intended input is a decomposed ligature sequence from
// [NormalizedUnicodes], which is single-script by construction; mixed
// multi-directional strings are outside the contract.
func ReverseIfRTL(s string) string {
	prop, sz := bidi.LookupString(s)
	if sz == 0 {
		return s
	}
	if c := prop.Class(); c != bidi.R && c != bidi.AL {
		return s
	}
	runes := []rune(s)
	if len(runes) <= 1 {
		return s
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

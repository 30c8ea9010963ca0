package unicat

// NoChar is the "no character" sentinel returned by MapSpecialValue for
// Private-Use-Area code points without a standard equivalent.
const NoChar rune = 0

// specialValues maps legacy code points, as produced by vendor-specific font
// encodings, to the standard characters they denote.
var specialValues = map[rune]rune{
	0x00AD: 0x002D, // soft hyphen, rendered as hyphen-minus in extracted text
	0xF6D9: 0x00A9, // copyrightserif
	0xF6DA: 0x00AE, // registerserif
	0xF6DB: 0x2122, // trademarkserif
	0xF8E8: 0x00AE, // registersans
	0xF8E9: 0x00A9, // copyrightsans
	0xF8EA: 0x2122, // trademarksans
}

// MapSpecialValue corrects a code point for legacy vendor remappings.
// Code points listed in the special-value table yield their standard
// equivalent. Unlisted code points in the Private Use Area, and the Specials
// block U+FFF0–U+FFFF, yield NoChar: they carry no text content and would
// otherwise surface as garbage during extraction. Everything else passes
// through unchanged.
func MapSpecialValue(r rune) rune {
	if mapped, ok := specialValues[r]; ok {
		return mapped
	}
	if r >= 0xFFF0 && r <= 0xFFFF { // Specials block
		return NoChar
	}
	if r >= 0xE000 && r <= 0xF8FF { // unmapped Private Use Area
		return NoChar
	}
	return r
}

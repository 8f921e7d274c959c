package tweet

import "unicode"

// wideRanges lists the scalars counted double, matching the display-width
// convention the platform applies to its character budget.
var wideRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x115F, Stride: 1}, // Hangul Jamo
		{Lo: 0x2329, Hi: 0x232A, Stride: 1}, // angle brackets
		{Lo: 0x2E80, Hi: 0xA4CF, Stride: 1}, // CJK radicals through Yi
		{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}, // Hangul syllables
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // CJK compatibility ideographs
		{Lo: 0xFE10, Hi: 0xFE19, Stride: 1}, // vertical forms
		{Lo: 0xFE30, Hi: 0xFE6F, Stride: 1}, // CJK compatibility forms
		{Lo: 0xFF00, Hi: 0xFF60, Stride: 1}, // fullwidth forms
		{Lo: 0xFFE0, Hi: 0xFFE6, Stride: 1}, // fullwidth signs
	},
}

// Length returns the weighted length of text. Runes in the wide CJK and
// fullwidth ranges count as two units, everything else as one.
func Length(text string) int {
	n := 0
	for _, r := range text {
		if unicode.Is(wideRanges, r) {
			n += 2
		} else {
			n++
		}
	}
	return n
}

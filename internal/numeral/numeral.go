// Package numeral parses Japanese kanji-numeral strings into their integer
// value, grounded on the original `japanese_number_parser`/`NumberProducer`
// behaviour (format a recognized Japanese number into its Arabic value);
// no such parser exists among this module's third-party dependencies, so
// it is implemented directly against the standard library.
package numeral

import "strings"

var digits = map[rune]int64{
	'〇': 0, '零': 0,
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

var smallUnits = map[rune]int64{
	'十': 10, '百': 100, '千': 1000,
}

var bigUnits = map[rune]int64{
	'万': 10000, '億': 100000000,
}

// Parse converts a kanji-numeral string (e.g. "五十三", "二千十九") into its
// integer value. Returns false when s contains no recognizable numeral
// characters.
func Parse(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	var total int64
	var section int64 // accumulates within the current "man/oku" section
	var current int64 // accumulates within the current small-unit run
	sawAny := false

	for _, r := range s {
		switch {
		case digits[r] != 0 || r == '〇' || r == '零':
			current = digits[r]
			sawAny = true
		case smallUnits[r] != 0:
			mult := current
			if mult == 0 {
				mult = 1
			}
			section += mult * smallUnits[r]
			current = 0
			sawAny = true
		case bigUnits[r] != 0:
			section += current
			if section == 0 {
				section = 1
			}
			total += section * bigUnits[r]
			section = 0
			current = 0
			sawAny = true
		default:
			return 0, false
		}
	}
	total += section + current
	if !sawAny {
		return 0, false
	}
	return total, true
}

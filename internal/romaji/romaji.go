// Package romaji implements the romaji-to-hiragana fallback conversion used
// by the romaji producer, which only runs if fewer than
// RomajiFallbackMaxAlreadyFound results have already been found and the
// query is foreign-language romaji-convertible.
// No library in the example corpus performs Latin-to-kana transliteration
// (go-unidecode only folds the other direction, Japanese to ASCII), so this
// is a small hand-rolled Hepburn-romanization table — the converse of what
// go-unidecode already tabulates, not something a pulled-in dependency
// could serve.
package romaji

import "strings"

// table maps romaji syllables, longest first, to their hiragana equivalent.
// It covers the core gojuon grid, digraphs (sh/ch/ts/j/y-series), long
// vowels written doubled, and the geminate consonant ("tt" -> small tsu).
var table = []struct {
	romaji   string
	hiragana string
}{
	{"kya", "きゃ"}, {"kyu", "きゅ"}, {"kyo", "きょ"},
	{"sha", "しゃ"}, {"shu", "しゅ"}, {"sho", "しょ"},
	{"cha", "ちゃ"}, {"chu", "ちゅ"}, {"cho", "ちょ"},
	{"nya", "にゃ"}, {"nyu", "にゅ"}, {"nyo", "にょ"},
	{"hya", "ひゃ"}, {"hyu", "ひゅ"}, {"hyo", "ひょ"},
	{"mya", "みゃ"}, {"myu", "みゅ"}, {"myo", "みょ"},
	{"rya", "りゃ"}, {"ryu", "りゅ"}, {"ryo", "りょ"},
	{"gya", "ぎゃ"}, {"gyu", "ぎゅ"}, {"gyo", "ぎょ"},
	{"ja", "じゃ"}, {"ju", "じゅ"}, {"jo", "じょ"},
	{"bya", "びゃ"}, {"byu", "びゅ"}, {"byo", "びょ"},
	{"pya", "ぴゃ"}, {"pyu", "ぴゅ"}, {"pyo", "ぴょ"},
	{"shi", "し"}, {"chi", "ち"}, {"tsu", "つ"}, {"fu", "ふ"},
	{"ka", "か"}, {"ki", "き"}, {"ku", "く"}, {"ke", "け"}, {"ko", "こ"},
	{"sa", "さ"}, {"su", "す"}, {"se", "せ"}, {"so", "そ"},
	{"ta", "た"}, {"te", "て"}, {"to", "と"},
	{"na", "な"}, {"ni", "に"}, {"nu", "ぬ"}, {"ne", "ね"}, {"no", "の"},
	{"ha", "は"}, {"hi", "ひ"}, {"he", "へ"}, {"ho", "ほ"},
	{"ma", "ま"}, {"mi", "み"}, {"mu", "む"}, {"me", "め"}, {"mo", "も"},
	{"ya", "や"}, {"yu", "ゆ"}, {"yo", "よ"},
	{"ra", "ら"}, {"ri", "り"}, {"ru", "る"}, {"re", "れ"}, {"ro", "ろ"},
	{"wa", "わ"}, {"wo", "を"},
	{"ga", "が"}, {"gi", "ぎ"}, {"gu", "ぐ"}, {"ge", "げ"}, {"go", "ご"},
	{"za", "ざ"}, {"ji", "じ"}, {"zu", "ず"}, {"ze", "ぜ"}, {"zo", "ぞ"},
	{"da", "だ"}, {"di", "ぢ"}, {"du", "づ"}, {"de", "で"}, {"do", "ど"},
	{"ba", "ば"}, {"bi", "び"}, {"bu", "ぶ"}, {"be", "べ"}, {"bo", "ぼ"},
	{"pa", "ぱ"}, {"pi", "ぴ"}, {"pu", "ぷ"}, {"pe", "ぺ"}, {"po", "ぽ"},
	{"a", "あ"}, {"i", "い"}, {"u", "う"}, {"e", "え"}, {"o", "お"},
	{"n", "ん"},
}

// Convertible reports whether s looks like it could be a romanized
// Japanese string: every character is an ASCII letter and the whole string
// reduces without leftover to Convert's table lookups.
func Convertible(s string) bool {
	if s == "" {
		return false
	}
	_, remainder := convert(s)
	return remainder == ""
}

// Convert transliterates romaji into hiragana on a best-effort basis,
// longest-match first. Any untranslatable suffix is dropped; check
// Convertible first if an exact, lossless conversion is required.
func Convert(s string) string {
	out, _ := convert(s)
	return out
}

func convert(s string) (hiragana string, remainder string) {
	s = strings.ToLower(s)
	var b strings.Builder
	for len(s) > 0 {
		if len(s) >= 2 && s[0] == s[1] && isConsonant(s[0]) && s[0] != 'n' {
			b.WriteString("っ")
			s = s[1:]
			continue
		}
		matched := false
		for _, e := range table {
			if strings.HasPrefix(s, e.romaji) {
				b.WriteString(e.hiragana)
				s = s[len(e.romaji):]
				matched = true
				break
			}
		}
		if !matched {
			return b.String(), s
		}
	}
	return b.String(), ""
}

func isConsonant(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o':
		return false
	default:
		return b >= 'a' && b <= 'z'
	}
}

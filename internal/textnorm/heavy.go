// Package textnorm normalizes query and reading text before it reaches an
// index: halfwidth/fullwidth kana folding, katakana/hiragana folding, and a
// best-effort ASCII transliteration for Latin-script text.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Kana normalizes Japanese reading text for index lookups: NFKC fold, then
// katakana -> hiragana so katakana and hiragana readings collide in the
// native word ngram index.
func Kana(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	return katakanaToHiragana(s)
}

// FoldDigits narrows fullwidth digits/ASCII to their halfwidth form, so a
// fullwidth numeral query like "５日" is seen by the number-parser producer
// the same as the halfwidth "5日" would be.
func FoldDigits(s string) string {
	if s == "" {
		return ""
	}
	return width.Narrow.String(s)
}

func katakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// Heavy normalizes free-form text for trigram/romaji comparison: NFKC fold,
// best-effort ASCII transliteration, lowercase, punctuation collapse to
// spaces, whitespace collapse. No search path calls it.
func Heavy(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	s = unidecode.Unidecode(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return ""
	}
	return strings.Join(strings.Fields(out), " ")
}

// Package lang classifies a raw query string by script into one of
// model.Language.
package lang

import (
	"strings"
	"unicode"

	"github.com/nihongokit/dictsearch/model"
)

// JapaneseScriptThreshold is the ratio (0..1) of Japanese-script codepoints
// above which a query classifies as Japanese; below it, the query
// classifies as Foreign. Exactly at the threshold it is Undetected.
const JapaneseScriptThreshold = 0.5

// ClassifyOptions configures Classify, following the Options/withDefaults
// idiom used elsewhere in this repo: a zero JapaneseRatioThreshold falls
// back to JapaneseScriptThreshold.
type ClassifyOptions struct {
	JapaneseRatioThreshold float64
}

func (o ClassifyOptions) withDefaults() ClassifyOptions {
	out := o
	if out.JapaneseRatioThreshold == 0 {
		out.JapaneseRatioThreshold = JapaneseScriptThreshold
	}
	return out
}

func isJapaneseScript(r rune) bool {
	switch {
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case (r >= 0x31F0 && r <= 0x31FF): // Katakana Phonetic Extensions
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK Symbols and Punctuation
		return true
	}
	return false
}

func isHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7AF
}

// stripRegexMeta removes regex metacharacters before computing script ratio.
func stripRegexMeta(s string) string {
	const meta = `\^$.|?*+()[]{}`
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(meta, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Classify determines the query language by script ratio, using the
// package's default ClassifyOptions. A Hangul-only string short-circuits to
// Korean.
func Classify(raw string) model.Language {
	return ClassifyWithOptions(raw, ClassifyOptions{})
}

// ClassifyWithOptions is Classify parameterized by a ClassifyOptions.
func ClassifyWithOptions(raw string, opts ClassifyOptions) model.Language {
	opts = opts.withDefaults()
	s := stripRegexMeta(raw)
	s = strings.TrimSpace(s)
	if s == "" {
		return model.LanguageUndetected
	}

	var total, japanese, hangul int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		switch {
		case isJapaneseScript(r):
			japanese++
		case isHangul(r):
			hangul++
		}
	}
	if total == 0 {
		return model.LanguageUndetected
	}
	if hangul == total {
		return model.LanguageKorean
	}

	ratio := float64(japanese) / float64(total)
	switch {
	case ratio > opts.JapaneseRatioThreshold:
		return model.LanguageJapanese
	case ratio < opts.JapaneseRatioThreshold:
		return model.LanguageForeign
	default:
		return model.LanguageUndetected
	}
}

// ContainsJapaneseScript reports whether s has any Hiragana/Katakana/Kanji
// codepoint, used by producers to decide whether native-script retrieval
// paths are worth attempting.
func ContainsJapaneseScript(s string) bool {
	for _, r := range s {
		if isJapaneseScript(r) {
			return true
		}
	}
	return false
}

// ContainsASCIIAlphaNum reports whether s has any ASCII letter/digit.
func ContainsASCIIAlphaNum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}

// NormalizeWhitespace trims and collapses internal whitespace runs to a
// single space.
func NormalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(s), " ")
}

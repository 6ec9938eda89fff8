package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nihongokit/dictsearch/model"
)

func TestClassify_Japanese(t *testing.T) {
	assert.Equal(t, model.LanguageJapanese, Classify("おはよう"))
	assert.Equal(t, model.LanguageJapanese, Classify("漢字"))
}

func TestClassify_Foreign(t *testing.T) {
	assert.Equal(t, model.LanguageForeign, Classify("kanji"))
	assert.Equal(t, model.LanguageForeign, Classify("dog"))
}

func TestClassify_Korean(t *testing.T) {
	assert.Equal(t, model.LanguageKorean, Classify("안녕하세요"))
}

func TestClassify_Undetected(t *testing.T) {
	assert.Equal(t, model.LanguageUndetected, Classify(""))
	assert.Equal(t, model.LanguageUndetected, Classify("猫猫ab"))
}

func TestContainsHelpers(t *testing.T) {
	assert.True(t, ContainsJapaneseScript("abcかな"))
	assert.False(t, ContainsJapaneseScript("abc"))
	assert.True(t, ContainsASCIIAlphaNum("猫5"))
	assert.False(t, ContainsASCIIAlphaNum("猫"))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b", NormalizeWhitespace("  a   b \n"))
}

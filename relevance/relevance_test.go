package relevance

import (
	"testing"

	"github.com/nihongokit/dictsearch/model"
	"github.com/stretchr/testify/assert"
)

func wordWithJLPT(jlpt uint8, common bool, reading string) *model.Word {
	return &model.Word{
		Reading: model.Reading{Kana: reading},
		JLPT:    &jlpt,
		Common:  common,
	}
}

func TestNativeWordMonotonicity(t *testing.T) {
	base := wordWithJLPT(3, false, "たべる")
	baseScore := NativeWord(base, 1.0, MatchExact)

	higherJLPT := wordWithJLPT(4, false, "たべる")
	assert.Greater(t, NativeWord(higherJLPT, 1.0, MatchExact), baseScore)

	common := wordWithJLPT(3, true, "たべる")
	assert.Greater(t, NativeWord(common, 1.0, MatchExact), baseScore)

	shorter := wordWithJLPT(3, false, "たべ")
	assert.Greater(t, NativeWord(shorter, 1.0, MatchExact), baseScore)
}

func TestNativeWordMultiplierOrdering(t *testing.T) {
	w := wordWithJLPT(1, false, "みず")
	exact := NativeWord(w, 1.0, MatchExact)
	kana := NativeWord(w, 1.0, MatchKanaNormalized)
	substr := NativeWord(w, 1.0, MatchSubstring)
	weak := NativeWord(w, 1.0, MatchWeakNgram)
	assert.Greater(t, exact, kana)
	assert.Greater(t, kana, substr)
	assert.Greater(t, substr, weak)
}

func TestKanjiReadingScore(t *testing.T) {
	assert.Equal(t, float32(KanjiReadingBase+KanjiReadingCommonBoost), KanjiReading(true, nil, 3))

	jlpt := uint8(5)
	assert.Equal(t, float32(KanjiReadingBase+KanjiReadingJLPTStep*5), KanjiReading(false, &jlpt, 3))

	assert.Equal(t, float32(KanjiReadingBase-2*10), KanjiReading(false, nil, 10))
	assert.Equal(t, float32(0), KanjiReading(false, nil, 1000))

	commonAndJLPT := uint8(3)
	assert.Equal(t, float32(KanjiReadingBase+KanjiReadingCommonBoost+KanjiReadingJLPTStep*3),
		KanjiReading(true, &commonAndJLPT, 3))
}

func TestRegexScorePrimaryBoost(t *testing.T) {
	primary := Regex(false, nil, 3, true)
	alt := Regex(false, nil, 3, false)
	assert.Equal(t, float32(RegexPrimaryBoost), primary-alt)
}

func TestNameDice(t *testing.T) {
	q := map[int]struct{}{1: {}, 2: {}}
	doc := map[int]struct{}{2: {}, 3: {}}
	score := Name(q, doc)
	assert.Greater(t, score, float32(0))
	assert.Equal(t, float32(0), Name(map[int]struct{}{}, doc))
}

func TestSentenceDownweightsMissingTranslation(t *testing.T) {
	withTranslation := Sentence(5, 4, 6, true)
	withoutTranslation := Sentence(5, 4, 6, false)
	assert.Less(t, withoutTranslation, withTranslation)
}

func TestForeignWordExactGlossBoost(t *testing.T) {
	q := map[int]struct{}{1: {}}
	doc := map[int]struct{}{1: {}}
	noBoost := ForeignWord(q, doc, "run", []string{"jog"}, "eng", "eng")
	boosted := ForeignWord(q, doc, "run", []string{"run"}, "eng", "eng")
	assert.Greater(t, boosted, noBoost)

	mismatched := ForeignWord(q, doc, "run", []string{"run"}, "ger", "eng")
	assert.Less(t, mismatched, boosted)
}

package queryparse

import (
	"testing"

	"github.com/nihongokit/dictsearch/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settings() model.UserSettings {
	return model.DefaultUserSettings()
}

func TestParseKanjiReading(t *testing.T) {
	q, err := Parse("事 ジ", model.TargetWords, settings(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.FormKanjiReading, q.Form.Kind)
	assert.Equal(t, '事', q.Form.KanjiLiteral)
	assert.Equal(t, "ジ", q.Form.KanjiReading)
}

func TestParseLanguagePrefix(t *testing.T) {
	q, err := Parse("eng: dog", model.TargetWords, settings(), 1)
	require.NoError(t, err)
	require.NotNil(t, q.LangOverwrite)
	assert.Equal(t, "eng", *q.LangOverwrite)
	assert.Equal(t, "dog", q.Raw)
	assert.Equal(t, model.LanguageForeign, q.Language)
}

func TestParseSequencePrefix(t *testing.T) {
	q, err := Parse("seq:12345 ignored", model.TargetWords, settings(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.FormSequence, q.Form.Kind)
	assert.Equal(t, uint32(12345), q.Form.SequenceID)
}

func TestParseMalformedSequencePrefix(t *testing.T) {
	_, err := Parse("seq:notanumber", model.TargetWords, settings(), 1)
	require.Error(t, err)
}

func TestParseQuotedTerms(t *testing.T) {
	q, err := Parse(`"to eat" food`, model.TargetWords, settings(), 1)
	require.NoError(t, err)
	assert.Contains(t, q.RequiredTerms, "to eat")
	assert.Contains(t, q.Raw, "to eat")
	assert.Contains(t, q.Raw, "food")
}

func TestParseTags(t *testing.T) {
	q, err := Parse("#jlpt3 #word 食べる", model.TargetWords, settings(), 1)
	require.NoError(t, err)
	jlpt, ok := q.JLPTFilter()
	require.True(t, ok)
	assert.Equal(t, uint8(3), jlpt)
	target, ok := q.TargetOverride()
	require.True(t, ok)
	assert.Equal(t, model.TargetWords, target)
	assert.Equal(t, "食べる", q.Raw)
}

func TestParseTagOnly(t *testing.T) {
	q, err := Parse("#jlpt1", model.TargetSentences, settings(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.FormTagOnly, q.Form.Kind)
}

func TestParseSingleAndMultiWord(t *testing.T) {
	q, err := Parse("犬", model.TargetWords, settings(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.FormSingleWord, q.Form.Kind)

	q, err = Parse("big dog", model.TargetWords, settings(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.FormMultiWords, q.Form.Kind)
}

func TestParsePageClamped(t *testing.T) {
	q, err := Parse("dog", model.TargetWords, settings(), 999)
	require.NoError(t, err)
	assert.Equal(t, 100, q.Page)
}

package engine

import (
	"testing"

	"github.com/nihongokit/dictsearch/index/kreading"
	"github.com/nihongokit/dictsearch/index/ngram"
	"github.com/nihongokit/dictsearch/index/regexidx"
	"github.com/nihongokit/dictsearch/index/vector"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeWordEngineRetrieval(t *testing.T) {
	idx := ngram.New()
	idx.Add(1, "たべもの")
	idx.Add(2, "のみもの")

	store := resource.NewStoreForTest(resource.TestData{
		Words: map[uint32]*model.Word{
			1: {SequenceID: 1, Reading: model.Reading{Kana: "たべもの"}},
			2: {SequenceID: 2, Reading: model.Reading{Kana: "のみもの"}},
		},
	})

	e := NewNativeWordEngine(idx, store)
	q, ok := e.MakeQuery("たべもの", model.LanguageJapanese)
	require.True(t, ok)

	cands := e.RetrieveFor(q, "たべもの", model.LanguageJapanese)
	assert.NotEmpty(t, cands)

	var found bool
	for _, c := range cands {
		if c.Document == 1 {
			found = true
		}
		outs := e.DocToOutput(c.Document)
		assert.NotEmpty(t, outs)
	}
	assert.True(t, found)
}

func TestKanjiReadingEngineParsesTwoTokens(t *testing.T) {
	idx := kreading.New()
	idx.Add('事', "ジ", 42)
	store := resource.NewStoreForTest(resource.TestData{
		Words: map[uint32]*model.Word{42: {SequenceID: 42}},
	})

	e := NewKanjiReadingEngine(idx, store)
	q, ok := e.MakeQuery("事 ジ", model.LanguageJapanese)
	require.True(t, ok)
	assert.Equal(t, '事', q.Literal)
	assert.Equal(t, "ジ", q.Reading)

	cands := e.RetrieveFor(q, "事 ジ", model.LanguageJapanese)
	require.Len(t, cands, 1)
	assert.Equal(t, uint32(42), cands[0].Document)

	_, ok = e.MakeQuery("one two three", model.LanguageJapanese)
	assert.False(t, ok)
}

func TestRegexEngineNarrowsByLiteralClass(t *testing.T) {
	idx := regexidx.New()
	idx.Add("あいう", 1)
	idx.Add("かきく", 2)
	store := resource.NewStoreForTest(resource.TestData{
		Words: map[uint32]*model.Word{
			1: {SequenceID: 1, Reading: model.Reading{Kana: "あいう"}},
			2: {SequenceID: 2, Reading: model.Reading{Kana: "かきく"}},
		},
	})

	e := NewRegexEngine(idx, store)
	re, ok := e.MakeQuery("あい.*", model.LanguageJapanese)
	require.True(t, ok)

	cands := e.RetrieveFor(re, "あい.*", model.LanguageJapanese)
	require.Len(t, cands, 1)
	assert.Equal(t, uint32(1), cands[0].Document)
}

func TestForeignWordEngineCosine(t *testing.T) {
	vidx := vector.NewForeignIndex("eng")
	vidx.AddDocument(1, "to run quickly", 1.0)
	vidx.AddDocument(2, "to eat slowly", 1.0)
	store := resource.NewStoreForTest(resource.TestData{
		Words: map[uint32]*model.Word{
			1: {SequenceID: 1},
			2: {SequenceID: 2},
		},
	})

	e := NewForeignWordEngine(vidx, store)
	q, ok := e.MakeQuery("to run quickly", model.LanguageForeign)
	require.True(t, ok)

	cands := e.RetrieveFor(q, "to run quickly", model.LanguageForeign)
	require.NotEmpty(t, cands)
}

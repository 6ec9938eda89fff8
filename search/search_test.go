package search

import (
	"testing"

	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u8(v uint8) *uint8 { return &v }

func testStore() *resource.Store {
	return resource.NewStoreForTest(resource.TestData{
		Words: map[uint32]*model.Word{
			1: {SequenceID: 1, Reading: model.Reading{Kana: "き", Kanji: "木"}, Common: true,
				Senses: []model.Sense{{Glosses: []string{"tree"}, Language: "eng"}}},
			2: {SequenceID: 2, Reading: model.Reading{Kana: "はやし", Kanji: "林"},
				Senses: []model.Sense{{Glosses: []string{"woods"}, Language: "eng"}}},
			3: {SequenceID: 3, Reading: model.Reading{Kana: "もり", Kanji: "森"}, JLPT: u8(3),
				Senses: []model.Sense{{Glosses: []string{"forest"}, Language: "eng", Misc: []string{"botany"}}}},
		},
		Kanji: map[rune]*model.Kanji{
			'木': {Literal: '木', Meanings: []string{"tree", "wood"}, StrokeCount: 4, RadicalParts: []rune{'木'}},
			'林': {Literal: '林', Meanings: []string{"woods", "grove"}, StrokeCount: 8, RadicalParts: []rune{'木', '木'}},
			'森': {Literal: '森', Meanings: []string{"forest"}, StrokeCount: 12, RadicalParts: []rune{'木', '林'}},
		},
		Names: map[uint32]*model.Name{
			10: {SequenceID: 10, Kana: "たなか", Kanji: "田中", Transcription: "Tanaka", Types: []model.NameType{"surname"}},
		},
		Sentences: map[uint32]*model.Sentence{
			100: {ID: 100, Japanese: "森に行きます。", Translations: map[string]string{"eng": "I go to the forest."},
				Tags: map[string]struct{}{"nature": {}}, JLPT: u8(3)},
		},
		Radicals: map[rune]*model.Radical{
			'木': {Literal: '木', StrokeCount: 4, Translations: []string{"tree"}},
		},
	})
}

func testCore(t *testing.T) *Core {
	t.Helper()
	store := testStore()
	indexes := BuildIndexSet(store, []string{"eng"})
	return NewCore(store, indexes, nil, []string{"eng"})
}

func TestSearchKanjiByLiteral(t *testing.T) {
	c := testCore(t)
	res, err := c.SearchKanji("森林", model.DefaultUserSettings(), 1)
	require.NoError(t, err)
	require.Len(t, res.Page.Items, 2)
	assert.Equal(t, '森', res.Page.Items[0].Kanji.Literal)
	assert.Equal(t, '林', res.Page.Items[1].Kanji.Literal)
}

func TestSearchKanjiByMeaningFallsBackWhenNoLiteralMatch(t *testing.T) {
	c := testCore(t)
	res, err := c.SearchKanji("forest", model.DefaultUserSettings(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, res.Page.Items)
	assert.Equal(t, '森', res.Page.Items[0].Kanji.Literal)
}

func TestSearchKanjiOnKunBuckets(t *testing.T) {
	c := testCore(t)
	res, err := c.SearchKanji("木", model.DefaultUserSettings(), 1)
	require.NoError(t, err)
	require.Len(t, res.Page.Items, 1)
	kun := res.Page.Items[0].KunWords
	require.NotEmpty(t, kun)
}

func TestSearchNamesByKanaMatchesJapanese(t *testing.T) {
	c := testCore(t)
	res, err := c.SearchNames("たなか", model.DefaultUserSettings(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, res.Page.Items)
	assert.Equal(t, uint32(10), res.Page.Items[0].Name.SequenceID)
}

func TestSearchNamesByTranscriptionMatchesForeign(t *testing.T) {
	c := testCore(t)
	settings := model.DefaultUserSettings()
	res, err := c.SearchNames("eng: Tanaka", settings, 1)
	require.NoError(t, err)
	require.NotEmpty(t, res.Page.Items)
	assert.Equal(t, uint32(10), res.Page.Items[0].Name.SequenceID)
}

func TestSearchSentencesByJapaneseText(t *testing.T) {
	c := testCore(t)
	res, err := c.SearchSentences("森に行きます", model.DefaultUserSettings(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, res.Page.Items)
	assert.Equal(t, uint32(100), res.Page.Items[0].Sentence.ID)
}

func TestSearchSentencesTagOnly(t *testing.T) {
	c := testCore(t)
	settings := model.DefaultUserSettings()
	res, err := c.SearchSentences("#nature", settings, 1)
	require.NoError(t, err)
	require.NotEmpty(t, res.Page.Items)
	assert.Equal(t, uint32(100), res.Page.Items[0].Sentence.ID)
}

func TestSuggestWordsReturnsWordPair(t *testing.T) {
	c := testCore(t)
	pairs := c.Suggest("もり", model.TargetWords)
	require.NotEmpty(t, pairs)
	assert.Equal(t, "森", pairs[0].Primary)
	require.NotNil(t, pairs[0].Secondary)
	assert.Equal(t, "もり", *pairs[0].Secondary)
}

func TestSuggestHashtagsCompletesWordSenseLabel(t *testing.T) {
	c := testCore(t)
	pairs := c.SuggestHashtags("bot")
	require.NotEmpty(t, pairs)
	assert.Equal(t, "#botany", pairs[0].Primary)
}

func TestDecompTreeStopsAtBaseRadical(t *testing.T) {
	c := testCore(t)
	tree, ok := c.DecompTree('森', true)
	require.True(t, ok)
	assert.Equal(t, "森", tree.Name)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, "木", tree.Children[0].Name)
	assert.Empty(t, tree.Children[0].Children)
	assert.Equal(t, "林", tree.Children[1].Name)
	require.Len(t, tree.Children[1].Children, 1)
}

func TestDecompTreeShallowWhenNotFull(t *testing.T) {
	c := testCore(t)
	tree, ok := c.DecompTree('森', false)
	require.True(t, ok)
	require.Len(t, tree.Children, 2)
	assert.Empty(t, tree.Children[1].Children, "林's own children should not expand when full=false")
}

func TestKanjiByRadicals(t *testing.T) {
	c := testCore(t)
	result := c.KanjiByRadicals([]rune{'木'})
	require.Contains(t, result.Kanji, uint8(4))
	require.Contains(t, result.Kanji, uint8(8))
	require.Contains(t, result.Kanji, uint8(12))
	assert.Contains(t, result.Kanji[4], rune('木'))
	assert.Contains(t, result.Kanji[8], rune('林'))
	assert.Contains(t, result.Kanji[12], rune('森'))
}

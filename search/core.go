// Package search implements the public surface: the four search entry
// points, suggestion completion, kanji IDS decomposition, and
// radical-based kanji lookup. It wires queryparse → producers →
// executor → pagination, against the engines and indexes built over one
// Resource Store.
package search

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
	"github.com/nihongokit/dictsearch/searchhelp"
	"github.com/nihongokit/dictsearch/tokenize"
)

// Core is the process-wide handle the public operations run against: one
// Resource Store, its derived IndexSet, and the engines built over them.
// Built once at startup and shared for the process lifetime.
type Core struct {
	Store     *resource.Store
	Indexes   *IndexSet
	Tokenizer tokenize.Tokenizer

	nativeWords  *engine.NativeWordEngine
	names        *engine.NameEngine
	namesForeign *engine.NameEngine
	kanjiReading *engine.KanjiReadingEngine
	kanjiMeaning *engine.KanjiEngine
	regex        *engine.RegexEngine
	sentencesJa  *engine.SentenceEngine
	foreignWords map[string]*engine.ForeignWordEngine
	sentenceFx   map[string]*engine.SentenceEngine

	// allSentences is a flattened view of the Store's sentence collection,
	// built once so the tag-only sentence pipeline never re-walks the map
	// per request.
	allSentences []*model.Sentence
}

// NewCore builds every engine over store and indexes. languages lists the
// gloss/translation language codes indexes was built for.
func NewCore(store *resource.Store, indexes *IndexSet, tokenizer tokenize.Tokenizer, languages []string) *Core {
	c := &Core{
		Store:     store,
		Indexes:   indexes,
		Tokenizer: tokenizer,

		nativeWords:  engine.NewNativeWordEngine(indexes.NativeWords, store),
		names:        engine.NewNameEngine(indexes.Names, store),
		namesForeign: engine.NewNameEngine(indexes.NamesTranscription, store),
		kanjiReading: engine.NewKanjiReadingEngine(indexes.KReading, store),
		kanjiMeaning: engine.NewKanjiEngine(indexes.KanjiMeanings, store),
		regex:        engine.NewRegexEngine(indexes.Regex, store),
		sentencesJa:  engine.NewSentenceEngine(indexes.SentencesJa, store),
		foreignWords: make(map[string]*engine.ForeignWordEngine, len(languages)),
		sentenceFx:   make(map[string]*engine.SentenceEngine, len(languages)),
	}
	for _, l := range languages {
		if fi, ok := indexes.ForeignWords[l]; ok {
			c.foreignWords[l] = engine.NewForeignWordEngine(fi, store)
		}
		if si, ok := indexes.SentenceTranslations[l]; ok {
			c.sentenceFx[l] = engine.NewSentenceEngine(si, store)
		}
	}
	for _, s := range store.Sentences() {
		c.allSentences = append(c.allSentences, s)
	}
	return c
}

// WordResponse is one word search result.
type WordResponse struct {
	Word *model.Word
}

// KanjiResponse bundles a kanji entity with its on/kun compound words.
type KanjiResponse struct {
	Kanji    *model.Kanji
	OnWords  []*model.Word
	KunWords []*model.Word
}

// NameResponse is one name search result.
type NameResponse struct {
	Name *model.Name
}

// SentenceResponse is one sentence search result.
type SentenceResponse struct {
	Sentence *model.Sentence
}

// Result wraps a Page of search responses with the original query echo and
// an optional zero-result search-help block.
type Result[T any] struct {
	Page          model.Page[T]
	OriginalQuery string
	Help          *searchhelp.Help
}

// WordsResult is SearchWords's response shape: a Result[WordResponse] plus
// the word pipeline's side-channel augmentations (optional InflectionInfo,
// optional SentenceBreakdown).
type WordsResult struct {
	Result[WordResponse]
	Inflection *model.InflectionInfo
	Breakdown  *model.SentenceBreakdown
	Number     *int64
}

func buildPage[T any](items []T, page, perPage, totalBeforeTrunc int) model.Page[T] {
	return model.Page[T]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalPages: executor.TotalPages(totalBeforeTrunc, perPage),
	}
}

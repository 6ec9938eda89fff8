package search

import (
	"strings"

	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
)

// suggestionMaxDist bounds how far below the best suggestion's relevance a
// candidate may trail before it's dropped, to trim weak matches. The exact
// cutoff is otherwise unconstrained; picked to keep completion lists tight
// without being so strict a single typo empties them.
const suggestionMaxDist = 2.0

const suggestionLimit = 10

// Suggest implements the completion endpoint: ranked (primary, secondary)
// pairs from the suggestion ngram index for target, trimmed to candidates
// within suggestionMaxDist of the best match.
func (c *Core) Suggest(raw string, target model.Target) []model.WordPair {
	switch target {
	case model.TargetWords:
		return c.suggestWords(raw)
	case model.TargetNames:
		return c.suggestNames(raw)
	case model.TargetKanji:
		return c.suggestKanjiMeanings(raw)
	default:
		return nil
	}
}

func (c *Core) suggestWords(raw string) []model.WordPair {
	sink := executor.NewSink(suggestionLimit)
	for seq, count := range c.Indexes.NativeWords.Candidates(raw) {
		sink.Push(seq, seq, float32(count))
	}
	out := make([]model.WordPair, 0, suggestionLimit)
	for _, sc := range executor.PageFromSinkWithMaxDist(sink, suggestionLimit, 0, suggestionMaxDist) {
		seq, ok := sc.Item.(uint32)
		if !ok {
			continue
		}
		w, ok := c.Store.Word(seq)
		if !ok {
			continue
		}
		out = append(out, wordSuggestion(w))
	}
	return out
}

func wordSuggestion(w *model.Word) model.WordPair {
	if w.Reading.Kanji == "" {
		return model.WordPair{Primary: w.Reading.Kana}
	}
	kana := w.Reading.Kana
	return model.WordPair{Primary: w.Reading.Kanji, Secondary: &kana}
}

func (c *Core) suggestNames(raw string) []model.WordPair {
	sink := executor.NewSink(suggestionLimit)
	for seq, count := range c.Indexes.Names.Candidates(raw) {
		sink.Push(seq, seq, float32(count))
	}
	out := make([]model.WordPair, 0, suggestionLimit)
	for _, sc := range executor.PageFromSinkWithMaxDist(sink, suggestionLimit, 0, suggestionMaxDist) {
		seq, ok := sc.Item.(uint32)
		if !ok {
			continue
		}
		n, ok := c.Store.Name(seq)
		if !ok {
			continue
		}
		if n.Kanji == "" {
			out = append(out, model.WordPair{Primary: n.Kana})
			continue
		}
		kana := n.Kana
		out = append(out, model.WordPair{Primary: n.Kanji, Secondary: &kana})
	}
	return out
}

// SuggestHashtags completes a partial "#" tag against the hashtag
// suggestion index derived from word sense labels, ranked by frequency
// among candidates within suggestionMaxDist of the best match.
func (c *Core) SuggestHashtags(raw string) []model.WordPair {
	sink := executor.NewSink(suggestionLimit)
	for id, count := range c.Indexes.Hashtags.Candidates(strings.ToLower(raw)) {
		sink.Push(id, id, float32(count))
	}
	out := make([]model.WordPair, 0, suggestionLimit)
	for _, sc := range executor.PageFromSinkWithMaxDist(sink, suggestionLimit, 0, suggestionMaxDist) {
		id, ok := sc.Item.(uint32)
		if !ok {
			continue
		}
		tag, ok := c.Indexes.HashtagFor(id)
		if !ok {
			continue
		}
		out = append(out, model.WordPair{Primary: "#" + tag})
	}
	return out
}

func (c *Core) suggestKanjiMeanings(raw string) []model.WordPair {
	sink := executor.NewSink(suggestionLimit)
	for id, count := range c.Indexes.KanjiMeanings.Candidates(raw) {
		sink.Push(id, id, float32(count))
	}
	out := make([]model.WordPair, 0, suggestionLimit)
	for _, sc := range executor.PageFromSinkWithMaxDist(sink, suggestionLimit, 0, suggestionMaxDist) {
		id, ok := sc.Item.(uint32)
		if !ok {
			continue
		}
		k, ok := c.Store.Kanji(rune(id))
		if !ok {
			continue
		}
		out = append(out, model.WordPair{Primary: string(k.Literal)})
	}
	return out
}

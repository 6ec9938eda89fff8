package search

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/index/vector"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/producer"
	"github.com/nihongokit/dictsearch/queryparse"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// englishLanguageCode is the gloss language code the foreign-English
// fallback step (when show_english is set and user_lang isn't English)
// compares against.
const englishLanguageCode = "eng"

// SearchWords implements the word pipeline: Sequence → KanjiReading →
// Native → Romaji-fallback → Foreign(user lang) → Foreign(English) →
// Regex → Number parser → Sentence-reader.
func (c *Core) SearchWords(raw string, settings model.UserSettings, page int) (*WordsResult, error) {
	q, err := queryparse.Parse(raw, model.TargetWords, settings, page)
	if err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.PerPage
	sink := executor.NewSink(q.PerPage + offset)

	numberP := &producer.NumberProducer{Raw: q.Raw}
	sentenceP := &producer.SentenceReaderProducer{
		Tokenizer: c.Tokenizer,
		NativeIdx: c.nativeWords,
		Raw:       q.Raw,
		Lang:      q.Language,
	}

	producers := []producer.Producer{
		&producer.SequenceWordProducer{Store: c.Store, Query: q},
		producer.NewKanjiReadingProducer(c.kanjiReading, q),
		producer.NewNativeWordProducer(c.nativeWords, q),
		&producer.RomajiFallbackProducer{Engine: c.nativeWords, Raw: q.Raw, Lang: q.Language},
	}
	if fi, eng, ok := c.foreignWordPair(settings.UserLanguage); ok {
		producers = append(producers, &producer.ForeignWordProducer{
			Index: fi, Engine: eng, Raw: q.Raw, Lang: q.Language, Language: settings.UserLanguage,
		})
	}
	if settings.ShowEnglish && settings.UserLanguage != englishLanguageCode {
		if fi, eng, ok := c.foreignWordPair(englishLanguageCode); ok {
			producers = append(producers, &producer.ForeignWordProducer{
				Index: fi, Engine: eng, Raw: q.Raw, Lang: q.Language, Language: englishLanguageCode,
			})
		}
	}
	producers = append(producers,
		producer.NewRegexProducer(c.regex, q),
		numberP,
		sentenceP,
	)

	producer.Run(sink, producers)

	scored := executor.PageFromSink(sink, q.PerPage, offset)
	items := make([]WordResponse, 0, len(scored))
	for _, sc := range scored {
		if w, ok := sc.Item.(*model.Word); ok {
			items = append(items, WordResponse{Word: w})
		}
	}

	result := &WordsResult{
		Result: Result[WordResponse]{
			Page:          buildPage(items, q.Page, q.PerPage, sink.TotalPushed()),
			OriginalQuery: q.Original,
		},
		Breakdown: sentenceP.Breakdown,
	}
	if numberP.Found {
		result.Number = &numberP.Parsed
	}
	if sentenceP.Inflection != nil {
		result.Inflection = sentenceP.Inflection
	}

	if len(items) == 0 {
		result.Help = c.wordsSearchHelp(q, settings)
	}
	return result, nil
}

func (c *Core) foreignWordPair(language string) (*vector.ForeignIndex, *engine.ForeignWordEngine, bool) {
	fi, ok1 := c.Indexes.ForeignWords[language]
	eng, ok2 := c.foreignWords[language]
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return fi, eng, true
}

// wordsSearchHelp builds the zero-result search-help block for a word
// search: estimated counts for the other three targets, plus the languages
// in which the query would find foreign-word matches.
func (c *Core) wordsSearchHelp(q *model.Query, settings model.UserSettings) *searchhelp.Help {
	targets := []searchhelp.TargetEstimator{
		{Target: model.TargetKanji, Estimate: func() (searchhelp.Guess, bool) {
			p := &producer.LiteralKanjiProducer{Store: c.Store, Raw: q.Raw}
			return p.Estimate()
		}},
		{Target: model.TargetNames, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewNameProducer(c.names, q, func(n *model.Name) string { return n.PrimaryReading() })
			return p.Estimate()
		}},
		{Target: model.TargetSentences, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewSentenceProducer(c.sentencesJa, q, settings.UserLanguage, func(s *model.Sentence) string { return s.Japanese })
			return p.Estimate()
		}},
	}

	var languages []searchhelp.LanguageEstimator
	for lang, eng := range c.foreignWords {
		lang, eng := lang, eng
		languages = append(languages, searchhelp.LanguageEstimator{
			Language: lang,
			Estimate: func() (searchhelp.Guess, bool) {
				fi := c.Indexes.ForeignWords[lang]
				p := &producer.ForeignWordProducer{Index: fi, Engine: eng, Raw: q.Raw, Lang: q.Language, Language: lang}
				return p.Estimate()
			},
		})
	}

	return searchhelp.Build(targets, languages)
}

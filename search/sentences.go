package search

import (
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/producer"
	"github.com/nihongokit/dictsearch/queryparse"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// SearchSentences implements the sentence pipeline: Sequence ->
// Native/Foreign text overlap -> tag-only (when the query is empty but a
// JLPT level or free hashtag is present). Results without a translation in
// the user's language are dropped unless show_english allows the fallback.
func (c *Core) SearchSentences(raw string, settings model.UserSettings, page int) (*Result[SentenceResponse], error) {
	q, err := queryparse.Parse(raw, model.TargetSentences, settings, page)
	if err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.PerPage
	sink := executor.NewSink(q.PerPage + offset)

	producers := []producer.Producer{
		&producer.SequenceSentenceProducer{Store: c.Store, Query: q},
		producer.NewSentenceProducer(c.sentencesJa, q, settings.UserLanguage, func(s *model.Sentence) string { return s.Japanese }),
	}
	if fx, ok := c.sentenceFx[settings.UserLanguage]; ok {
		producers = append(producers, producer.NewSentenceProducer(fx, q, settings.UserLanguage, func(s *model.Sentence) string {
			return s.Translations[settings.UserLanguage]
		}))
	}
	producers = append(producers, &producer.TagOnlySentenceProducer{
		Sentences: c.allSentences,
		Query:     q,
	})

	producer.Run(sink, producers)

	scored := executor.PageFromSink(sink, q.PerPage, offset)
	items := make([]SentenceResponse, 0, len(scored))
	for _, sc := range scored {
		s, ok := sc.Item.(*model.Sentence)
		if !ok {
			continue
		}
		if !settings.ShowEnglish && !s.HasTranslation(settings.UserLanguage) {
			continue
		}
		items = append(items, SentenceResponse{Sentence: s})
	}

	result := &Result[SentenceResponse]{
		Page:          buildPage(items, q.Page, q.PerPage, sink.TotalPushed()),
		OriginalQuery: q.Original,
	}
	if len(items) == 0 {
		result.Help = c.sentencesSearchHelp(q)
	}
	return result, nil
}

func (c *Core) sentencesSearchHelp(q *model.Query) *searchhelp.Help {
	targets := []searchhelp.TargetEstimator{
		{Target: model.TargetWords, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewNativeWordProducer(c.nativeWords, q)
			return p.Estimate()
		}},
		{Target: model.TargetNames, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewNameProducer(c.names, q, func(n *model.Name) string { return n.PrimaryReading() })
			return p.Estimate()
		}},
		{Target: model.TargetKanji, Estimate: func() (searchhelp.Guess, bool) {
			p := &producer.LiteralKanjiProducer{Store: c.Store, Raw: q.Raw}
			return p.Estimate()
		}},
	}
	return searchhelp.Build(targets, nil)
}

package search

import (
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/producer"
	"github.com/nihongokit/dictsearch/queryparse"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// SearchNames implements the name pipeline: Sequence -> KanjiReading ->
// Native (kana/kanji reading index, if the query is Japanese) -> Foreign
// (romaji transcription index, otherwise).
func (c *Core) SearchNames(raw string, settings model.UserSettings, page int) (*Result[NameResponse], error) {
	q, err := queryparse.Parse(raw, model.TargetNames, settings, page)
	if err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.PerPage
	sink := executor.NewSink(q.PerPage + offset)

	producers := []producer.Producer{
		&producer.SequenceNameProducer{Store: c.Store, Query: q},
		producer.NewKanjiReadingProducer(c.kanjiReading, q),
	}
	if q.Language == model.LanguageJapanese {
		producers = append(producers, producer.NewNameProducer(c.names, q, func(n *model.Name) string { return n.PrimaryReading() }))
	} else {
		producers = append(producers, producer.NewNameProducer(c.namesForeign, q, func(n *model.Name) string { return n.Transcription }))
	}

	producer.Run(sink, producers)

	scored := executor.PageFromSink(sink, q.PerPage, offset)
	items := make([]NameResponse, 0, len(scored))
	for _, sc := range scored {
		if n, ok := sc.Item.(*model.Name); ok {
			items = append(items, NameResponse{Name: n})
		}
	}

	result := &Result[NameResponse]{
		Page:          buildPage(items, q.Page, q.PerPage, sink.TotalPushed()),
		OriginalQuery: q.Original,
	}
	if len(items) == 0 {
		result.Help = c.namesSearchHelp(q, settings)
	}
	return result, nil
}

func (c *Core) namesSearchHelp(q *model.Query, settings model.UserSettings) *searchhelp.Help {
	targets := []searchhelp.TargetEstimator{
		{Target: model.TargetWords, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewNativeWordProducer(c.nativeWords, q)
			return p.Estimate()
		}},
		{Target: model.TargetKanji, Estimate: func() (searchhelp.Guess, bool) {
			p := &producer.LiteralKanjiProducer{Store: c.Store, Raw: q.Raw}
			return p.Estimate()
		}},
		{Target: model.TargetSentences, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewSentenceProducer(c.sentencesJa, q, settings.UserLanguage, func(s *model.Sentence) string { return s.Japanese })
			return p.Estimate()
		}},
	}
	return searchhelp.Build(targets, nil)
}

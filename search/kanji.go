package search

import (
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/producer"
	"github.com/nihongokit/dictsearch/queryparse"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// SearchKanji implements the kanji pipeline: resolve every distinct
// kanji literal in the query in order (the common case, e.g. "日本語"), and
// only fall back to a meaning search (e.g. "water" -> 水) when the literal
// pass found nothing.
func (c *Core) SearchKanji(raw string, settings model.UserSettings, page int) (*Result[KanjiResponse], error) {
	q, err := queryparse.Parse(raw, model.TargetKanji, settings, page)
	if err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.PerPage
	sink := executor.NewSink(q.PerPage + offset)

	producers := []producer.Producer{
		&producer.LiteralKanjiProducer{Store: c.Store, Raw: q.Raw},
		producer.NewKanjiMeaningProducer(c.kanjiMeaning, q),
	}
	producer.Run(sink, producers)

	scored := executor.PageFromSink(sink, q.PerPage, offset)
	items := make([]KanjiResponse, 0, len(scored))
	for _, sc := range scored {
		k, ok := sc.Item.(*model.Kanji)
		if !ok {
			continue
		}
		on, kun := classifyOnKun(c.Store.WordsWithKanji(k.Literal), k)
		items = append(items, KanjiResponse{
			Kanji:    k,
			OnWords:  on,
			KunWords: kun,
		})
	}

	result := &Result[KanjiResponse]{
		Page:          buildPage(items, q.Page, q.PerPage, sink.TotalPushed()),
		OriginalQuery: q.Original,
	}
	if len(items) == 0 {
		result.Help = c.kanjiSearchHelp(q)
	}
	return result, nil
}

func (c *Core) kanjiSearchHelp(q *model.Query) *searchhelp.Help {
	targets := []searchhelp.TargetEstimator{
		{Target: model.TargetWords, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewNativeWordProducer(c.nativeWords, q)
			return p.Estimate()
		}},
		{Target: model.TargetNames, Estimate: func() (searchhelp.Guess, bool) {
			p := producer.NewNameProducer(c.names, q, func(n *model.Name) string { return n.PrimaryReading() })
			return p.Estimate()
		}},
	}
	return searchhelp.Build(targets, nil)
}

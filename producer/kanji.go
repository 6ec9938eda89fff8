package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
	"github.com/nihongokit/dictsearch/resource"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// LiteralKanjiProducer resolves every distinct kanji character in the raw
// query directly against the Resource Store, in the order they appear. Each
// hit is pushed at SequenceRelevance minus its rune position in the query, so
// the result order matches the query's character order.
type LiteralKanjiProducer struct {
	Store *resource.Store
	Raw   string
}

func (p *LiteralKanjiProducer) ShouldRun(alreadyFound int) bool {
	return len([]rune(p.Raw)) > 0
}

func (p *LiteralKanjiProducer) Produce(sink *executor.Sink) {
	seen := make(map[rune]bool)
	runes := []rune(p.Raw)
	for i, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true
		k, ok := p.Store.Kanji(r)
		if !ok {
			continue
		}
		rel := SequenceRelevance - float32(i)
		sink.Push(uint32(r), k, rel)
	}
}

// Estimate counts the distinct kanji characters in the raw query that
// resolve against the Store, an accurate and index-free count since the
// literal-kanji path is a direct Store lookup rather than a posting scan.
func (p *LiteralKanjiProducer) Estimate() (searchhelp.Guess, bool) {
	seen := make(map[rune]bool)
	var count uint32
	for _, r := range p.Raw {
		if seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := p.Store.Kanji(r); ok {
			count++
		}
	}
	if count == 0 {
		return searchhelp.Guess{}, false
	}
	return searchhelp.Guess{Value: count, Kind: searchhelp.Accurate}, true
}

// NewKanjiMeaningProducer builds the "search kanji by meaning" producer,
// scored by ngram overlap over the kanji's meanings plus common/JLPT
// boosts. It only runs when the literal-kanji path found nothing, since a
// query of bare kanji characters is never also a meaning search.
func NewKanjiMeaningProducer(eng *engine.KanjiEngine, q *model.Query) *EngineProducer[string, uint32, *model.Kanji] {
	return &EngineProducer[string, uint32, *model.Kanji]{
		Engine: eng,
		Raw:    q.Raw,
		Lang:   q.Language,
		Score: func(k *model.Kanji, term any) float32 {
			overlap, _ := term.(int)
			return relevance.KanjiMeaning(overlap, k)
		},
		Identity: func(id uint32) executor.Identity { return id },
		Gate: func(alreadyFound int) bool {
			return alreadyFound == 0
		},
	}
}

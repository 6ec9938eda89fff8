package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
)

// NewKanjiReadingProducer builds the `事 ジ`-style kanji-reading producer,
// scored per relevance.KanjiReading. It only runs when the query classified
// as FormKanjiReading.
func NewKanjiReadingProducer(eng *engine.KanjiReadingEngine, q *model.Query) *EngineProducer[engine.KanjiReadingQuery, uint32, *model.Word] {
	return &EngineProducer[engine.KanjiReadingQuery, uint32, *model.Word]{
		Engine: eng,
		Raw:    q.Raw,
		Lang:   q.Language,
		Score: func(w *model.Word, term any) float32 {
			readingLen := len([]rune(w.PrimaryReading()))
			return relevance.KanjiReading(w.Common, w.JLPT, readingLen)
		},
		Identity: func(seq uint32) executor.Identity { return seq },
		Gate: func(alreadyFound int) bool {
			return q.Form.Kind == model.FormKanjiReading
		},
	}
}

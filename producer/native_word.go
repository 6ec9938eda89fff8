package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
)

// NewNativeWordProducer builds the native-word (Japanese reading) producer,
// scored per relevance.NativeWord. The engine folds kana/digits before
// matching, so a hit counts as a normalized-kana match unless the word's
// primary reading equals the raw query, which counts as an exact match.
func NewNativeWordProducer(eng *engine.NativeWordEngine, q *model.Query) *EngineProducer[string, uint32, *model.Word] {
	return &EngineProducer[string, uint32, *model.Word]{
		Engine: eng,
		Raw:    q.Raw,
		Lang:   q.Language,
		Score: func(w *model.Word, term any) float32 {
			overlap, _ := term.(int)
			kind := relevance.MatchKanaNormalized
			if w.PrimaryReading() == q.Raw {
				kind = relevance.MatchExact
			}
			return relevance.NativeWord(w, float32(overlap), kind)
		},
		Identity: func(seq uint32) executor.Identity { return seq },
	}
}

package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/index/ngram"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
)

// NewNameProducer builds the name-search producer, scored per
// relevance.Name's Dice coefficient over ngram termsets. docText extracts
// the text whose termset the scorer compares the query against (the search
// pipeline passes the primary reading for the native index and the romaji
// transcription for the foreign one).
func NewNameProducer(eng *engine.NameEngine, q *model.Query, docText func(*model.Name) string) *EngineProducer[string, uint32, *model.Name] {
	querySet := ngram.Termset(q.Raw)
	return &EngineProducer[string, uint32, *model.Name]{
		Engine: eng,
		Raw:    q.Raw,
		Lang:   q.Language,
		Score: func(n *model.Name, term any) float32 {
			docSet := ngram.Termset(docText(n))
			return relevance.Name(querySet, docSet)
		},
		Identity: func(seq uint32) executor.Identity { return seq },
	}
}

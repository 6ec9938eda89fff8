package engine

import (
	"github.com/nihongokit/dictsearch/index/ngram"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// SentenceEngine retrieves sentences by ngram overlap over either the
// Japanese text or a user-language translation; the native and foreign
// sentence producers share this one retrieval shape. Which text a given
// index was built over is a construction-time choice, not a per-call one.
type SentenceEngine struct {
	index *ngram.Index
	store *resource.Store
}

func NewSentenceEngine(index *ngram.Index, store *resource.Store) *SentenceEngine {
	return &SentenceEngine{index: index, store: store}
}

var _ Engine[string, uint32, *model.Sentence] = (*SentenceEngine)(nil)

func (e *SentenceEngine) MakeQuery(raw string, lang model.Language) (string, bool) {
	if raw == "" {
		return "", false
	}
	return raw, true
}

func (e *SentenceEngine) RetrieveFor(q string, raw string, lang model.Language) []Candidate[uint32] {
	counts := e.index.Candidates(q)
	out := make([]Candidate[uint32], 0, len(counts))
	for seq, count := range counts {
		out = append(out, Candidate[uint32]{Term: count, Document: seq})
	}
	return out
}

func (e *SentenceEngine) DocToOutput(id uint32) []*model.Sentence {
	s, ok := e.store.Sentence(id)
	if !ok {
		return nil
	}
	return []*model.Sentence{s}
}

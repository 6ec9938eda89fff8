package engine

import (
	"github.com/nihongokit/dictsearch/index/ngram"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// KanjiEngine retrieves kanji by ngram overlap over their English meanings,
// the "search kanji by meaning" path (e.g. "water" -> 水). The index is
// keyed by the kanji literal's rune value reinterpreted as a uint32
// document id, the same shape the word/name ngram indexes use.
type KanjiEngine struct {
	index *ngram.Index
	store *resource.Store
}

func NewKanjiEngine(index *ngram.Index, store *resource.Store) *KanjiEngine {
	return &KanjiEngine{index: index, store: store}
}

var _ Engine[string, uint32, *model.Kanji] = (*KanjiEngine)(nil)

func (e *KanjiEngine) MakeQuery(raw string, lang model.Language) (string, bool) {
	if raw == "" {
		return "", false
	}
	return raw, true
}

func (e *KanjiEngine) RetrieveFor(q string, raw string, lang model.Language) []Candidate[uint32] {
	counts := e.index.Candidates(q)
	out := make([]Candidate[uint32], 0, len(counts))
	for id, count := range counts {
		out = append(out, Candidate[uint32]{Term: count, Document: id})
	}
	return out
}

func (e *KanjiEngine) DocToOutput(id uint32) []*model.Kanji {
	k, ok := e.store.Kanji(rune(id))
	if !ok {
		return nil
	}
	return []*model.Kanji{k}
}

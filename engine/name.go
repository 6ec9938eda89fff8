package engine

import (
	"github.com/nihongokit/dictsearch/index/ngram"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// NameEngine retrieves names by ngram overlap over the one index it is given
// (the search core builds one instance over the kana/kanji readings and one
// over the romaji transcriptions), sharing the ngram index shape with the
// native word engine but over the name Resource Store collection.
type NameEngine struct {
	index *ngram.Index
	store *resource.Store
}

func NewNameEngine(index *ngram.Index, store *resource.Store) *NameEngine {
	return &NameEngine{index: index, store: store}
}

var _ Engine[string, uint32, *model.Name] = (*NameEngine)(nil)

func (e *NameEngine) MakeQuery(raw string, lang model.Language) (string, bool) {
	if raw == "" {
		return "", false
	}
	return raw, true
}

func (e *NameEngine) RetrieveFor(q string, raw string, lang model.Language) []Candidate[uint32] {
	counts := e.index.Candidates(q)
	out := make([]Candidate[uint32], 0, len(counts))
	for seq, count := range counts {
		out = append(out, Candidate[uint32]{Term: count, Document: seq})
	}
	return out
}

func (e *NameEngine) DocToOutput(seq uint32) []*model.Name {
	n, ok := e.store.Name(seq)
	if !ok {
		return nil
	}
	return []*model.Name{n}
}

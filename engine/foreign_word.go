package engine

import (
	"github.com/nihongokit/dictsearch/index/vector"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// ForeignWordEngine retrieves words by cosine similarity over the
// per-language sparse vector-space model. One instance is bound to a single
// user-language's ForeignIndex: the per-language index lookup is realized
// by constructing one engine per language up front (search.NewCore builds
// one per supported language) rather than a runtime lookup, since Go generics can't express "return the
// backend type D was drawn from" without naming it.
type ForeignWordEngine struct {
	index *vector.ForeignIndex
	store *resource.Store
}

func NewForeignWordEngine(index *vector.ForeignIndex, store *resource.Store) *ForeignWordEngine {
	return &ForeignWordEngine{index: index, store: store}
}

var _ Engine[vector.Sparse, uint32, *model.Word] = (*ForeignWordEngine)(nil)

func (e *ForeignWordEngine) MakeQuery(raw string, lang model.Language) (vector.Sparse, bool) {
	if lang == model.LanguageJapanese {
		return nil, false
	}
	qv := e.index.QueryVector(raw)
	if len(qv) == 0 {
		return nil, false
	}
	return qv, true
}

// RetrieveFor scans every document in the language's index and scores it
// by cosine similarity to q. The foreign vocabulary is small enough per
// language that a linear scan stays well within a request's CPU budget.
func (e *ForeignWordEngine) RetrieveFor(q vector.Sparse, raw string, lang model.Language) []Candidate[uint32] {
	docs := e.index.Documents()
	out := make([]Candidate[uint32], 0, len(docs))
	for seq, doc := range docs {
		sim := vector.Cosine(q, doc)
		if sim <= 0 {
			continue
		}
		out = append(out, Candidate[uint32]{Term: sim, Document: seq})
	}
	return out
}

func (e *ForeignWordEngine) DocToOutput(seq uint32) []*model.Word {
	w, ok := e.store.Word(seq)
	if !ok {
		return nil
	}
	return []*model.Word{w}
}

package engine

import (
	"github.com/nihongokit/dictsearch/index/ngram"
	"github.com/nihongokit/dictsearch/internal/textnorm"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// NativeWordEngine retrieves words by ngram overlap over Japanese readings.
// Its query shape is the kana-folded reading text; its
// document is a word sequence-id; its term is the per-document ngram
// overlap count, which the native-word relevance scorer (relevance.NativeWord)
// consumes as the base match strength.
type NativeWordEngine struct {
	index *ngram.Index
	store *resource.Store
}

func NewNativeWordEngine(index *ngram.Index, store *resource.Store) *NativeWordEngine {
	return &NativeWordEngine{index: index, store: store}
}

var _ Engine[string, uint32, *model.Word] = (*NativeWordEngine)(nil)

func (e *NativeWordEngine) MakeQuery(raw string, lang model.Language) (string, bool) {
	if lang != model.LanguageJapanese && lang != model.LanguageUndetected {
		return "", false
	}
	folded := textnorm.Kana(textnorm.FoldDigits(raw))
	if folded == "" {
		return "", false
	}
	return folded, true
}

func (e *NativeWordEngine) RetrieveFor(q string, raw string, lang model.Language) []Candidate[uint32] {
	counts := e.index.Candidates(q)
	out := make([]Candidate[uint32], 0, len(counts))
	for seq, count := range counts {
		out = append(out, Candidate[uint32]{Term: count, Document: seq})
	}
	return out
}

func (e *NativeWordEngine) DocToOutput(seq uint32) []*model.Word {
	w, ok := e.store.Word(seq)
	if !ok {
		return nil
	}
	return []*model.Word{w}
}

package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/nihongokit/dictsearch/index/kreading"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// KanjiReadingQuery is the parsed `KanjiReading{literal, reading}` form's
// retrieval shape.
type KanjiReadingQuery struct {
	Literal rune
	Reading string
}

// KanjiReadingEngine retrieves words whose reading for a literal matches a
// given reading string, via the k-reading index (e.g. "事 ジ").
type KanjiReadingEngine struct {
	index *kreading.Index
	store *resource.Store
}

func NewKanjiReadingEngine(index *kreading.Index, store *resource.Store) *KanjiReadingEngine {
	return &KanjiReadingEngine{index: index, store: store}
}

var _ Engine[KanjiReadingQuery, uint32, *model.Word] = (*KanjiReadingEngine)(nil)

// MakeQuery expects raw already split into exactly two whitespace-separated
// tokens (the form classifier in queryparse guarantees this before routing
// here); any other shape yields no query.
func (e *KanjiReadingEngine) MakeQuery(raw string, lang model.Language) (KanjiReadingQuery, bool) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return KanjiReadingQuery{}, false
	}
	if utf8.RuneCountInString(fields[0]) != 1 {
		return KanjiReadingQuery{}, false
	}
	literal, _ := utf8.DecodeRuneInString(fields[0])
	return KanjiReadingQuery{Literal: literal, Reading: fields[1]}, true
}

func (e *KanjiReadingEngine) RetrieveFor(q KanjiReadingQuery, raw string, lang model.Language) []Candidate[uint32] {
	seqs := e.index.Lookup(q.Literal, q.Reading)
	out := make([]Candidate[uint32], 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, Candidate[uint32]{Term: q.Reading, Document: seq})
	}
	return out
}

func (e *KanjiReadingEngine) DocToOutput(seq uint32) []*model.Word {
	w, ok := e.store.Word(seq)
	if !ok {
		return nil
	}
	return []*model.Word{w}
}

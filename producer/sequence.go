package producer

import (
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// SequenceRelevance is the fixed score a sequence-id lookup is pushed at:
// it is an exact, unambiguous match and always outranks fuzzy candidates
// from later producers.
const SequenceRelevance = 1_000_000.0

// SequenceWordProducer resolves a `seq:N` query directly against the
// Resource Store. It runs first in every word/name pipeline so an exact
// sequence-id match always wins ties via insertion order.
type SequenceWordProducer struct {
	Store *resource.Store
	Query *model.Query
}

func (p *SequenceWordProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Form.Kind == model.FormSequence
}

func (p *SequenceWordProducer) Produce(sink *executor.Sink) {
	w, ok := p.Store.Word(p.Query.Form.SequenceID)
	if !ok {
		return
	}
	sink.Push(w.SequenceID, w, SequenceRelevance)
}

func (p *SequenceWordProducer) Estimate() (searchhelp.Guess, bool) {
	if p.Query.Form.Kind != model.FormSequence {
		return searchhelp.Guess{}, false
	}
	if _, ok := p.Store.Word(p.Query.Form.SequenceID); ok {
		return searchhelp.Guess{Value: 1, Kind: searchhelp.Accurate}, true
	}
	return searchhelp.Guess{Value: 0, Kind: searchhelp.Accurate}, true
}

// SequenceNameProducer is the name-search analogue of SequenceWordProducer.
type SequenceNameProducer struct {
	Store *resource.Store
	Query *model.Query
}

func (p *SequenceNameProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Form.Kind == model.FormSequence
}

func (p *SequenceNameProducer) Produce(sink *executor.Sink) {
	n, ok := p.Store.Name(p.Query.Form.SequenceID)
	if !ok {
		return
	}
	sink.Push(n.SequenceID, n, SequenceRelevance)
}

func (p *SequenceNameProducer) Estimate() (searchhelp.Guess, bool) {
	if p.Query.Form.Kind != model.FormSequence {
		return searchhelp.Guess{}, false
	}
	if _, ok := p.Store.Name(p.Query.Form.SequenceID); ok {
		return searchhelp.Guess{Value: 1, Kind: searchhelp.Accurate}, true
	}
	return searchhelp.Guess{Value: 0, Kind: searchhelp.Accurate}, true
}

// SequenceSentenceProducer is the sentence-search analogue of
// SequenceWordProducer, resolving a `seq:N` query by sentence id.
type SequenceSentenceProducer struct {
	Store *resource.Store
	Query *model.Query
}

func (p *SequenceSentenceProducer) ShouldRun(alreadyFound int) bool {
	return p.Query.Form.Kind == model.FormSequence
}

func (p *SequenceSentenceProducer) Produce(sink *executor.Sink) {
	s, ok := p.Store.Sentence(p.Query.Form.SequenceID)
	if !ok {
		return
	}
	sink.Push(s.ID, s, SequenceRelevance)
}

func (p *SequenceSentenceProducer) Estimate() (searchhelp.Guess, bool) {
	if p.Query.Form.Kind != model.FormSequence {
		return searchhelp.Guess{}, false
	}
	if _, ok := p.Store.Sentence(p.Query.Form.SequenceID); ok {
		return searchhelp.Guess{Value: 1, Kind: searchhelp.Accurate}, true
	}
	return searchhelp.Guess{Value: 0, Kind: searchhelp.Accurate}, true
}

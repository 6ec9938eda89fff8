package producer

import (
	"strings"

	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// NewSentenceProducer builds a sentence-search producer over one text
// source (Japanese or a user-language translation), scored per
// relevance.Sentence's length-biased overlap. docText extracts the text a
// candidate sentence was indexed under, so the scorer can read its rune
// length without the engine needing to expose it.
func NewSentenceProducer(eng *engine.SentenceEngine, q *model.Query, userLanguage string, docText func(*model.Sentence) string) *EngineProducer[string, uint32, *model.Sentence] {
	queryLen := len([]rune(q.Raw))
	return &EngineProducer[string, uint32, *model.Sentence]{
		Engine: eng,
		Raw:    q.Raw,
		Lang:   q.Language,
		Score: func(s *model.Sentence, term any) float32 {
			overlap, _ := term.(int)
			docLen := len([]rune(docText(s)))
			return relevance.Sentence(float32(overlap), queryLen, docLen, s.HasTranslation(userLanguage))
		},
		Identity: func(id uint32) executor.Identity { return id },
	}
}

// TagOnlySentenceProducer surfaces sentences matching a JLPT or free-form
// tag filter when the query itself is empty: no text query, results come
// entirely from the tag filter.
type TagOnlySentenceProducer struct {
	Sentences []*model.Sentence
	Query     *model.Query
}

func (p *TagOnlySentenceProducer) ShouldRun(alreadyFound int) bool {
	if p.Query.Raw != "" {
		return false
	}
	if _, ok := p.Query.JLPTFilter(); ok {
		return true
	}
	return len(p.Query.Tags) > 0
}

func (p *TagOnlySentenceProducer) Produce(sink *executor.Sink) {
	jlpt, hasJLPT := p.Query.JLPTFilter()
	for i, s := range p.Sentences {
		if hasJLPT && (s.JLPT == nil || *s.JLPT != jlpt) {
			continue
		}
		if !p.tagsMatch(s) {
			continue
		}
		// Stable, arbitrary ordering: later tag-only results rank below
		// earlier ones so pagination stays deterministic.
		rel := float32(-i)
		if !sink.Push(s.ID, s, rel) {
			return
		}
	}
}

func (p *TagOnlySentenceProducer) tagsMatch(s *model.Sentence) bool {
	for _, t := range p.Query.Tags {
		if t.JLPT != nil || t.Target != nil {
			continue
		}
		if _, ok := s.Tags[strings.TrimPrefix(t.Text, "#")]; !ok {
			return false
		}
	}
	return true
}

func (p *TagOnlySentenceProducer) Estimate() (searchhelp.Guess, bool) {
	return searchhelp.Guess{}, false
}

package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/internal/textnorm"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/searchhelp"
	"github.com/nihongokit/dictsearch/tokenize"
)

// SentenceReaderProducer runs the query through the morphological analyzer
// and exposes two kinds of side-channel augmentation: a full morpheme
// breakdown for a multi-token phrase, or inflection info when the whole
// query is a single inflected verb/adjective form. Like NumberProducer, it
// never pushes into the sink.
type SentenceReaderProducer struct {
	Tokenizer tokenize.Tokenizer
	NativeIdx *engine.NativeWordEngine
	Raw       string
	Lang      model.Language

	Breakdown  *model.SentenceBreakdown
	Inflection *model.InflectionInfo
}

func (p *SentenceReaderProducer) ShouldRun(alreadyFound int) bool {
	if p.Lang != model.LanguageJapanese && p.Lang != model.LanguageUndetected {
		return false
	}
	return p.Raw != ""
}

func (p *SentenceReaderProducer) Produce(sink *executor.Sink) {
	morphs, err := p.Tokenizer.Tokenize(p.Raw)
	if err != nil || len(morphs) == 0 {
		return
	}

	if len(morphs) == 1 {
		m := morphs[0]
		if m.IsVerbOrAdjective() && m.Lexeme != "" && m.Lexeme != m.Surface {
			p.Inflection = &model.InflectionInfo{
				BaseForm:       m.Lexeme,
				InflectionType: m.InflectionType,
				InflectionForm: m.InflectionForm,
			}
		}
		return
	}

	tokens := make([]model.SentenceToken, 0, len(morphs))
	for _, m := range morphs {
		tok := model.SentenceToken{Surface: m.Surface, Lexeme: m.Lexeme, Reading: m.Reading}
		if seq, ok := p.resolveSequence(m.Lexeme); ok {
			tok.SequenceID = &seq
		}
		tokens = append(tokens, tok)
	}
	p.Breakdown = &model.SentenceBreakdown{Tokens: tokens}
}

// resolveSequence picks the best-overlapping native word for a morpheme
// lexeme, if any, so a sentence breakdown token can link back to a
// dictionary entry.
func (p *SentenceReaderProducer) resolveSequence(lexeme string) (uint32, bool) {
	if p.NativeIdx == nil || lexeme == "" {
		return 0, false
	}
	q, ok := p.NativeIdx.MakeQuery(textnorm.Kana(lexeme), model.LanguageJapanese)
	if !ok {
		return 0, false
	}
	var best uint32
	var bestOverlap int
	found := false
	for _, c := range p.NativeIdx.RetrieveFor(q, lexeme, model.LanguageJapanese) {
		overlap, _ := c.Term.(int)
		if !found || overlap > bestOverlap {
			best, bestOverlap, found = c.Document, overlap, true
		}
	}
	return best, found
}

func (p *SentenceReaderProducer) Estimate() (searchhelp.Guess, bool) {
	return searchhelp.Guess{}, false
}

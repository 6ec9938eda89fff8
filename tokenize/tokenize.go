// Package tokenize wraps the natural-language morphological analyzer
// consumed as a black-box tokenizer: it returns morphemes carrying lexeme
// and part-of-speech information, used by the sentence-reader producer and
// to attach inflection info to word results.
package tokenize

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Morpheme is one segment of a tokenized phrase.
type Morpheme struct {
	Surface        string
	Lexeme         string // dictionary base form, falls back to Surface
	PartOfSpeech   []string
	Reading        string
	Start          int
	End            int
	InflectionType string
	InflectionForm string
}

// Tokenizer is the black-box morphological analyzer contract the core
// depends on; building or training one is out of scope.
type Tokenizer interface {
	Tokenize(text string) ([]Morpheme, error)
}

// Kagome is a Tokenizer backed by github.com/ikawaha/kagome/v2 over the IPA
// dictionary (github.com/ikawaha/kagome-dict/ipa).
type Kagome struct {
	t *tokenizer.Tokenizer
}

// NewKagome constructs a Kagome tokenizer. This loads the IPA dictionary
// into memory, so callers should build one instance at startup and share it
// for the process lifetime.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{t: t}, nil
}

var _ Tokenizer = (*Kagome)(nil)

func (k *Kagome) Tokenize(text string) ([]Morpheme, error) {
	if text == "" {
		return nil, nil
	}
	toks := k.t.Tokenize(text)
	out := make([]Morpheme, 0, len(toks))
	for _, kt := range toks {
		lemma, ok := kt.BaseForm()
		if !ok || lemma == "" {
			lemma = kt.Surface
		}
		reading, _ := kt.Reading()
		infType, infForm := "", ""
		if features := kt.Features(); len(features) > 5 {
			infType = features[4]
			infForm = features[5]
		}
		out = append(out, Morpheme{
			Surface:        kt.Surface,
			Lexeme:         lemma,
			PartOfSpeech:   kt.POS(),
			Reading:        reading,
			Start:          kt.Start,
			End:            kt.End,
			InflectionType: infType,
			InflectionForm: infForm,
		})
	}
	return out, nil
}

// IsVerbOrAdjective reports whether a morpheme's leading part-of-speech tag
// marks it as an inflecting word (動詞 = verb, 形容詞 = i-adjective).
func (m Morpheme) IsVerbOrAdjective() bool {
	if len(m.PartOfSpeech) == 0 {
		return false
	}
	return strings.HasPrefix(m.PartOfSpeech[0], "動詞") || strings.HasPrefix(m.PartOfSpeech[0], "形容詞")
}

package producer

import (
	"strconv"
	"strings"

	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/internal/numeral"
	"github.com/nihongokit/dictsearch/internal/textnorm"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// NumberProducer recognizes a Japanese kanji-numeral query and formats it
// to its Arabic value as supplementary result data. It never pushes a
// candidate into the sink; the parsed value is exposed via Parsed for the
// search pipeline to attach to the response.
type NumberProducer struct {
	Raw    string
	Parsed int64
	Found  bool
}

// ShouldRun mirrors the original gating: run on any non-empty query that
// isn't already a plain (halfwidth-folded) Arabic number.
func (p *NumberProducer) ShouldRun(alreadyFound int) bool {
	raw := strings.TrimSpace(p.Raw)
	if raw == "" {
		return false
	}
	if _, err := strconv.Atoi(textnorm.FoldDigits(raw)); err == nil {
		return false
	}
	return true
}

func (p *NumberProducer) Produce(sink *executor.Sink) {
	v, ok := numeral.Parse(p.Raw)
	p.Parsed = v
	p.Found = ok
}

func (p *NumberProducer) Estimate() (searchhelp.Guess, bool) {
	return searchhelp.Guess{}, false
}

package producer

import (
	"regexp"
	"strings"

	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
)

// regexMetaChars are the characters whose presence marks a query as a
// regex pattern rather than plain text: the regex producer only runs when
// the query contains one of these metacharacters.
const regexMetaChars = `\^$.|?*+()[]{}`

func looksLikeRegex(raw string) bool {
	return strings.ContainsAny(raw, regexMetaChars)
}

// NewRegexProducer builds the regex-literal-query producer, scored per
// relevance.Regex. It only runs when the query contains a regex
// metacharacter.
func NewRegexProducer(eng *engine.RegexEngine, q *model.Query) *EngineProducer[*regexp.Regexp, uint32, *model.Word] {
	return &EngineProducer[*regexp.Regexp, uint32, *model.Word]{
		Engine: eng,
		Raw:    q.Raw,
		Lang:   q.Language,
		Score: func(w *model.Word, term any) float32 {
			isPrimary, _ := term.(bool)
			readingLen := len([]rune(w.PrimaryReading()))
			return relevance.Regex(w.Common, w.JLPT, readingLen, isPrimary)
		},
		Identity: func(seq uint32) executor.Identity { return seq },
		Gate: func(alreadyFound int) bool {
			return looksLikeRegex(q.Raw)
		},
	}
}

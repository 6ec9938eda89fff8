// Package queryparse implements the query-string parser: prefix stripping,
// quoted-term extraction, tag recognition, language classification, and
// form classification, producing an immutable model.Query.
package queryparse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nihongokit/dictsearch/apperror"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/lang"
	"github.com/nihongokit/dictsearch/model"
)

// knownLanguageCodes are the language prefixes the parser recognizes
// (e.g. "eng:", "ger:"), matching the gloss languages a Word's Sense can
// carry.
var knownLanguageCodes = map[string]bool{
	"eng": true, "ger": true, "rus": true, "spa": true,
	"swe": true, "fre": true, "dut": true, "hun": true, "slv": true,
}

var jlptTag = map[string]uint8{
	"#jlpt1": 1, "#jlpt2": 2, "#jlpt3": 3, "#jlpt4": 4, "#jlpt5": 5,
}

var targetTag = map[string]model.Target{
	"#word":      model.TargetWords,
	"#kanji":     model.TargetKanji,
	"#names":     model.TargetNames,
	"#sentences": model.TargetSentences,
}

// Options configures tunables of Parse, following the Options/withDefaults
// idiom used elsewhere in this repo: zero fields fall back to the package
// defaults.
type Options struct {
	// JapaneseRatioThreshold overrides lang.ClassifyOptions' script-ratio
	// cutoff for the language-classification step. Zero means "use the
	// lang package's own default" (lang.JapaneseScriptThreshold).
	JapaneseRatioThreshold float64
}

func (o Options) withDefaults() Options {
	return o
}

// Parse builds a Query from a raw input string. target selects which
// UserSettings page size applies; page is clamped to [1,100].
func Parse(raw string, target model.Target, settings model.UserSettings, page int) (*model.Query, error) {
	return ParseWithOptions(raw, target, settings, page, Options{})
}

// ParseWithOptions is Parse parameterized by an Options.
func ParseWithOptions(raw string, target model.Target, settings model.UserSettings, page int, opts Options) (*model.Query, error) {
	opts = opts.withDefaults()
	q := &model.Query{
		Original: raw,
		Settings: settings,
		Page:     executor.ClampPage(page),
		PerPage:  perPageFor(target, settings),
	}

	body := raw

	// Step 1: prefix stripping.
	if stripped, id, isSeq, err := stripSequencePrefix(body); err != nil {
		return nil, err
	} else if isSeq {
		q.Form = model.Form{Kind: model.FormSequence, SequenceID: id}
		body = stripped
	} else if stripped, code, ok := stripLanguagePrefix(body); ok {
		q.LangOverwrite = &code
		body = stripped
	}

	// Steps 2-3: quoted terms and tags, via the token grammar.
	plain, required, tags, err := tokenizeBody(body)
	if err != nil {
		// Malformed input still yields a best-effort parse and never panics
		// on arbitrary text: fall back to treating the body as one plain
		// word run.
		plain, required, tags = body, nil, nil
	}
	q.RequiredTerms = required
	q.Tags = tags
	q.Raw = lang.NormalizeWhitespace(plain)

	// Step 4: language classification.
	if q.LangOverwrite != nil {
		q.Language = model.LanguageForeign
	} else {
		q.Language = lang.ClassifyWithOptions(q.Raw, lang.ClassifyOptions{
			JapaneseRatioThreshold: opts.JapaneseRatioThreshold,
		})
	}

	// Step 5: form classification (skipped when Sequence already set by
	// prefix stripping).
	if q.Form.Kind != model.FormSequence {
		q.Form = classifyForm(q.Raw)
	}

	return q, nil
}

func perPageFor(target model.Target, s model.UserSettings) int {
	if target == model.TargetKanji {
		return s.KanjiPerPage
	}
	return s.WordsPerPage
}

// stripSequencePrefix recognizes a leading "seq:" and parses the trailing
// unsigned integer. A malformed seq: prefix is a hard parse failure.
func stripSequencePrefix(s string) (rest string, id uint32, isSeq bool, err error) {
	trimmed := strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(trimmed, "seq:") {
		return s, 0, false, nil
	}
	digits := strings.TrimSpace(strings.TrimPrefix(trimmed, "seq:"))
	fields := strings.Fields(digits)
	if len(fields) == 0 {
		return "", 0, false, apperror.New(apperror.BadRequest, "seq: prefix missing a sequence id")
	}
	n, convErr := strconv.ParseUint(fields[0], 10, 32)
	if convErr != nil {
		return "", 0, false, apperror.Wrap(apperror.BadRequest, "seq: prefix is not a valid sequence id", convErr)
	}
	return "", uint32(n), true, nil
}

// stripLanguagePrefix recognizes a leading "xyz:" where xyz is a known
// 3-letter language code.
func stripLanguagePrefix(s string) (rest string, code string, ok bool) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 || colon > 3 {
		return s, "", false
	}
	candidate := strings.ToLower(strings.TrimSpace(s[:colon]))
	if candidate == "" || strings.ContainsAny(candidate, " \t") || !knownLanguageCodes[candidate] {
		return s, "", false
	}
	return strings.TrimLeft(s[colon+1:], " \t"), candidate, true
}

// tokenizeBody runs the quoted-term/tag grammar over body, returning the
// remaining plain-word text (quotes removed, tags stripped), the
// lower-cased quoted contents, and the recognized/free tags.
func tokenizeBody(body string) (plain string, required []string, tags []model.Tag, err error) {
	stream, tErr := tokenize(body)
	if tErr != nil {
		return "", nil, nil, tErr
	}

	var words []string
	for _, item := range stream.Items {
		switch {
		case item.Quoted != nil:
			content := strings.Trim(*item.Quoted, `"`)
			required = append(required, strings.ToLower(content))
			words = append(words, content)
		case item.Tag != nil:
			tags = append(tags, classifyTag(*item.Tag))
		case item.Word != nil:
			words = append(words, *item.Word)
		}
	}
	return strings.Join(words, " "), required, tags, nil
}

func classifyTag(raw string) model.Tag {
	lower := strings.ToLower(raw)
	if jlpt, ok := jlptTag[lower]; ok {
		return model.Tag{Text: raw, JLPT: &jlpt, Hidden: true}
	}
	if target, ok := targetTag[lower]; ok {
		t := target
		return model.Tag{Text: raw, Target: &t, Hidden: true}
	}
	return model.Tag{Text: raw}
}

// classifyForm determines the parsed query's form shape.
func classifyForm(plain string) model.Form {
	if plain == "" {
		return model.Form{Kind: model.FormTagOnly}
	}

	fields := strings.Fields(plain)
	if len(fields) == 2 && utf8.RuneCountInString(fields[0]) == 1 {
		r, _ := utf8.DecodeRuneInString(fields[0])
		if lang.ContainsJapaneseScript(fields[0]) {
			return model.Form{Kind: model.FormKanjiReading, KanjiLiteral: r, KanjiReading: fields[1]}
		}
	}

	if len(fields) == 1 {
		return model.Form{Kind: model.FormSingleWord}
	}
	return model.Form{Kind: model.FormMultiWords}
}

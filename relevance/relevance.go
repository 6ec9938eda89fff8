// Package relevance implements the per-domain scoring functions used to
// rank candidates before they enter the executor's priority sink. Every
// scorer is a pure function of (candidate, index-term, query) — none of
// them touch the Resource Store or mutate shared state.
package relevance

import (
	"strings"

	"github.com/nihongokit/dictsearch/index/vector"
	"github.com/nihongokit/dictsearch/model"
)

// Scoring weight defaults.
const (
	ExactReadingMultiplier = 1.0
	KanaNormMultiplier     = 0.9
	SubstringMultiplier    = 0.7
	WeakNgramMultiplier    = 0.5

	CommonWordBoost    = 0.1
	JLPTLevelBoostStep = 0.05
	ReadingLengthCost  = 0.01

	KanjiReadingBase        = 100.0
	KanjiReadingCommonBoost = 100.0
	KanjiReadingJLPTStep    = 10.0

	RegexBase           = 100.0
	RegexCommonBoost    = 30.0
	RegexJLPTBase       = 10.0
	RegexJLPTStep       = 2.0
	RegexLengthCost     = 3.0
	RegexPrimaryBoost   = 20.0

	NameDiceWeight = 0.1

	// ForeignLanguageMismatchPenalty halves a foreign-word score when the
	// sense's gloss language differs from the user's configured language.
	ForeignLanguageMismatchPenalty = 0.5

	SentenceLengthBias            = 100.0
	SentenceMissingTranslationMul = 0.99
)

// Weights bundles the scorers' tunable constants into a single
// zero-value-defaulting config, following the Options/withDefaults idiom
// used elsewhere in this repo: a caller builds a partial Weights and
// withDefaults fills whatever was left at zero from the package defaults
// above, rather than every scorer taking a long bare-parameter list of
// individual multipliers.
type Weights struct {
	ExactReadingMultiplier float32
	KanaNormMultiplier     float32
	SubstringMultiplier    float32
	WeakNgramMultiplier    float32

	CommonWordBoost    float32
	JLPTLevelBoostStep float32
	ReadingLengthCost  float32

	KanjiReadingBase        float32
	KanjiReadingCommonBoost float32
	KanjiReadingJLPTStep    float32

	RegexBase         float32
	RegexCommonBoost  float32
	RegexJLPTBase     float32
	RegexJLPTStep     float32
	RegexLengthCost   float32
	RegexPrimaryBoost float32

	NameDiceWeight float32

	ForeignLanguageMismatchPenalty float32

	SentenceLengthBias            float32
	SentenceMissingTranslationMul float32
}

// DefaultWeights returns a Weights already filled from the package's named
// tunables, for callers that want the ground-truth defaults without going
// through withDefaults on a zero Weights.
func DefaultWeights() Weights {
	return Weights{}.withDefaults()
}

func (w Weights) withDefaults() Weights {
	out := w
	if out.ExactReadingMultiplier == 0 {
		out.ExactReadingMultiplier = ExactReadingMultiplier
	}
	if out.KanaNormMultiplier == 0 {
		out.KanaNormMultiplier = KanaNormMultiplier
	}
	if out.SubstringMultiplier == 0 {
		out.SubstringMultiplier = SubstringMultiplier
	}
	if out.WeakNgramMultiplier == 0 {
		out.WeakNgramMultiplier = WeakNgramMultiplier
	}
	if out.CommonWordBoost == 0 {
		out.CommonWordBoost = CommonWordBoost
	}
	if out.JLPTLevelBoostStep == 0 {
		out.JLPTLevelBoostStep = JLPTLevelBoostStep
	}
	if out.ReadingLengthCost == 0 {
		out.ReadingLengthCost = ReadingLengthCost
	}
	if out.KanjiReadingBase == 0 {
		out.KanjiReadingBase = KanjiReadingBase
	}
	if out.KanjiReadingCommonBoost == 0 {
		out.KanjiReadingCommonBoost = KanjiReadingCommonBoost
	}
	if out.KanjiReadingJLPTStep == 0 {
		out.KanjiReadingJLPTStep = KanjiReadingJLPTStep
	}
	if out.RegexBase == 0 {
		out.RegexBase = RegexBase
	}
	if out.RegexCommonBoost == 0 {
		out.RegexCommonBoost = RegexCommonBoost
	}
	if out.RegexJLPTBase == 0 {
		out.RegexJLPTBase = RegexJLPTBase
	}
	if out.RegexJLPTStep == 0 {
		out.RegexJLPTStep = RegexJLPTStep
	}
	if out.RegexLengthCost == 0 {
		out.RegexLengthCost = RegexLengthCost
	}
	if out.RegexPrimaryBoost == 0 {
		out.RegexPrimaryBoost = RegexPrimaryBoost
	}
	if out.NameDiceWeight == 0 {
		out.NameDiceWeight = NameDiceWeight
	}
	if out.ForeignLanguageMismatchPenalty == 0 {
		out.ForeignLanguageMismatchPenalty = ForeignLanguageMismatchPenalty
	}
	if out.SentenceLengthBias == 0 {
		out.SentenceLengthBias = SentenceLengthBias
	}
	if out.SentenceMissingTranslationMul == 0 {
		out.SentenceMissingTranslationMul = SentenceMissingTranslationMul
	}
	return out
}

// MatchKind classifies how a native-word candidate matched the query, used
// to pick the base multiplier.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchKanaNormalized
	MatchSubstring
	MatchWeakNgram
)

func multiplierFor(k MatchKind, w Weights) float32 {
	switch k {
	case MatchExact:
		return w.ExactReadingMultiplier
	case MatchKanaNormalized:
		return w.KanaNormMultiplier
	case MatchSubstring:
		return w.SubstringMultiplier
	default:
		return w.WeakNgramMultiplier
	}
}

// NativeWord scores a native-word candidate: base * multiplier, plus
// common/JLPT boosts, minus a length penalty, using the package's default
// Weights.
func NativeWord(w *model.Word, ngramOverlap float32, kind MatchKind) float32 {
	return NativeWordWithWeights(w, ngramOverlap, kind, Weights{})
}

// NativeWordWithWeights is NativeWord parameterized by a partial Weights;
// zero fields fall back to the package defaults via withDefaults.
func NativeWordWithWeights(w *model.Word, ngramOverlap float32, kind MatchKind, weights Weights) float32 {
	weights = weights.withDefaults()
	score := ngramOverlap * multiplierFor(kind, weights)
	if w.Common {
		score += weights.CommonWordBoost
	}
	if w.JLPT != nil {
		score += weights.JLPTLevelBoostStep * float32(*w.JLPT)
	}
	readingLen := float32(len([]rune(w.PrimaryReading())))
	score -= weights.ReadingLengthCost * readingLen
	return score
}

// ForeignWord scores a foreign-language (gloss) candidate: a weighted Dice
// coefficient over termsets, boosted for an exact gloss match and
// downweighted when the sense targets a different language than the user's.
func ForeignWord(querySet, docSet map[int]struct{}, rawQuery string, glosses []string, docLanguage, userLanguage string) float32 {
	return ForeignWordWithWeights(querySet, docSet, rawQuery, glosses, docLanguage, userLanguage, Weights{})
}

// ForeignWordWithWeights is ForeignWord parameterized by a partial Weights.
func ForeignWordWithWeights(querySet, docSet map[int]struct{}, rawQuery string, glosses []string, docLanguage, userLanguage string, weights Weights) float32 {
	weights = weights.withDefaults()
	score := vector.Dice(querySet, docSet)
	for _, g := range glosses {
		if strings.EqualFold(strings.TrimSpace(g), strings.TrimSpace(rawQuery)) {
			score += weights.CommonWordBoost
			break
		}
	}
	if docLanguage != "" && docLanguage != userLanguage {
		score *= weights.ForeignLanguageMismatchPenalty
	}
	return score
}

// KanjiReading scores a kanji-reading hit: 100 base, +100 if common,
// +10*JLPT independently of the common boost, else a length falloff when
// neither applies.
func KanjiReading(common bool, jlpt *uint8, readingLength int) float32 {
	return KanjiReadingWithWeights(common, jlpt, readingLength, Weights{})
}

// KanjiReadingWithWeights is KanjiReading parameterized by a partial Weights.
func KanjiReadingWithWeights(common bool, jlpt *uint8, readingLength int, weights Weights) float32 {
	weights = weights.withDefaults()
	var boosted bool
	score := weights.KanjiReadingBase
	if common {
		score += weights.KanjiReadingCommonBoost
		boosted = true
	}
	if jlpt != nil {
		score += weights.KanjiReadingJLPTStep * float32(*jlpt)
		boosted = true
	}
	if !boosted {
		falloff := weights.KanjiReadingBase - 2*float32(readingLength)
		if falloff < 0 {
			falloff = 0
		}
		score = falloff
	}
	return score
}

// Regex scores a regex-engine hit.
func Regex(common bool, jlpt *uint8, readingLength int, isPrimaryReading bool) float32 {
	return RegexWithWeights(common, jlpt, readingLength, isPrimaryReading, Weights{})
}

// RegexWithWeights is Regex parameterized by a partial Weights.
func RegexWithWeights(common bool, jlpt *uint8, readingLength int, isPrimaryReading bool, weights Weights) float32 {
	weights = weights.withDefaults()
	score := weights.RegexBase
	if common {
		score += weights.RegexCommonBoost
	}
	if jlpt != nil {
		score += weights.RegexJLPTBase + weights.RegexJLPTStep*float32(*jlpt)
	}
	score -= weights.RegexLengthCost * float32(readingLength)
	if isPrimaryReading {
		score += weights.RegexPrimaryBoost
	}
	return score
}

// Name scores a name candidate via weighted Dice over ngram termsets, using
// the package's default Weights.
func Name[T comparable](querySet, docSet map[T]struct{}) float32 {
	return NameWithWeights(querySet, docSet, Weights{})
}

// NameWithWeights is Name parameterized by a partial Weights.
func NameWithWeights[T comparable](querySet, docSet map[T]struct{}, weights Weights) float32 {
	weights = weights.withDefaults()
	if len(querySet) == 0 || len(docSet) == 0 {
		return 0
	}
	var shared int
	for t := range querySet {
		if _, ok := docSet[t]; ok {
			shared++
		}
	}
	denom := float32(len(querySet)+len(docSet)) + weights.NameDiceWeight
	return 2 * float32(shared) / denom
}

// KanjiMeaning scores a kanji-by-meaning candidate: ngram overlap over the
// meaning text, boosted for common kanji and higher JLPT levels the same
// way KanjiReading is.
func KanjiMeaning(overlap int, k *model.Kanji) float32 {
	return KanjiMeaningWithWeights(overlap, k, Weights{})
}

// KanjiMeaningWithWeights is KanjiMeaning parameterized by a partial Weights.
func KanjiMeaningWithWeights(overlap int, k *model.Kanji, weights Weights) float32 {
	weights = weights.withDefaults()
	score := float32(overlap)
	if k.IsCommon() {
		score += weights.CommonWordBoost
	}
	if k.JLPT != nil {
		score += weights.JLPTLevelBoostStep * float32(*k.JLPT)
	}
	return score
}

// Sentence scores a sentence candidate with length-biased cosine-like
// similarity: scalar(q,v) / ((|q| * W + |v|) / (W+1)), downweighted when no
// translation exists for the user's language.
func Sentence(scalar float32, queryLen, docLen int, hasUserTranslation bool) float32 {
	return SentenceWithWeights(scalar, queryLen, docLen, hasUserTranslation, Weights{})
}

// SentenceWithWeights is Sentence parameterized by a partial Weights.
func SentenceWithWeights(scalar float32, queryLen, docLen int, hasUserTranslation bool, weights Weights) float32 {
	weights = weights.withDefaults()
	w := weights.SentenceLengthBias
	denom := (float32(queryLen)*w + float32(docLen)) / (w + 1)
	if denom == 0 {
		return 0
	}
	score := scalar / denom
	if !hasUserTranslation {
		score *= weights.SentenceMissingTranslationMul
	}
	return score
}

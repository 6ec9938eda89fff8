package searchhelp

import "github.com/nihongokit/dictsearch/model"

// TargetEstimator gives a rough, index-only hit-count estimate for one
// search target, without running a full search for it.
type TargetEstimator struct {
	Target   model.Target
	Estimate func() (Guess, bool)
}

// LanguageEstimator gives a rough estimate of how many foreign-word hits a
// query would produce in a given user-language.
type LanguageEstimator struct {
	Language string
	Estimate func() (Guess, bool)
}

// Help is the search-help block attached to a zero-result response:
// estimated counts for targets other than the one searched, and the
// languages where the query would have found foreign-word matches.
type Help struct {
	OtherTargets []TargetGuess
	Languages    []string
}

// TargetGuess pairs a target with its estimated hit count.
type TargetGuess struct {
	Target model.Target
	Guess  Guess
}

// Build runs every estimator and assembles the search-help block, omitting
// any target/language whose guess is not Positive. Returns a nil *Help
// when nothing estimated positively, so callers can omit the block
// entirely.
func Build(targets []TargetEstimator, languages []LanguageEstimator) *Help {
	var h Help

	for _, te := range targets {
		g, ok := te.Estimate()
		if !ok || !g.Positive() {
			continue
		}
		h.OtherTargets = append(h.OtherTargets, TargetGuess{Target: te.Target, Guess: g})
	}

	for _, le := range languages {
		g, ok := le.Estimate()
		if !ok || !g.Positive() {
			continue
		}
		h.Languages = append(h.Languages, le.Language)
	}

	if len(h.OtherTargets) == 0 && len(h.Languages) == 0 {
		return nil
	}
	return &h
}

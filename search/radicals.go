package search

import "github.com/nihongokit/dictsearch/model"

// KanjiByRadicals implements the radical-search endpoint: every kanji
// whose IDS decomposition contains all of radicals, grouped by stroke
// count, plus the other radicals those matches also decompose into
// (grouped by stroke count) so a caller can narrow the search further.
func (c *Core) KanjiByRadicals(radicals []rune) model.RadicalSearchResult {
	want := make(map[rune]bool, len(radicals))
	for _, r := range radicals {
		want[r] = true
	}

	result := model.RadicalSearchResult{
		Kanji:            make(map[uint8][]rune),
		PossibleRadicals: make(map[uint8][]rune),
	}
	if len(want) == 0 {
		return result
	}

	possible := make(map[rune]bool)
	for lit, k := range c.Store.KanjiAll() {
		if !hasAllRadicals(k, want) {
			continue
		}
		result.Kanji[k.StrokeCount] = append(result.Kanji[k.StrokeCount], lit)

		for _, part := range k.RadicalParts {
			if want[part] || possible[part] {
				continue
			}
			possible[part] = true
		}
	}

	for part := range possible {
		r, ok := c.Store.Radical(part)
		if !ok {
			continue
		}
		result.PossibleRadicals[r.StrokeCount] = append(result.PossibleRadicals[r.StrokeCount], part)
	}

	return result
}

func hasAllRadicals(k *model.Kanji, want map[rune]bool) bool {
	have := make(map[rune]bool, len(k.RadicalParts))
	for _, r := range k.RadicalParts {
		have[r] = true
	}
	for r := range want {
		if !have[r] {
			return false
		}
	}
	return true
}

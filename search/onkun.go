package search

import (
	"strings"

	"github.com/nihongokit/dictsearch/internal/textnorm"
	"github.com/nihongokit/dictsearch/model"
)

// classifyOnKun buckets the words a kanji literal appears in into its
// on-reading and kun-reading compounds, by comparing
// each word's kana reading against the kanji's on/kun reading lists. A
// kun-yomi entry may carry an okurigana suffix after a dot (e.g. "うみ.べ"),
// so only the stem before the dot is compared.
func classifyOnKun(words []*model.Word, k *model.Kanji) (on, kun []*model.Word) {
	onSet := make(map[string]struct{}, len(k.OnReadings))
	for _, r := range k.OnReadings {
		onSet[textnorm.Kana(r)] = struct{}{}
	}
	kunSet := make(map[string]struct{}, len(k.KunReadings))
	for _, r := range k.KunReadings {
		stem, _, _ := strings.Cut(r, ".")
		kunSet[textnorm.Kana(stem)] = struct{}{}
	}

	for _, w := range words {
		kana := textnorm.Kana(w.Reading.Kana)
		switch {
		case containsAny(kana, onSet):
			on = append(on, w)
		case containsAny(kana, kunSet):
			kun = append(kun, w)
		default:
			kun = append(kun, w)
		}
	}
	return on, kun
}

func containsAny(s string, prefixes map[string]struct{}) bool {
	for p := range prefixes {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}

package vector

import "math"

// PhraseWeight is the weight assigned to the full query phrase's term-id
// when building a query vector: the full phrase id at weight 1.0 plus each
// whitespace-split token at weight 0.001.
const PhraseWeight = 1.0

// TokenWeight is the weight assigned to each whitespace-split query token's
// term-id.
const TokenWeight = 0.001

// SmallTermBias nudges the Dice coefficient used by the foreign-word and
// name relevance scorers.
const SmallTermBias = 0.1

// Sparse is a sparse vector over term-ids, as used by the foreign-language
// vector-space index: only nonzero weights are stored.
type Sparse map[int]float32

// Add accumulates weight for termID, summing if the term is already present.
func (s Sparse) Add(termID int, weight float32) {
	s[termID] += weight
}

// Cosine computes cosine similarity between two sparse vectors.
func Cosine(a, b Sparse) float32 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	var dot float32
	for term, w := range small {
		if ow, ok := large[term]; ok {
			dot += w * ow
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v Sparse) float32 {
	var sum float64
	for _, w := range v {
		sum += float64(w) * float64(w)
	}
	if sum == 0 {
		return 0
	}
	return float32(math.Sqrt(sum))
}

// Dice computes the weighted Dice coefficient between the query termset
// and the indexed document termset, with a small-term bias.
func Dice(query, doc map[int]struct{}) float32 {
	if len(query) == 0 || len(doc) == 0 {
		return 0
	}
	var shared int
	for t := range query {
		if _, ok := doc[t]; ok {
			shared++
		}
	}
	denom := float32(len(query)+len(doc)) + SmallTermBias
	return 2 * float32(shared) / denom
}

// Package regexidx implements the regex candidate-narrowing index: for each
// character appearing in any word's reading, the set of sequence-ids
// containing that character. A regex query extracts its
// literal character class, intersects the per-character sets, then the
// caller runs the compiled regex against each candidate's readings.
package regexidx

import (
	"regexp/syntax"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

type Index struct {
	byChar map[rune]mapset.Set[uint32]
}

func New() *Index {
	return &Index{byChar: make(map[rune]mapset.Set[uint32])}
}

// Add indexes seq under every distinct rune in reading.
func (idx *Index) Add(reading string, seq uint32) {
	seen := make(map[rune]struct{})
	for _, r := range reading {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		set, ok := idx.byChar[r]
		if !ok {
			set = mapset.NewThreadUnsafeSet[uint32]()
			idx.byChar[r] = set
		}
		set.Add(seq)
	}
}

// LiteralClass extracts the set of literal runes a regex pattern names,
// including every rune of a character class. Metacharacters that don't
// reduce to a literal set (e.g. `.`, anchors) contribute no characters; when
// nothing literal remains (e.g. `.*`) or a class is too wide, ok is false and
// the caller falls back to a full scan.
func LiteralClass(pattern string) ([]rune, bool) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, false
	}
	re = re.Simplify()
	set := make(map[rune]struct{})
	ok := collectLiterals(re, set)
	if !ok || len(set) == 0 {
		return nil, false
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, true
}

// collectLiterals walks the regex syntax tree, collecting every literal rune
// and every rune covered by a character class. Anchors, `.` and empty
// matches contribute nothing. It returns false for a character class wider
// than 64 runes or an unhandled construct, so the caller falls back to
// scanning every document.
func collectLiterals(re *syntax.Regexp, set map[rune]struct{}) bool {
	switch re.Op {
	case syntax.OpLiteral:
		for _, r := range re.Rune {
			set[r] = struct{}{}
		}
		return true
	case syntax.OpCharClass:
		for i := 0; i+1 < len(re.Rune); i += 2 {
			lo, hi := re.Rune[i], re.Rune[i+1]
			if hi-lo > 64 {
				// Class too wide to be a useful narrowing filter.
				return false
			}
			for r := lo; r <= hi; r++ {
				set[r] = struct{}{}
			}
		}
		return true
	case syntax.OpConcat, syntax.OpAlternate, syntax.OpCapture, syntax.OpPlus, syntax.OpStar, syntax.OpQuest, syntax.OpRepeat:
		ok := true
		for _, sub := range re.Sub {
			if !collectLiterals(sub, set) {
				ok = false
			}
		}
		return ok
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL, syntax.OpEmptyMatch, syntax.OpBeginText, syntax.OpEndText, syntax.OpBeginLine, syntax.OpEndLine, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true
	default:
		return false
	}
}

// Candidates intersects the per-character posting sets for every rune in
// chars: a word missing any required character is never evaluated against
// the compiled regex.
func (idx *Index) Candidates(chars []rune) []uint32 {
	if len(chars) == 0 {
		return nil
	}
	var result mapset.Set[uint32]
	for _, c := range chars {
		set, ok := idx.byChar[c]
		if !ok {
			return nil
		}
		if result == nil {
			result = set.Clone()
			continue
		}
		result = result.Intersect(set)
		if result.Cardinality() == 0 {
			return nil
		}
	}
	if result == nil {
		return nil
	}
	out := result.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

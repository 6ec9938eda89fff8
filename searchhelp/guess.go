// Package searchhelp builds the zero-result search-help block: when the
// primary target returns nothing, it estimates counts for the other
// targets and lists languages the query would have matched.
package searchhelp

// Kind classifies how precise a Guess's value is.
type Kind int

const (
	Undefined Kind = iota
	Accurate
	MoreThan
	LessThan
)

// Guess is a (value, kind) pair a producer's Estimate returns: a fast,
// index-only count estimate used to decide whether a target is worth
// suggesting when the primary search came back empty.
type Guess struct {
	Value uint32
	Kind  Kind
}

// Positive reports whether a Guess indicates at least one match.
func (g Guess) Positive() bool {
	switch g.Kind {
	case Accurate, MoreThan:
		return g.Value > 0
	case LessThan:
		return g.Value > 1
	default:
		return false
	}
}

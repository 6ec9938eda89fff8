package model

// WordPair is one suggestion-completion result: a primary reading plus an
// optional secondary reading shown alongside it (e.g. kanji spelling next
// to its kana reading).
type WordPair struct {
	Primary   string
	Secondary *string
}

// Tree is a kanji IDS decomposition node.
type Tree struct {
	Name     string
	Children []Tree
}

// RadicalSearchResult is kanji-by-radicals's response shape: kanji matching
// every selected radical, grouped by stroke count, plus the other radicals
// appearing in those matches that could further narrow the search.
type RadicalSearchResult struct {
	Kanji            map[uint8][]rune
	PossibleRadicals map[uint8][]rune
}

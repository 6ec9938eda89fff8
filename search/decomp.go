package search

import "github.com/nihongokit/dictsearch/model"

// DecompTree implements kanji IDS decomposition: a bounded-depth DFS
// over a kanji's radical parts, stopping at characters that are themselves
// base radicals. When full is false, only one level of children is
// expanded; when true, the DFS recurses to the stop-set on every branch.
func (c *Core) DecompTree(literal rune, full bool) (model.Tree, bool) {
	k, ok := c.Store.Kanji(literal)
	if !ok {
		return model.Tree{}, false
	}
	return c.buildDecompNode(k, full, true), true
}

func (c *Core) buildDecompNode(k *model.Kanji, full, topLevel bool) model.Tree {
	out := model.Tree{Name: string(k.Literal)}

	if _, isBaseRadical := c.Store.Radicals()[k.Literal]; isBaseRadical && !topLevel {
		return out
	}
	if len(k.RadicalParts) == 0 || (len(k.RadicalParts) == 1 && k.RadicalParts[0] == k.Literal) {
		return out
	}

	visited := make(map[rune]bool, len(k.RadicalParts))
	for _, r := range k.RadicalParts {
		if visited[r] {
			continue
		}
		visited[r] = true

		child := model.Tree{Name: string(r)}
		if full {
			if rk, ok := c.Store.Kanji(r); ok {
				child = c.buildDecompNode(rk, full, false)
			}
		}
		out.Children = append(out.Children, child)
	}
	return out
}

package queryparse

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// tokenStream splits a raw query into quoted substrings, hashtags, and bare
// words while preserving order (quoted-term extraction, tag recognition),
// using participle to build a small grammar instead of a hand-rolled
// scanner.
var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Tag", Pattern: `#[^\s"]+`},
	{Name: "Word", Pattern: `[^\s"]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

type tokenItem struct {
	Quoted *string `parser:"  @String"`
	Tag    *string `parser:"| @Tag"`
	Word   *string `parser:"| @Word"`
}

type tokenStream struct {
	Items []*tokenItem `parser:"@@*"`
}

var tokenParser = participle.MustBuild[tokenStream](participle.Lexer(tokenLexer))

func tokenize(raw string) (*tokenStream, error) {
	return tokenParser.ParseString("", raw)
}

// Package valuelist implements the comma-separated list tokenizing step
// used by the "comma separated list" and "int pair" attribute coercers.
// It is grounded on the source library's own nested grammar for this
// exact job (detail::string_list_grammar in attributes.hpp): a small,
// self-contained sub-grammar separate from the main WML grammar, which is
// why this module reaches for a parser-combinator library here rather
// than hand-writing it — the main WML grammar stays hand-written
// recursive descent, but this one narrow, self-contained concern is
// exactly the shape participle is built for.
package valuelist

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var listLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Elem", Pattern: `[^,]+`},
})

type list struct {
	Items []string `parser:"@Elem (\",\" @Elem)*"`
}

var listParser = participle.MustBuild[list](
	participle.Lexer(listLexer),
	participle.Elide("Whitespace"),
)

// Parse splits s on commas, trimming surrounding whitespace from each
// element. An empty or whitespace-only s parses to an empty, non-nil
// list. A trailing comma (nothing following it) is a parse error, since
// the grammar requires an element after every comma.
func Parse(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{}, nil
	}
	l, err := listParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	items := make([]string, len(l.Items))
	for i, e := range l.Items {
		items[i] = strings.TrimSpace(e)
	}
	return items, nil
}

package pre

import "github.com/alecthomas/participle/v2/lexer"

// preLexer tokenizes a PRE. Outside a bracketed identifier, a run of
// whitespace is skipped and every metacharacter gets its own token type so
// that a bare Symbol can never accidentally swallow one; inside a
// bracketed identifier (entered on '[', left on ']') everything up to the
// closing bracket is a single Ident token, spaces and all.
var preLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "LBracket", Pattern: `\[`, Action: lexer.Push("Class")},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Union", Pattern: `\|`},
		{Name: "Shuffle", Pattern: `&`},
		{Name: "Symbol", Pattern: `.`},
	},
	"Class": {
		{Name: "RBracket", Pattern: `\]`, Action: lexer.Pop()},
		{Name: "Ident", Pattern: `[^\]]+`},
	},
})

package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var MiniLangLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*`, nil},

		// Keywords and Identifiers (keywords are matched by literal value)
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Integer literals
		{"Integer", `[0-9]+`, nil},

		// Operators (two-character comparators must come first)
		{"Operator", `(==|!=|<=|>=|[-+*/<>=])`, nil},

		// Punctuation
		{"Punct", `[(){};]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

// Tokenize runs the lexer alone, for token-stream display and tests.
func Tokenize(path, source string) ([]lexer.Token, error) {
	lex, err := MiniLangLexer.Lex(path, strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(lex)
}

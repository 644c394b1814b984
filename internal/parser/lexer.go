package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits one level line into tokens. Key must come before Word so
// "pos=" is read as a parameter name and not as a bare value.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Key", Pattern: `[A-Za-z_][\w\[\]]*=`},
	{Name: "Word", Pattern: `[^\s="']+`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

// Build creates the line parser from the struct tags in `ast.go`
func Build() *participle.Parser[LineAST] {
	return participle.MustBuild[LineAST](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}

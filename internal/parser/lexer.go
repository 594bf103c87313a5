package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits a command line into whitespace separated words. Commands are
// matched on exact words later, so the lexer does not know any keywords.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Line is a raw command line: a verb followed by its arguments.
type Line struct {
	Words []string `parser:"@Word*"`
}

// Build creates the line parser.
func Build() *participle.Parser[Line] {
	return participle.MustBuild[Line](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}

var lineParser = Build()

// Tokenize returns the words of input. Blank input yields no tokens.
func Tokenize(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	line, err := lineParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %q: %w", input, err)
	}
	return line.Words, nil
}

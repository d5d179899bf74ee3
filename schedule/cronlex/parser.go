package cronlex

import (
	"github.com/zalgonoise/parse"
)

// ParseFunc is the second and middle phase of the field expander, which consumes a parse.Tree scoped to Token and
// byte, in tandem with StateFunc, as a lexer-parser state-machine strategy.
//
// The top-level nodes of the tree alternate between items and TokenComma separators, as they appear in the field:
// "1-5,*/15" holds three top-level nodes (an item, a comma and another item). An item node holds its first operand
// (a value, a star or a question mark), and any range or interval symbol that follows it is kept as an edge of that
// operand, with its own operand as the single edge of the symbol. In the example above, "1" holds a TokenDash edge that
// holds "5", while "*" holds a TokenSlash edge that holds "15".
//
// The tree is not validated here; ProcessFunc walks it and rejects any item that is not a supported shape.
func ParseFunc(t *parse.Tree[Token, byte]) parse.ParseFn[Token, byte] {
	switch t.Peek().Type {
	case TokenEOF:
		return nil
	case TokenComma:
		t.Node(t.Next())
		_ = t.Set(t.Parent())

		return ParseFunc
	default:
		return parseOperand
	}
}

func parseOperand(t *parse.Tree[Token, byte]) parse.ParseFn[Token, byte] {
	t.Node(t.Next())

	return parseSymbols
}

func parseSymbols(t *parse.Tree[Token, byte]) parse.ParseFn[Token, byte] {
	switch t.Peek().Type {
	case TokenDash, TokenSlash:
		return parseSymbolOperand
	default:
		_ = t.Set(t.Parent())

		return ParseFunc
	}
}

func parseSymbolOperand(t *parse.Tree[Token, byte]) parse.ParseFn[Token, byte] {
	t.Node(t.Next())

	switch t.Peek().Type {
	case TokenEOF, TokenComma, TokenDash, TokenSlash:
		// dangling symbol, e.g. "*/" or "1--2"
		_ = t.Set(t.Parent())
	default:
		t.Node(t.Next())
		_ = t.Set(t.Parent().Parent)
	}

	return parseSymbols
}

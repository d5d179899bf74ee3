package cronlex

import (
	"github.com/zalgonoise/lex"
)

// StateFunc is the first phase of the field expander, which consumes the bytes of a single cron field while emitting
// meaningful tokens on what type of data they portray.
//
// This function works in tandem with ParseFunc, as a parser-lexer state-machine during the parse.Run call, in Expand.
//
// Symbols emit their own Token (a "*" emits a TokenStar, a "-" emits a TokenDash), while runs of digits and letters
// are grouped into a single TokenAlphaNum. Any other byte is emitted as a TokenError, so that the processing phase
// can report it as part of a malformed item.
func StateFunc(l lex.Lexer[Token, byte]) lex.StateFn[Token, byte] {
	switch c := l.Next(); c {
	case '*':
		l.Emit(TokenStar)

		return StateFunc
	case '?':
		l.Emit(TokenQuestion)

		return StateFunc
	case ',':
		l.Emit(TokenComma)

		return StateFunc
	case '-':
		l.Emit(TokenDash)

		return StateFunc
	case '/':
		l.Emit(TokenSlash)

		return StateFunc
	case 0:
		l.Emit(TokenEOF)

		return nil
	default:
		if isAlphaNum(c) {
			return stateAlphanumeric
		}

		l.Emit(TokenError)

		return StateFunc
	}
}

func stateAlphanumeric(l lex.Lexer[Token, byte]) lex.StateFn[Token, byte] {
	l.Backup() // undo l.Next() for the accept loop

	for isAlphaNum(l.Cur()) {
		l.Next()
	}

	if l.Width() > 0 {
		l.Emit(TokenAlphaNum)
	}

	return StateFunc
}

func isAlphaNum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

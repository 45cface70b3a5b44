package asm

import (
	"fmt"

	"github.com/ezrec/uasm/isa"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_EOF      = TokenKind(0) // eof
	TOKEN_NEWLINE  = TokenKind(1) // newline
	TOKEN_INTEGER  = TokenKind(2) // integer
	TOKEN_STRING   = TokenKind(3) // string
	TOKEN_REGISTER = TokenKind(4) // register
	TOKEN_MNEMONIC = TokenKind(5) // mnemonic
	TOKEN_IDENT    = TokenKind(6) // identifier
	TOKEN_PUNCT    = TokenKind(7) // punctuation
)

// punctuation is the set of single character tokens.
const punctuation = ":+-[].,"

// Token is a single lexical element of the source.
type Token struct {
	Kind     TokenKind
	LineNo   int
	Text     string       // Source text, or the contents of a string.
	Value    int64        // Value of a TOKEN_INTEGER.
	Register isa.Register // Register of a TOKEN_REGISTER.
	Mnemonic isa.Mnemonic // Mnemonic of a TOKEN_MNEMONIC.
}

// Is returns true if the token is the given punctuation.
func (tok Token) Is(punct byte) bool {
	return tok.Kind == TOKEN_PUNCT && tok.Text[0] == punct
}

// EndOfStatement returns true for a newline or the end of input.
func (tok Token) EndOfStatement() bool {
	return tok.Kind == TOKEN_NEWLINE || tok.Kind == TOKEN_EOF
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_EOF, TOKEN_NEWLINE:
		return tok.Kind.String()
	case TOKEN_STRING:
		return fmt.Sprintf("%q", tok.Text)
	default:
		return tok.Text
	}
}

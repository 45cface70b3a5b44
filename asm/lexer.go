package asm

import (
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/uasm/isa"
)

// Evaluator computes the value of a $(...) expression found on a line.
type Evaluator func(expr string, lineno int) (value int64, err error)

// Tokenizer splits source text into tokens.
type Tokenizer struct {
	text string
	eval Evaluator
}

// NewTokenizer creates a tokenizer over the text. If eval is nil, $(...)
// expressions are illegal.
func NewTokenizer(text string, eval Evaluator) *Tokenizer {
	return &Tokenizer{text: text, eval: eval}
}

// Tokens iterates over the tokens of the text, from the start, ending with
// a TOKEN_EOF token or the first error.
func (tz *Tokenizer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		sc := &scanner{text: tz.text, lineno: 1, eval: tz.eval}
		for {
			tok, err := sc.next()
			if !yield(tok, err) {
				return
			}
			if err != nil || tok.Kind == TOKEN_EOF {
				return
			}
		}
	}
}

// scanner is the position state of one pass over the text.
type scanner struct {
	text   string
	pos    int
	lineno int
	eval   Evaluator
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// isIdentifier returns true if the whole text scans as one identifier.
func isIdentifier(text string) bool {
	if len(text) == 0 || !isIdentStart(text[0]) {
		return false
	}
	for n := 1; n < len(text); n++ {
		if !isIdent(text[n]) {
			return false
		}
	}
	return true
}

// illegal reports the character at pos.
func (sc *scanner) illegal(pos int) error {
	ch, _ := utf8.DecodeRuneInString(sc.text[pos:])
	return &ErrIllegalCharacter{LineNo: sc.lineno, Char: ch}
}

// lineEnd returns the offset of the end of the current line.
func (sc *scanner) lineEnd() int {
	end := strings.IndexByte(sc.text[sc.pos:], '\n')
	if end < 0 {
		return len(sc.text)
	}
	return sc.pos + end
}

func (sc *scanner) next() (tok Token, err error) {
	for sc.pos < len(sc.text) {
		c := sc.text[sc.pos]
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		sc.pos++
	}

	tok.LineNo = sc.lineno

	if sc.pos >= len(sc.text) {
		tok.Kind = TOKEN_EOF
		return
	}

	start := sc.pos
	c := sc.text[start]

	switch {
	case c == '\n':
		for sc.pos < len(sc.text) && sc.text[sc.pos] == '\n' {
			sc.pos++
		}
		tok.Kind = TOKEN_NEWLINE
		tok.Text = sc.text[start:sc.pos]
		sc.lineno += sc.pos - start
	case isDigit(c):
		for sc.pos < len(sc.text) && isDigit(sc.text[sc.pos]) {
			sc.pos++
		}
		tok.Kind = TOKEN_INTEGER
		tok.Text = sc.text[start:sc.pos]
		tok.Value, err = strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			err = &ErrSyntax{LineNo: sc.lineno, Token: tok.Text, Err: ErrNumberRange}
		}
	case c == '\'':
		ch, size := utf8.DecodeRuneInString(sc.text[start+1:])
		end := start + 1 + size
		if size == 0 || ch == '\n' || end >= len(sc.text) || sc.text[end] != '\'' {
			err = sc.illegal(start)
			return
		}
		sc.pos = end + 1
		tok.Kind = TOKEN_INTEGER
		tok.Text = sc.text[start:sc.pos]
		tok.Value = int64(ch)
	case c == '"':
		end := strings.IndexByte(sc.text[start+1:sc.lineEnd()], '"')
		if end < 0 {
			err = sc.illegal(start)
			return
		}
		sc.pos = start + 1 + end + 1
		tok.Kind = TOKEN_STRING
		tok.Text = sc.text[start+1 : sc.pos-1]
	case isIdentStart(c):
		for sc.pos < len(sc.text) && isIdent(sc.text[sc.pos]) {
			sc.pos++
		}
		tok.Text = sc.text[start:sc.pos]
		tok.Kind = TOKEN_IDENT
		if reg, ok := isa.LookupRegister(tok.Text); ok {
			tok.Kind = TOKEN_REGISTER
			tok.Register = reg
		} else if m, ok := isa.LookupMnemonic(tok.Text); ok {
			tok.Kind = TOKEN_MNEMONIC
			tok.Mnemonic = m
		}
	case strings.IndexByte(punctuation, c) >= 0:
		sc.pos++
		tok.Kind = TOKEN_PUNCT
		tok.Text = sc.text[start:sc.pos]
	case c == '$' && sc.eval != nil && strings.HasPrefix(sc.text[start:], "$("):
		tok, err = sc.paren(start)
	default:
		err = sc.illegal(start)
	}

	return
}

// paren evaluates a $(...) expression, which may nest parentheses but not
// span lines.
func (sc *scanner) paren(start int) (tok Token, err error) {
	tok.LineNo = sc.lineno

	depth := 0
	end := sc.lineEnd()
	for pos := start + 1; pos < end; pos++ {
		switch sc.text[pos] {
		case '(':
			depth++
		case ')':
			depth--
		case '"', '\'':
			pos = skipQuoted(sc.text[:end], pos)
			if pos < 0 {
				err = sc.illegal(start)
				return
			}
		}
		if depth == 0 {
			sc.pos = pos + 1
			break
		}
	}
	if depth != 0 {
		err = sc.illegal(start)
		return
	}

	tok.Kind = TOKEN_INTEGER
	tok.Text = sc.text[start:sc.pos]
	tok.Value, err = sc.eval(tok.Text[2:len(tok.Text)-1], sc.lineno)
	if err != nil {
		err = &ErrSyntax{LineNo: sc.lineno, Token: tok.Text, Err: err}
	}

	return
}

// skipQuoted returns the offset of the quote closing the string literal
// opened at pos, or -1 if the text ends first. Backslash escapes the
// next character.
func skipQuoted(text string, pos int) int {
	quote := text[pos]
	for pos++; pos < len(text); pos++ {
		switch text[pos] {
		case '\\':
			pos++
		case quote:
			return pos
		}
	}
	return -1
}

package asm

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uasm/isa"
)

func collectTokens(tz *Tokenizer) (toks []Token, err error) {
	for tok, terr := range tz.Tokens() {
		if terr != nil {
			err = terr
			return
		}
		toks = append(toks, tok)
	}
	return
}

func TestTokenizer(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer("MOV ax, [eBX:'a']\n\n\t.loop_1 \r\ndata \"x y\", 42-z", nil)

	toks, err := collectTokens(tz)
	assert.NoError(err)

	type tokSummary struct {
		kind   TokenKind
		lineno int
		text   string
	}

	expected := []tokSummary{
		{TOKEN_MNEMONIC, 1, "MOV"},
		{TOKEN_REGISTER, 1, "ax"},
		{TOKEN_PUNCT, 1, ","},
		{TOKEN_PUNCT, 1, "["},
		{TOKEN_REGISTER, 1, "eBX"},
		{TOKEN_PUNCT, 1, ":"},
		{TOKEN_INTEGER, 1, "'a'"},
		{TOKEN_PUNCT, 1, "]"},
		{TOKEN_NEWLINE, 1, "\n\n"},
		{TOKEN_PUNCT, 3, "."},
		{TOKEN_IDENT, 3, "loop_1"},
		{TOKEN_NEWLINE, 3, "\n"},
		{TOKEN_MNEMONIC, 4, "data"},
		{TOKEN_STRING, 4, "x y"},
		{TOKEN_PUNCT, 4, ","},
		{TOKEN_INTEGER, 4, "42"},
		{TOKEN_PUNCT, 4, "-"},
		{TOKEN_IDENT, 4, "z"},
		{TOKEN_EOF, 4, ""},
	}

	if assert.Equal(len(expected), len(toks)) {
		for n, tok := range toks {
			assert.Equal(expected[n], tokSummary{tok.Kind, tok.LineNo, tok.Text}, strconv.Itoa(n))
		}
	}

	assert.Equal(isa.OP_MOV, toks[0].Mnemonic.Op)
	assert.Equal(isa.Register{Reg: isa.REG_AX, Width: isa.WIDTH_8}, toks[1].Register)
	assert.Equal(isa.Register{Reg: isa.REG_BX, Width: isa.WIDTH_16}, toks[4].Register)
	assert.Equal(int64('a'), toks[6].Value)
	assert.Equal(int64(42), toks[15].Value)
	assert.True(toks[2].Is(','))
	assert.False(toks[2].Is('.'))

	// Restartable from the start of the text.
	again, err := collectTokens(tz)
	assert.NoError(err)
	assert.Equal(toks, again)
}

func TestTokenizerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		char   rune
	}){
		{"mov ax, bx\nmov ax, @", 2, '@'},
		{"data \"open\n\"", 1, '"'},
		{"data 'ab'", 1, '\''},
		{"data ''", 1, '\''},
		{"\n\n\njmp $(1+2)", 4, '$'},
		{"data é", 1, 'é'},
	}

	for _, entry := range table {
		toks, err := collectTokens(NewTokenizer(entry.text, nil))
		var illegal *ErrIllegalCharacter
		if assert.True(errors.As(err, &illegal), entry.text) {
			assert.Equal(entry.lineno, illegal.LineNo, entry.text)
			assert.Equal(entry.char, illegal.Char, entry.text)
		}
		for _, tok := range toks {
			assert.NotEqual(TOKEN_EOF, tok.Kind, entry.text)
		}
	}

	_, err := collectTokens(NewTokenizer("data 99999999999999999999", nil))
	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.True(errors.Is(err, ErrNumberRange))
}

func TestTokenizerEvaluator(t *testing.T) {
	assert := assert.New(t)

	var exprs []string
	eval := func(expr string, lineno int) (value int64, err error) {
		exprs = append(exprs, expr)
		if expr == "bad" {
			err = ErrParseExpression(expr)
			return
		}
		value = int64(100 + lineno)
		return
	}

	toks, err := collectTokens(NewTokenizer("\ndata $(len((1, (2, 3)))), 1", eval))
	assert.NoError(err)
	assert.Equal([]string{"len((1, (2, 3)))"}, exprs)
	if assert.Equal(6, len(toks)) {
		assert.Equal(TOKEN_INTEGER, toks[2].Kind)
		assert.Equal(int64(102), toks[2].Value)
		assert.Equal("$(len((1, (2, 3))))", toks[2].Text)
	}

	_, err = collectTokens(NewTokenizer("data $(bad)", eval))
	assert.True(errors.Is(err, ErrParseExpression("bad")))

	_, err = collectTokens(NewTokenizer("data $((1)\n)", eval))
	var illegal *ErrIllegalCharacter
	assert.True(errors.As(err, &illegal))

	// Parentheses inside string literals are not counted.
	exprs = nil
	toks, err = collectTokens(NewTokenizer(`data $(len(")")), $('(' + "\"("), 2`, eval))
	assert.NoError(err)
	assert.Equal([]string{`len(")")`, `'(' + "\"("`}, exprs)
	if assert.Equal(7, len(toks)) {
		assert.Equal(TOKEN_INTEGER, toks[5].Kind)
		assert.Equal(int64(2), toks[5].Value)
	}

	_, err = collectTokens(NewTokenizer(`data $(len("))`, eval))
	if assert.True(errors.As(err, &illegal)) {
		assert.Equal('$', illegal.Char)
	}
}

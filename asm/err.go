package asm

import (
	"errors"

	"github.com/ezrec/uasm/translate"
)

var f = translate.From

var (
	// Syntax errors
	ErrTokenUnexpected = errors.New(f("unexpected token"))
	ErrNumberRange     = errors.New(f("number out of range"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelInvalid    = errors.New(f("label invalid"))

	// Operand errors
	ErrOperandCount           = errors.New(f("wrong number of operands"))
	ErrOperandKind            = errors.New(f("operand kind invalid"))
	ErrOperandWidth           = errors.New(f("operand widths differ"))
	ErrTimesCount             = errors.New(f("times count less than one"))
	ErrDataRange              = errors.New(f("data value not a byte"))
	ErrRelocationUnsupported  = errors.New(f("relocation unsupported"))
	ErrInstructionUnsupported = errors.New(f("instruction unsupported"))
)

// ErrIllegalCharacter is a character that starts no token.
type ErrIllegalCharacter struct {
	LineNo int
	Char   rune
}

func (err *ErrIllegalCharacter) Error() string {
	return f("line %d illegal character %q", err.LineNo, err.Char)
}

// ErrSyntax is a token sequence that matches no statement.
type ErrSyntax struct {
	LineNo int
	Token  string
	Err    error
}

func (err *ErrSyntax) Error() string {
	if len(err.Token) == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Token, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOperand is an operand list the instruction cannot take.
type ErrOperand struct {
	LineNo   int
	Mnemonic string
	Err      error
}

func (err *ErrOperand) Error() string {
	return f("line %d %v: %v", err.LineNo, err.Mnemonic, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrSymbolUnresolved is a relocation against a label never declared.
type ErrSymbolUnresolved struct {
	LineNo int
	Symbol string
}

func (err *ErrSymbolUnresolved) Error() string {
	return f("line %d label %v missing", err.LineNo, err.Symbol)
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrPredefine is a constant name that source text could never reference.
type ErrPredefine string

func (err ErrPredefine) Error() string {
	return f("%v cannot be predefined", string(err))
}

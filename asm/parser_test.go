package asm

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uasm/isa"
)

var (
	regAX  = isa.Register{Reg: isa.REG_AX, Width: isa.WIDTH_8}
	regBX  = isa.Register{Reg: isa.REG_BX, Width: isa.WIDTH_8}
	regCX  = isa.Register{Reg: isa.REG_CX, Width: isa.WIDTH_8}
	regSP  = isa.Register{Reg: isa.REG_SP, Width: isa.WIDTH_8}
	regEAX = isa.Register{Reg: isa.REG_AX, Width: isa.WIDTH_16}
	regEBX = isa.Register{Reg: isa.REG_BX, Width: isa.WIDTH_16}
)

func parseAll(text string, width isa.Width, constants map[string]int64) (items []Item, err error) {
	p := NewParser(NewTokenizer(text, nil), width, constants)
	defer p.Close()

	for {
		var item Item
		item, err = p.Next()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
		items = append(items, item)
	}
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	program := `
.start
	data "AB", 0, start+1
	times 2, 'x', 7
	inc ax
	dec ebx
	jmp start - 2
	mov ax, bx
	mov cx, [bx]
	mov [bx:here], ax
	add [-3:sp], cx
	sub ax, 10
	push [bx]
	pop 5
	not eax
	ret
`

	items, err := parseAll(program, isa.WIDTH_8, nil)
	assert.NoError(err)

	expected := []Item{
		&Label{Name: "start", LineNo: 2},
		&InstData{LineNo: 3, Items: []SymInt{
			Constant('A'), Constant('B'), Constant(0),
			Symbol("start").Add(Constant(1))}},
		&InstData{LineNo: 4, Items: []SymInt{
			Constant('x'), Constant(7), Constant('x'), Constant(7)}},
		&InstReversible{LineNo: 5, Pair: isa.Pair{Normal: isa.OP_ADD, Reverse: isa.OP_ADDR},
			Width: isa.WIDTH_8, Left: OperandDisplacement{Constant(1)}, Right: regAX, Reversed: true},
		&InstReversible{LineNo: 6, Pair: isa.Pair{Normal: isa.OP_SUB, Reverse: isa.OP_SUBR},
			Width: isa.WIDTH_16, Left: OperandDisplacement{Constant(1)}, Right: regEBX, Reversed: true},
		&InstJump{LineNo: 7, Op: isa.OP_JMP, Width: isa.WIDTH_8,
			Target: Symbol("start").Sub(Constant(2))},
		&InstReversible{LineNo: 8, Pair: isa.Pair{Normal: isa.OP_MOV, Reverse: isa.OP_MOVR},
			Width: isa.WIDTH_8, Left: OperandRegister{regAX}, Right: regBX},
		&InstReversible{LineNo: 9, Pair: isa.Pair{Normal: isa.OP_MOV, Reverse: isa.OP_MOVR},
			Width: isa.WIDTH_8, Left: OperandIndirect{regBX}, Right: regCX, Reversed: true},
		&InstReversible{LineNo: 10, Pair: isa.Pair{Normal: isa.OP_MOV, Reverse: isa.OP_MOVR},
			Width: isa.WIDTH_8, Left: OperandIndirectDisplacement{regBX, Symbol("here")}, Right: regAX},
		&InstReversible{LineNo: 11, Pair: isa.Pair{Normal: isa.OP_ADD, Reverse: isa.OP_ADDR},
			Width: isa.WIDTH_8, Left: OperandIndirectDisplacement{regSP, Constant(-3)}, Right: regCX},
		&InstReversible{LineNo: 12, Pair: isa.Pair{Normal: isa.OP_SUB, Reverse: isa.OP_SUBR},
			Width: isa.WIDTH_8, Left: OperandDisplacement{Constant(10)}, Right: regAX, Reversed: true},
		&InstUnary{LineNo: 13, Op: isa.OP_PUSH, Width: isa.WIDTH_8, Operand: OperandIndirect{regBX}},
		&InstUnary{LineNo: 14, Op: isa.OP_POP, Width: isa.WIDTH_8, Operand: OperandDisplacement{Constant(5)}},
		&InstUnary{LineNo: 15, Op: isa.OP_NOT, Width: isa.WIDTH_16, Operand: OperandRegister{regEAX}},
		&InstNullary{LineNo: 16, Op: isa.OP_RET, Width: isa.WIDTH_8},
	}

	if assert.Equal(len(expected), len(items)) {
		for n := range expected {
			assert.Equal(expected[n], items[n])
		}
	}
}

func TestParserAddressOrder(t *testing.T) {
	assert := assert.New(t)

	a, err := parseAll("mov ax, [bx:lbl+1]", isa.WIDTH_8, nil)
	assert.NoError(err)
	b, err := parseAll("mov ax, [lbl+1:bx]", isa.WIDTH_8, nil)
	assert.NoError(err)
	assert.Equal(a, b)
}

func TestParserWidth(t *testing.T) {
	assert := assert.New(t)

	items, err := parseAll("jmp 300\nret\npush 4\npush bx\n", isa.WIDTH_16, nil)
	assert.NoError(err)
	if assert.Equal(4, len(items)) {
		assert.Equal(isa.WIDTH_16, items[0].(*InstJump).Width)
		assert.Equal(isa.WIDTH_16, items[1].(*InstNullary).Width)
		assert.Equal(isa.WIDTH_16, items[2].(*InstUnary).Width)
		// Register operands select their own width.
		assert.Equal(isa.WIDTH_8, items[3].(*InstUnary).Width)
	}
}

func TestParserConstants(t *testing.T) {
	assert := assert.New(t)

	items, err := parseAll("mov ax, SCREEN + 2 - lbl", isa.WIDTH_8, map[string]int64{"SCREEN": 0x40})
	assert.NoError(err)
	if assert.Equal(1, len(items)) {
		rev := items[0].(*InstReversible)
		assert.Equal(OperandDisplacement{Constant(0x42).Sub(Symbol("lbl"))}, rev.Left)
	}
}

func TestParserErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		kind   any
		err    error
	}){
		{"ret\nax", 2, &ErrSyntax{}, ErrTokenUnexpected},
		{"mov ax, bx cx", 1, &ErrSyntax{}, ErrTokenUnexpected},
		{"\n. 5", 2, &ErrSyntax{}, ErrLabelInvalid},
		{".data", 1, &ErrSyntax{}, ErrLabelInvalid},
		{".a .b", 1, &ErrSyntax{}, ErrTokenUnexpected},
		{"mov ax, [bx", 1, &ErrSyntax{}, ErrTokenUnexpected},
		{"mov ax, [bx:cx]", 1, &ErrSyntax{}, ErrTokenUnexpected},
		{"mov ax, [1:2]", 1, &ErrSyntax{}, ErrTokenUnexpected},
		{"jmp +", 1, &ErrSyntax{}, ErrTokenUnexpected},
		{"times 3 \"a\"", 1, &ErrSyntax{}, ErrTokenUnexpected},
		{"data", 1, &ErrOperand{}, ErrOperandCount},
		{"data ax", 1, &ErrOperand{}, ErrOperandKind},
		{"data [bx]", 1, &ErrOperand{}, ErrOperandKind},
		{"\n\nmov ax", 3, &ErrOperand{}, ErrOperandCount},
		{"mov ax, bx, cx", 1, &ErrOperand{}, ErrOperandCount},
		{"mov 1, 2", 1, &ErrOperand{}, ErrOperandKind},
		{"mov [bx], [cx]", 1, &ErrOperand{}, ErrOperandKind},
		{"mov ax, ebx", 1, &ErrOperand{}, ErrOperandWidth},
		{"mov [ebx:2], ax", 1, &ErrOperand{}, ErrOperandWidth},
		{"mov ax, \"s\"", 1, &ErrOperand{}, ErrOperandKind},
		{"inc 5", 1, &ErrOperand{}, ErrOperandKind},
		{"inc [ax]", 1, &ErrOperand{}, ErrOperandKind},
		{"inc", 1, &ErrOperand{}, ErrOperandCount},
		{"jmp ax", 1, &ErrOperand{}, ErrOperandKind},
		{"jmp [ax]", 1, &ErrOperand{}, ErrOperandKind},
		{"jmp 1, 2", 1, &ErrOperand{}, ErrOperandCount},
		{"push", 1, &ErrOperand{}, ErrOperandCount},
		{"ret ax", 1, &ErrOperand{}, ErrOperandCount},
		{"times lbl, 1", 1, &ErrOperand{}, ErrRelocationUnsupported},
		{"times 0, 1", 1, &ErrOperand{}, ErrTimesCount},
		{"times 1-2, 1", 1, &ErrOperand{}, ErrTimesCount},
		{"times 2000000, 1", 1, &ErrOperand{}, ErrNumberRange},
		{"times 2, ax", 1, &ErrOperand{}, ErrOperandKind},
	}

	for _, entry := range table {
		_, err := parseAll(entry.text, isa.WIDTH_8, nil)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.text, err)
		switch entry.kind.(type) {
		case *ErrSyntax:
			var syntax *ErrSyntax
			if assert.True(errors.As(err, &syntax), entry.text) {
				assert.Equal(entry.lineno, syntax.LineNo, entry.text)
			}
		case *ErrOperand:
			var operand *ErrOperand
			if assert.True(errors.As(err, &operand), entry.text) {
				assert.Equal(entry.lineno, operand.LineNo, entry.text)
			}
		}
	}
}

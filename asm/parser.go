package asm

import (
	"io"
	"iter"
	"slices"

	"github.com/ezrec/uasm/internal"
	"github.com/ezrec/uasm/isa"
)

const (
	TIMES_LIMIT = 1 << 20 // Maximum bytes generated by a single TIMES.
)

// argument is a parsed operand, or the bytes of a string literal.
type argument struct {
	text    []byte
	operand Operand
}

// Parser reads statements from a token stream.
type Parser struct {
	width     isa.Width        // Width of instructions without register operands.
	constants map[string]int64 // Predefined constants.

	next    func() (Token, error, bool)
	stop    func()
	tok     Token
	started bool
}

// NewParser creates a parser over the tokens of tz. Identifiers found in
// constants are replaced by their values; all others are labels.
func NewParser(tz *Tokenizer, width isa.Width, constants map[string]int64) *Parser {
	next, stop := iter.Pull2(tz.Tokens())
	return &Parser{
		width:     width,
		constants: constants,
		next:      next,
		stop:      stop,
	}
}

// Close releases the token stream.
func (p *Parser) Close() {
	p.stop()
}

// advance moves to the next token.
func (p *Parser) advance() (err error) {
	tok, err, ok := p.next()
	if err != nil {
		return
	}
	if !ok {
		tok = Token{Kind: TOKEN_EOF, LineNo: p.tok.LineNo}
	}
	p.tok = tok
	return
}

// unexpected reports the current token as a syntax error.
func (p *Parser) unexpected() error {
	return &ErrSyntax{LineNo: p.tok.LineNo, Token: p.tok.String(), Err: ErrTokenUnexpected}
}

// expect consumes a punctuation token.
func (p *Parser) expect(punct byte) (err error) {
	if !p.tok.Is(punct) {
		return p.unexpected()
	}
	return p.advance()
}

// Next parses the next statement. At the end of input it returns io.EOF.
func (p *Parser) Next() (item Item, err error) {
	if !p.started {
		p.started = true
		err = p.advance()
		if err != nil {
			return
		}
	}

	for p.tok.Kind == TOKEN_NEWLINE {
		err = p.advance()
		if err != nil {
			return
		}
	}

	switch {
	case p.tok.Kind == TOKEN_EOF:
		err = io.EOF
		return
	case p.tok.Is('.'):
		item, err = p.parseLabel()
	case p.tok.Kind == TOKEN_MNEMONIC:
		item, err = p.parseInstruction()
	default:
		err = p.unexpected()
	}
	if err != nil {
		item = nil
		return
	}

	if !p.tok.EndOfStatement() {
		item = nil
		err = p.unexpected()
	}

	return
}

// parseLabel parses '.' IDENT.
func (p *Parser) parseLabel() (label *Label, err error) {
	lineno := p.tok.LineNo
	err = p.advance()
	if err != nil {
		return
	}

	if p.tok.Kind != TOKEN_IDENT {
		err = &ErrSyntax{LineNo: lineno, Token: p.tok.String(), Err: ErrLabelInvalid}
		return
	}

	label = &Label{Name: p.tok.Text, LineNo: lineno}
	err = p.advance()
	return
}

// parseInstruction parses a mnemonic and its operands.
func (p *Parser) parseInstruction() (inst Instruction, err error) {
	m := p.tok.Mnemonic
	lineno := p.tok.LineNo
	err = p.advance()
	if err != nil {
		return
	}

	var count SymInt
	if m.Category == isa.CAT_TIMES {
		count, err = p.parseExpression()
		if err != nil {
			return
		}
		err = p.expect(',')
		if err != nil {
			return
		}
	}

	args, err := p.parseArguments()
	if err != nil {
		return
	}

	inst, err = p.build(m, lineno, count, args)
	if err != nil {
		err = &ErrOperand{LineNo: lineno, Mnemonic: m.Name, Err: err}
	}

	return
}

// parseArguments parses a possibly empty, comma separated operand list.
func (p *Parser) parseArguments() (args []argument, err error) {
	if p.tok.EndOfStatement() {
		return
	}

	for {
		var arg argument
		arg, err = p.parseArgument()
		if err != nil {
			return
		}
		args = append(args, arg)

		if !p.tok.Is(',') {
			break
		}
		err = p.advance()
		if err != nil {
			return
		}
	}

	return
}

// parseArgument parses a string, register, bracketed address, or expression.
func (p *Parser) parseArgument() (arg argument, err error) {
	switch {
	case p.tok.Kind == TOKEN_STRING:
		arg.text = []byte(p.tok.Text)
		err = p.advance()
	case p.tok.Kind == TOKEN_REGISTER:
		arg.operand = OperandRegister{Register: p.tok.Register}
		err = p.advance()
	case p.tok.Is('['):
		arg.operand, err = p.parseAddress()
	default:
		var value SymInt
		value, err = p.parseExpression()
		arg.operand = OperandDisplacement{Value: value}
	}
	return
}

// parseAddress parses '[' REG ']', '[' REG ':' expr ']', or
// '[' expr ':' REG ']'.
func (p *Parser) parseAddress() (op Operand, err error) {
	err = p.advance()
	if err != nil {
		return
	}

	var pointer isa.Register
	var value SymInt

	if p.tok.Kind == TOKEN_REGISTER {
		pointer = p.tok.Register
		err = p.advance()
		if err != nil {
			return
		}
		if p.tok.Is(']') {
			op = OperandIndirect{Pointer: pointer}
			err = p.advance()
			return
		}
		err = p.expect(':')
		if err != nil {
			return
		}
		value, err = p.parseExpression()
		if err != nil {
			return
		}
	} else {
		value, err = p.parseExpression()
		if err != nil {
			return
		}
		err = p.expect(':')
		if err != nil {
			return
		}
		if p.tok.Kind != TOKEN_REGISTER {
			err = p.unexpected()
			return
		}
		pointer = p.tok.Register
		err = p.advance()
		if err != nil {
			return
		}
	}

	err = p.expect(']')
	if err != nil {
		return
	}

	op = OperandIndirectDisplacement{Pointer: pointer, Value: value}
	return
}

// parseExpression parses a left associative chain of '+' and '-'.
func (p *Parser) parseExpression() (value SymInt, err error) {
	value, err = p.parseUnary()
	if err != nil {
		return
	}

	for p.tok.Is('+') || p.tok.Is('-') {
		op := p.tok.Text[0]
		err = p.advance()
		if err != nil {
			return
		}
		var rhs SymInt
		rhs, err = p.parseUnary()
		if err != nil {
			return
		}
		if op == '+' {
			value = value.Add(rhs)
		} else {
			value = value.Sub(rhs)
		}
	}

	return
}

// parseUnary parses a negation, integer, or identifier.
func (p *Parser) parseUnary() (value SymInt, err error) {
	switch p.tok.Kind {
	case TOKEN_INTEGER:
		value = Constant(p.tok.Value)
	case TOKEN_IDENT:
		if constant, ok := p.constants[p.tok.Text]; ok {
			value = Constant(constant)
		} else {
			value = Symbol(p.tok.Text)
		}
	default:
		if !p.tok.Is('-') {
			err = p.unexpected()
			return
		}
		err = p.advance()
		if err != nil {
			return
		}
		value, err = p.parseUnary()
		value = value.Neg()
		return
	}

	err = p.advance()
	return
}

// registers returns the registers an operand names.
func registers(op Operand) []isa.Register {
	switch op := op.(type) {
	case OperandRegister:
		return []isa.Register{op.Register}
	case OperandIndirect:
		return []isa.Register{op.Pointer}
	case OperandIndirectDisplacement:
		return []isa.Register{op.Pointer}
	}
	return nil
}

// operandWidth returns the common width of the operands' registers, or the
// parser's width if there are none.
func (p *Parser) operandWidth(ops ...Operand) (width isa.Width, err error) {
	width = p.width
	first := true
	for _, op := range ops {
		for _, reg := range registers(op) {
			if first {
				width = reg.Width
				first = false
			} else if reg.Width != width {
				err = ErrOperandWidth
				return
			}
		}
	}
	return
}

// operands returns the arguments as operands, rejecting strings.
func operands(args []argument) (ops []Operand, err error) {
	for _, arg := range args {
		if arg.operand == nil {
			err = ErrOperandKind
			return
		}
		ops = append(ops, arg.operand)
	}
	return
}

// dataItems flattens DATA arguments into byte items.
func dataItems(args []argument) (items []SymInt, err error) {
	if len(args) == 0 {
		err = ErrOperandCount
		return
	}

	for _, arg := range args {
		if arg.operand == nil {
			for _, b := range arg.text {
				items = append(items, Constant(int64(b)))
			}
			continue
		}
		disp, ok := arg.operand.(OperandDisplacement)
		if !ok {
			err = ErrOperandKind
			return
		}
		items = append(items, disp.Value)
	}

	return
}

// build checks the operands of a mnemonic and creates its instruction.
func (p *Parser) build(m isa.Mnemonic, lineno int, count SymInt, args []argument) (inst Instruction, err error) {
	if m.Category == isa.CAT_DATA || m.Category == isa.CAT_TIMES {
		var items []SymInt
		items, err = dataItems(args)
		if err != nil {
			return
		}
		if m.Category == isa.CAT_TIMES {
			if !count.IsConstant() {
				err = ErrRelocationUnsupported
				return
			}
			if count.Base < 1 {
				err = ErrTimesCount
				return
			}
			if count.Base > TIMES_LIMIT || count.Base*int64(len(items)) > TIMES_LIMIT {
				err = ErrNumberRange
				return
			}
			items = slices.Collect(internal.IterSeqRepeat(slices.Values(items), int(count.Base)))
		}
		inst = &InstData{LineNo: lineno, Items: items}
		return
	}

	ops, err := operands(args)
	if err != nil {
		return
	}

	var width isa.Width
	width, err = p.operandWidth(ops...)
	if err != nil {
		return
	}

	switch m.Category {
	case isa.CAT_STEP:
		if len(ops) != 1 {
			err = ErrOperandCount
			return
		}
		reg, ok := ops[0].(OperandRegister)
		if !ok {
			err = ErrOperandKind
			return
		}
		inst = &InstReversible{
			LineNo:   lineno,
			Pair:     m.Pair(),
			Width:    width,
			Left:     OperandDisplacement{Value: Constant(1)},
			Right:    reg.Register,
			Reversed: true,
		}
	case isa.CAT_JUMP:
		if len(ops) != 1 {
			err = ErrOperandCount
			return
		}
		target, ok := ops[0].(OperandDisplacement)
		if !ok {
			err = ErrOperandKind
			return
		}
		inst = &InstJump{LineNo: lineno, Op: m.Op, Width: width, Target: target.Value}
	case isa.CAT_REVERSIBLE:
		if len(ops) != 2 {
			err = ErrOperandCount
			return
		}
		rev := &InstReversible{LineNo: lineno, Pair: m.Pair(), Width: width}
		if right, ok := ops[1].(OperandRegister); ok {
			rev.Left = ops[0]
			rev.Right = right.Register
		} else if right, ok := ops[0].(OperandRegister); ok {
			rev.Left = ops[1]
			rev.Right = right.Register
			rev.Reversed = true
		} else {
			err = ErrOperandKind
			return
		}
		inst = rev
	case isa.CAT_UNARY:
		if len(ops) != 1 {
			err = ErrOperandCount
			return
		}
		inst = &InstUnary{LineNo: lineno, Op: m.Op, Width: width, Operand: ops[0]}
	case isa.CAT_NULLARY:
		if len(ops) != 0 {
			err = ErrOperandCount
			return
		}
		inst = &InstNullary{LineNo: lineno, Op: m.Op, Width: width}
	default:
		err = ErrInstructionUnsupported
	}

	return
}

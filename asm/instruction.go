package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/uasm/isa"
)

// Item is a parsed statement: a *Label or an Instruction.
type Item interface {
	Line() int
}

// Label declares a symbol at the current image offset.
type Label struct {
	Name   string
	LineNo int
}

func (l *Label) Line() int {
	return l.LineNo
}

func (l *Label) String() string {
	return "." + l.Name
}

// Operand is one of the four addressing kinds:
// OperandRegister, OperandDisplacement, OperandIndirect, or
// OperandIndirectDisplacement.
type Operand interface {
	operand()
	String() string
}

// OperandRegister is a register.
type OperandRegister struct {
	Register isa.Register
}

// OperandDisplacement is an immediate value or absolute address.
type OperandDisplacement struct {
	Value SymInt
}

// OperandIndirect is the memory addressed by a register.
type OperandIndirect struct {
	Pointer isa.Register
}

// OperandIndirectDisplacement is the memory addressed by a register plus
// a displacement.
type OperandIndirectDisplacement struct {
	Pointer isa.Register
	Value   SymInt
}

func (OperandRegister) operand()             {}
func (OperandDisplacement) operand()         {}
func (OperandIndirect) operand()             {}
func (OperandIndirectDisplacement) operand() {}

func (op OperandRegister) String() string {
	return op.Register.String()
}

func (op OperandDisplacement) String() string {
	return op.Value.String()
}

func (op OperandIndirect) String() string {
	return "[" + op.Pointer.String() + "]"
}

func (op OperandIndirectDisplacement) String() string {
	return "[" + op.Pointer.String() + ":" + op.Value.String() + "]"
}

// Instruction is a parsed instruction: *InstData, *InstJump,
// *InstReversible, *InstUnary, or *InstNullary.
type Instruction interface {
	Item
	instruction()
}

// InstData emits literal bytes, one per item.
type InstData struct {
	LineNo int
	Items  []SymInt
}

// InstJump is an opcode followed by an immediate target.
type InstJump struct {
	LineNo int
	Op     isa.Opcode
	Width  isa.Width
	Target SymInt
}

// InstReversible is a dyadic instruction whose Right operand is the register
// in the ModRM rm field. Reversed selects the reverse opcode, for source
// written with the register first.
type InstReversible struct {
	LineNo   int
	Pair     isa.Pair
	Width    isa.Width
	Left     Operand
	Right    isa.Register
	Reversed bool
}

// InstUnary is an instruction with a single operand.
type InstUnary struct {
	LineNo  int
	Op      isa.Opcode
	Width   isa.Width
	Operand Operand
}

// InstNullary is a bare opcode.
type InstNullary struct {
	LineNo int
	Op     isa.Opcode
	Width  isa.Width
}

func (*InstData) instruction()       {}
func (*InstJump) instruction()       {}
func (*InstReversible) instruction() {}
func (*InstUnary) instruction()      {}
func (*InstNullary) instruction()    {}

func (inst *InstData) Line() int       { return inst.LineNo }
func (inst *InstJump) Line() int       { return inst.LineNo }
func (inst *InstReversible) Line() int { return inst.LineNo }
func (inst *InstUnary) Line() int      { return inst.LineNo }
func (inst *InstNullary) Line() int    { return inst.LineNo }

func (inst *InstData) String() string {
	items := make([]string, len(inst.Items))
	for n, item := range inst.Items {
		items[n] = item.String()
	}
	return "data " + strings.Join(items, ", ")
}

func (inst *InstJump) String() string {
	return fmt.Sprintf("%v %v", inst.Op, inst.Target)
}

// String returns the instruction in source operand order.
func (inst *InstReversible) String() string {
	op := inst.Pair.Select(inst.Reversed)
	if inst.Reversed {
		return fmt.Sprintf("%v %v, %v", op, inst.Right, inst.Left)
	}
	return fmt.Sprintf("%v %v, %v", op, inst.Left, inst.Right)
}

func (inst *InstUnary) String() string {
	return fmt.Sprintf("%v %v", inst.Op, inst.Operand)
}

func (inst *InstNullary) String() string {
	return inst.Op.String()
}

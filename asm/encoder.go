package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/uasm/isa"
)

// Field is a value serialized at a fixed width, patched later if symbolic.
type Field struct {
	Value SymInt
	Width isa.Width
	Byte  bool // DATA byte: the final value must be in 0..255.
}

// Code is an encoded instruction: opcode and ModRM bytes, then fields.
type Code struct {
	Bytes  []byte
	Fields []Field
}

// Size returns the encoded size in bytes. It does not depend on the values
// of the fields.
func (code Code) Size() (size int) {
	size = len(code.Bytes)
	for _, field := range code.Fields {
		size += field.Width.Bytes()
	}
	return
}

// Emit writes the code to the image.
func (code Code) Emit(img *Image, lineno int) {
	img.Write(code.Bytes...)
	for _, field := range code.Fields {
		if field.Byte && !field.Value.IsConstant() {
			img.CheckByte(field.Value, lineno)
		}
		img.WriteInteger(field.Value, field.Width, lineno)
	}
}

func (code Code) String() string {
	var parts []string
	for _, b := range code.Bytes {
		parts = append(parts, fmt.Sprintf("%02x", b))
	}
	for _, field := range code.Fields {
		parts = append(parts, fmt.Sprintf("(%v):%v", field.Value, field.Width))
	}
	return strings.Join(parts, " ")
}

// addressing builds the ModRM byte for an operand against the register in
// the rm field, and its displacement field, if any.
func addressing(op Operand, right isa.Register, width isa.Width) (modrm isa.ModRM, fields []Field, err error) {
	var disp SymInt

	switch op := op.(type) {
	case OperandRegister:
		modrm = isa.MakeModRM(isa.MOD_REG, op.Register.Reg, right.Reg)
	case OperandIndirect:
		modrm = isa.MakeModRM(isa.MOD_AT_REG, op.Pointer.Reg, right.Reg)
	case OperandIndirectDisplacement:
		modrm = isa.MakeModRM(isa.MOD_AT_REG_DISP, op.Pointer.Reg, right.Reg)
		disp = op.Value
	case OperandDisplacement:
		modrm = isa.MakeModRM(isa.MOD_DISP, 0, right.Reg)
		disp = op.Value
	default:
		err = ErrOperandKind
		return
	}

	if modrm.Displacement() {
		fields = []Field{{Value: disp, Width: width}}
	}

	return
}

// Encode converts an instruction into its code.
func Encode(inst Instruction) (code Code, err error) {
	var mnemonic string

	defer func() {
		if err != nil && inst != nil {
			err = &ErrOperand{LineNo: inst.Line(), Mnemonic: mnemonic, Err: err}
		}
	}()

	var modrm isa.ModRM

	switch inst := inst.(type) {
	case *InstData:
		mnemonic = "data"
		for _, item := range inst.Items {
			if item.IsConstant() && (item.Base < 0 || item.Base > 0xff) {
				err = ErrDataRange
				return
			}
			code.Fields = append(code.Fields, Field{Value: item, Width: isa.WIDTH_8, Byte: true})
		}
	case *InstJump:
		mnemonic = inst.Op.String()
		code.Bytes = []byte{inst.Op.Encode(inst.Width)}
		code.Fields = []Field{{Value: inst.Target, Width: inst.Width}}
	case *InstReversible:
		op := inst.Pair.Select(inst.Reversed)
		mnemonic = op.String()
		modrm, code.Fields, err = addressing(inst.Left, inst.Right, inst.Width)
		if err != nil {
			return
		}
		code.Bytes = []byte{op.Encode(inst.Width), byte(modrm)}
	case *InstUnary:
		mnemonic = inst.Op.String()
		modrm, code.Fields, err = addressing(inst.Operand, isa.Accumulator(inst.Width), inst.Width)
		if err != nil {
			return
		}
		code.Bytes = []byte{inst.Op.Encode(inst.Width), byte(modrm)}
	case *InstNullary:
		mnemonic = inst.Op.String()
		code.Bytes = []byte{inst.Op.Encode(inst.Width)}
	default:
		err = ErrInstructionUnsupported
	}

	return
}

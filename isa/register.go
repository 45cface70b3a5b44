package isa

import (
	"strings"
)

// Reg is a register code, as placed in the ModRM reg and rm fields.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_AX = Reg(0) // ax
	REG_BX = Reg(1) // bx
	REG_CX = Reg(2) // cx
	REG_DX = Reg(3) // dx
	REG_SP = Reg(7) // sp
)

const (
	REG_ACC = REG_AX // Implicit register of single operand instructions.
)

// Register is a register code within a width namespace.
type Register struct {
	Reg   Reg
	Width Width
}

// registerMap maps lower case register names of both namespaces.
var registerMap = map[string]Register{
	"ax":  {REG_AX, WIDTH_8},
	"bx":  {REG_BX, WIDTH_8},
	"cx":  {REG_CX, WIDTH_8},
	"dx":  {REG_DX, WIDTH_8},
	"sp":  {REG_SP, WIDTH_8},
	"eax": {REG_AX, WIDTH_16},
	"ebx": {REG_BX, WIDTH_16},
	"ecx": {REG_CX, WIDTH_16},
	"edx": {REG_DX, WIDTH_16},
	"esp": {REG_SP, WIDTH_16},
}

// LookupRegister finds a register by case-insensitive name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToLower(name)]
	return
}

// Accumulator returns the implicit register of the given width.
func Accumulator(width Width) Register {
	return Register{Reg: REG_ACC, Width: width}
}

func (r Register) String() string {
	if r.Width == WIDTH_16 {
		return "e" + r.Reg.String()
	}
	return r.Reg.String()
}

package isa

import (
	"fmt"
)

// Mod is the addressing kind in the top two bits of a ModRM byte.
type Mod int

//go:generate go tool stringer -linecomment -type=Mod
const (
	MOD_REG         = Mod(0) // reg
	MOD_AT_REG      = Mod(1) // at_reg
	MOD_AT_REG_DISP = Mod(2) // at_reg_disp
	MOD_DISP        = Mod(3) // disp
)

// ModRM is an addressing mode byte.
type ModRM byte

// MakeModRM packs an addressing mode byte.
func MakeModRM(mod Mod, reg, rm Reg) ModRM {
	return ModRM(((uint8(mod) & 0x3) << 6) | ((uint8(reg) & 0x7) << 3) | (uint8(rm) & 0x7))
}

// Decode returns the addressing kind, reg field, and rm field.
func (m ModRM) Decode() (mod Mod, reg, rm Reg) {
	mod = Mod((m >> 6) & 0x3)
	reg = Reg((m >> 3) & 0x7)
	rm = Reg((m >> 0) & 0x7)
	return
}

// Displacement returns true if a displacement field follows the byte.
func (m ModRM) Displacement() bool {
	mod, _, _ := m.Decode()
	return mod == MOD_AT_REG_DISP || mod == MOD_DISP
}

func (m ModRM) String() string {
	mod, reg, rm := m.Decode()
	if mod == MOD_DISP {
		return fmt.Sprintf("%v.%v", mod, rm)
	}
	return fmt.Sprintf("%v.%v.%v", mod, reg, rm)
}

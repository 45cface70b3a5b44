// Package isa describes the instruction set of the μASM toy processor.
//
// The processor has five registers (ax, bx, cx, dx, sp) visible in two
// widths: the 8-bit namespace uses the bare names, the 16-bit namespace
// prefixes them with 'e'. Instructions are a single opcode byte, optionally
// followed by an x86-style ModRM addressing byte and a displacement or
// immediate field of the instruction's width. 16-bit opcodes occupy the
// range OPCODE_WIDTH_OFFSET above their 8-bit counterparts.
package isa

package isa

// Opcode is a base (8-bit) instruction opcode.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(0)  // add
	OP_ADDR = Opcode(1)  // addr
	OP_SUB  = Opcode(2)  // sub
	OP_SUBR = Opcode(3)  // subr
	OP_MOV  = Opcode(4)  // mov
	OP_MOVR = Opcode(5)  // movr
	OP_CMP  = Opcode(6)  // cmp
	OP_CMPR = Opcode(7)  // cmpr
	OP_JMP  = Opcode(8)  // jmp
	OP_JE   = Opcode(9)  // je
	OP_JNE  = Opcode(10) // jne
	OP_JL   = Opcode(11) // jl
	OP_JLE  = Opcode(12) // jle
	OP_JG   = Opcode(13) // jg
	OP_JGE  = Opcode(14) // jge
	OP_PUSH = Opcode(15) // push
	OP_POP  = Opcode(16) // pop
	OP_CALL = Opcode(17) // call
	OP_RET  = Opcode(18) // ret
	OP_SHL  = Opcode(19) // shl
	OP_SHLR = Opcode(20) // shlr
	OP_SHR  = Opcode(21) // shr
	OP_SHRR = Opcode(22) // shrr
	OP_AND  = Opcode(23) // and
	OP_ANDR = Opcode(24) // andr
	OP_XOR  = Opcode(25) // xor
	OP_XORR = Opcode(26) // xorr
	OP_OR   = Opcode(27) // or
	OP_ORR  = Opcode(28) // orr
	OP_NOT  = Opcode(29) // not
)

const (
	OPCODE_WIDTH_OFFSET = 0x20 // Opcode distance between the 8-bit and 16-bit ranges.
)

// Encode returns the opcode byte for an instruction of the given width.
func (op Opcode) Encode(width Width) byte {
	return byte(op) + width.OpcodeOffset()
}

// Pair is the normal/reverse opcode pair of a reversible instruction.
type Pair struct {
	Normal  Opcode // Right operand is the destination register.
	Reverse Opcode // Left operand is the destination register.
}

// Select returns the member of the pair for the given direction.
func (p Pair) Select(reversed bool) Opcode {
	if reversed {
		return p.Reverse
	}
	return p.Normal
}

func (p Pair) String() string {
	return p.Normal.String() + "/" + p.Reverse.String()
}

// Width is an operand width, in bytes.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_8  = Width(1) // 8
	WIDTH_16 = Width(2) // 16
)

// ParseWidth converts a bit count into a Width.
func ParseWidth(bits int) (width Width, err error) {
	switch bits {
	case 8:
		width = WIDTH_8
	case 16:
		width = WIDTH_16
	default:
		err = ErrWidth(bits)
	}
	return
}

// Valid returns true for a supported width.
func (w Width) Valid() bool {
	return w == WIDTH_8 || w == WIDTH_16
}

// Bytes returns the size of a field of this width.
func (w Width) Bytes() int {
	return int(w)
}

// Bits returns the size of a field of this width, in bits.
func (w Width) Bits() int {
	return int(w) * 8
}

// Mask returns the value mask of a field of this width.
func (w Width) Mask() uint64 {
	return (uint64(1) << w.Bits()) - 1
}

// OpcodeOffset returns the opcode range offset of this width.
func (w Width) OpcodeOffset() byte {
	if w == WIDTH_16 {
		return OPCODE_WIDTH_OFFSET
	}
	return 0
}

package isa

import (
	"strings"
)

// Category is the grammatical class of a mnemonic.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	CAT_DATA       = Category(0) // data
	CAT_TIMES      = Category(1) // times
	CAT_STEP       = Category(2) // step
	CAT_JUMP       = Category(3) // jump
	CAT_REVERSIBLE = Category(4) // reversible
	CAT_UNARY      = Category(5) // unary
	CAT_NULLARY    = Category(6) // nullary
)

// Mnemonic describes an instruction keyword.
type Mnemonic struct {
	Name     string
	Category Category
	Op       Opcode // Opcode, or normal member of the pair.
	Reverse  Opcode // Reverse member of the pair, for CAT_STEP and CAT_REVERSIBLE.
}

// Pair returns the opcode pair of a reversible or step mnemonic.
func (m Mnemonic) Pair() Pair {
	return Pair{Normal: m.Op, Reverse: m.Reverse}
}

func (m Mnemonic) String() string {
	return m.Name
}

// mnemonicMap maps lower case mnemonics.
var mnemonicMap = map[string]Mnemonic{
	"data":  {"data", CAT_DATA, 0, 0},
	"times": {"times", CAT_TIMES, 0, 0},

	"inc": {"inc", CAT_STEP, OP_ADD, OP_ADDR},
	"dec": {"dec", CAT_STEP, OP_SUB, OP_SUBR},

	"jmp":  {"jmp", CAT_JUMP, OP_JMP, 0},
	"je":   {"je", CAT_JUMP, OP_JE, 0},
	"jne":  {"jne", CAT_JUMP, OP_JNE, 0},
	"jl":   {"jl", CAT_JUMP, OP_JL, 0},
	"jle":  {"jle", CAT_JUMP, OP_JLE, 0},
	"jg":   {"jg", CAT_JUMP, OP_JG, 0},
	"jge":  {"jge", CAT_JUMP, OP_JGE, 0},
	"call": {"call", CAT_JUMP, OP_CALL, 0},

	"add": {"add", CAT_REVERSIBLE, OP_ADD, OP_ADDR},
	"sub": {"sub", CAT_REVERSIBLE, OP_SUB, OP_SUBR},
	"mov": {"mov", CAT_REVERSIBLE, OP_MOV, OP_MOVR},
	"cmp": {"cmp", CAT_REVERSIBLE, OP_CMP, OP_CMPR},
	"shl": {"shl", CAT_REVERSIBLE, OP_SHL, OP_SHLR},
	"shr": {"shr", CAT_REVERSIBLE, OP_SHR, OP_SHRR},
	"and": {"and", CAT_REVERSIBLE, OP_AND, OP_ANDR},
	"xor": {"xor", CAT_REVERSIBLE, OP_XOR, OP_XORR},
	"or":  {"or", CAT_REVERSIBLE, OP_OR, OP_ORR},

	"push": {"push", CAT_UNARY, OP_PUSH, 0},
	"pop":  {"pop", CAT_UNARY, OP_POP, 0},
	"not":  {"not", CAT_UNARY, OP_NOT, 0},

	"ret": {"ret", CAT_NULLARY, OP_RET, 0},
}

// LookupMnemonic finds a mnemonic by case-insensitive name.
func LookupMnemonic(name string) (m Mnemonic, ok bool) {
	m, ok = mnemonicMap[strings.ToLower(name)]
	return
}

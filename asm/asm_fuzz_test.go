package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAssembler(f *testing.F) {
	f.Add("inc ax")
	f.Add(".start\njmp start")
	f.Add("data \"AB\", 0")
	f.Add("mov bx, [table:ax]\n.table\ntimes 3, 1, 2")
	f.Add("mov eax, [ebx:-2]\npush esp\nret")
	f.Add("data $(1+2), 'x'")
	f.Add(fizzbuzz)

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		asm := &Assembler{}
		prog, err := asm.AssembleString(text)
		if err != nil {
			assert.Nil(prog)
			return
		}

		size := 0
		for _, stmt := range prog.Statements {
			assert.Equal(size, stmt.Offset, text)
			size += stmt.Code.Size()
		}
		assert.Equal(size, len(prog.Binary), text)

		for _, offset := range prog.Symbols {
			assert.True(offset >= 0 && offset <= len(prog.Binary), text)
		}

		again, err := asm.AssembleString(text)
		assert.NoError(err, text)
		assert.Equal(prog, again, text)
	})
}

package asm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uasm/isa"
)

func TestImageWriteInteger(t *testing.T) {
	assert := assert.New(t)

	img := NewImage()
	assert.Equal(0, img.Offset())

	img.Write(0xaa)
	img.WriteInteger(Constant(0x1234), isa.WIDTH_16, 1)
	img.WriteInteger(Constant(-1), isa.WIDTH_8, 2)
	img.WriteInteger(Symbol("b").Sub(Symbol("a")).Add(Constant(2)), isa.WIDTH_8, 3)

	assert.Equal([]byte{0xaa, 0x34, 0x12, 0xff, 0x02}, img.Data)
	assert.Equal(5, img.Offset())
	assert.Equal([]Relocation{
		{Offset: 4, Symbol: "a", Coeff: -1, Width: isa.WIDTH_8, LineNo: 3},
		{Offset: 4, Symbol: "b", Coeff: 1, Width: isa.WIDTH_8, LineNo: 3},
	}, img.Relocations)

	img.Symbols["a"] = 1
	img.Symbols["b"] = 4
	assert.NoError(img.ApplyRelocations())
	assert.Equal([]byte{0xaa, 0x34, 0x12, 0xff, 0x05}, img.Data)
}

func TestImageRelocationProperty(t *testing.T) {
	assert := assert.New(t)

	for _, width := range []isa.Width{isa.WIDTH_8, isa.WIDTH_16} {
		for _, base := range []int64{0, 1, -1, 200, -300, 70000} {
			for _, coeff := range []int64{1, -1, 3} {
				for _, addr := range []int{0, 5, 255, 4000} {
					name := fmt.Sprintf("w%v b%v c%v a%v", width, base, coeff, addr)

					img := NewImage()
					img.Write(0x99)
					value := Symbol("x")
					value.Coeff["x"] = coeff
					value.Base = base
					img.WriteInteger(value, width, 1)
					img.Symbols["x"] = addr
					assert.NoError(img.ApplyRelocations(), name)

					expected := uint64(base+coeff*int64(addr)) & width.Mask()
					assert.Equal(byte(0x99), img.Data[0], name)
					assert.Equal(expected, getLittle(img.Data[1:]), name)
					assert.Equal(1+width.Bytes(), len(img.Data), name)
				}
			}
		}
	}
}

func TestImageApplyTwice(t *testing.T) {
	assert := assert.New(t)

	img := NewImage()
	img.WriteInteger(Symbol("x"), isa.WIDTH_8, 1)
	img.Symbols["x"] = 3

	assert.NoError(img.ApplyRelocations())
	assert.Equal([]byte{3}, img.Data)
	assert.NoError(img.ApplyRelocations())
	assert.Equal([]byte{6}, img.Data)
}

func TestImageUnresolved(t *testing.T) {
	assert := assert.New(t)

	img := NewImage()
	img.WriteInteger(Symbol("here"), isa.WIDTH_8, 1)
	img.WriteInteger(Symbol("nowhere").Add(Constant(1)), isa.WIDTH_16, 7)
	img.Symbols["here"] = 2

	err := img.ApplyRelocations()
	var unresolved *ErrSymbolUnresolved
	if assert.True(errors.As(err, &unresolved)) {
		assert.Equal(7, unresolved.LineNo)
		assert.Equal("nowhere", unresolved.Symbol)
	}

	// Nothing is patched when resolution fails.
	assert.Equal([]byte{0x00, 0x01, 0x00}, img.Data)
}

func TestImageCheckByte(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		addr int
		ok   bool
	}){
		{0, true},
		{255, true},
		{256, false},
		{301, false},
	}

	for _, entry := range table {
		img := NewImage()
		img.Write(0x00)
		img.CheckByte(Symbol("x"), 4)
		img.WriteInteger(Symbol("x"), isa.WIDTH_8, 4)
		img.Symbols["x"] = entry.addr

		err := img.ApplyRelocations()
		if entry.ok {
			assert.NoError(err, entry.addr)
			assert.Equal(byte(entry.addr), img.Data[1], entry.addr)
			continue
		}
		var operand *ErrOperand
		if assert.True(errors.As(err, &operand), entry.addr) {
			assert.Equal(4, operand.LineNo)
			assert.True(errors.Is(err, ErrDataRange))
		}
	}
}

package asm

import (
	"github.com/golang/glog"

	"github.com/ezrec/uasm/isa"
)

// Relocation is a pending patch of Coeff × address(Symbol) into the field
// of the given width at Offset.
type Relocation struct {
	Offset int
	Symbol string
	Coeff  int64
	Width  isa.Width
	LineNo int // Source line of the instruction that wrote the field.
}

// ByteCheck is a symbolic DATA byte whose final value must be in 0..255.
type ByteCheck struct {
	Offset int
	Value  SymInt
	LineNo int
}

// Image is a machine image under construction.
type Image struct {
	Data        []byte         // Flat image, starting at offset 0.
	Symbols     map[string]int // Map of labels to image offsets.
	Relocations []Relocation   // Outstanding relocations, in emission order.
	ByteChecks  []ByteCheck    // Symbolic DATA bytes, in emission order.
}

// NewImage creates an empty image.
func NewImage() *Image {
	return &Image{
		Symbols: make(map[string]int),
	}
}

// Offset returns the offset of the next byte written.
func (img *Image) Offset() int {
	return len(img.Data)
}

// Write appends raw bytes.
func (img *Image) Write(data ...byte) {
	img.Data = append(img.Data, data...)
}

// WriteInteger appends the base of value, little-endian, modulo the width,
// and records a relocation for every label the value depends on.
func (img *Image) WriteInteger(value SymInt, width isa.Width, lineno int) {
	offset := img.Offset()

	for label, coeff := range value.Symbols() {
		rel := Relocation{
			Offset: offset,
			Symbol: label,
			Coeff:  coeff,
			Width:  width,
			LineNo: lineno,
		}
		glog.V(2).Infof("line %d: relocation %+v", lineno, rel)
		img.Relocations = append(img.Relocations, rel)
	}

	img.Data = putLittle(img.Data, uint64(value.Base), width)
}

// CheckByte records that the value about to be written at the current
// offset must resolve to a single byte.
func (img *Image) CheckByte(value SymInt, lineno int) {
	img.ByteChecks = append(img.ByteChecks, ByteCheck{
		Offset: img.Offset(),
		Value:  value,
		LineNo: lineno,
	})
}

// ApplyRelocations patches every relocation with the final label
// addresses, then verifies that symbolic DATA bytes fit in a byte. It must
// be called once; calling it again applies the relocations a second time.
func (img *Image) ApplyRelocations() (err error) {
	for _, rel := range img.Relocations {
		if _, ok := img.Symbols[rel.Symbol]; !ok {
			err = &ErrSymbolUnresolved{LineNo: rel.LineNo, Symbol: rel.Symbol}
			return
		}
	}

	for _, rel := range img.Relocations {
		addr := img.Symbols[rel.Symbol]
		field := img.Data[rel.Offset : rel.Offset+rel.Width.Bytes()]
		value := getLittle(field) + uint64(rel.Coeff*int64(addr))
		putLittle(field[:0], value, rel.Width)
		glog.V(2).Infof("line %d: %v=%#x patched at %#x", rel.LineNo, rel.Symbol, addr, rel.Offset)
	}

	for _, check := range img.ByteChecks {
		value, _ := check.Value.Resolve(img.Symbols)
		if value < 0 || value > 0xff {
			err = &ErrOperand{LineNo: check.LineNo, Mnemonic: "data", Err: ErrDataRange}
			return
		}
	}

	return
}

// putLittle appends value modulo the width, least significant byte first.
func putLittle(data []byte, value uint64, width isa.Width) []byte {
	value &= width.Mask()
	for range width.Bytes() {
		data = append(data, byte(value))
		value >>= 8
	}
	return data
}

// getLittle reads a little-endian field.
func getLittle(field []byte) (value uint64) {
	for n := len(field) - 1; n >= 0; n-- {
		value = (value << 8) | uint64(field[n])
	}
	return
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/golang/glog"

	"github.com/ezrec/uasm/isa"
)

// Assembler is a single pass assembler for the μASM instruction set.
//
// Every instruction's size is fixed when it is parsed, so label offsets are
// final after one pass; values depending on labels are patched by
// relocation once the pass completes.
type Assembler struct {
	Width isa.Width // Width of instructions without register operands. WIDTH_8 if unset.

	predefine  map[string]int64 // Predefined constants.
	image      *Image           // Image under construction.
	statements []Statement      // Listing under construction.
}

// Predefine defines a new constant or redefines an existing constant. The
// name must be an identifier that is neither a register nor a mnemonic.
func (asm *Assembler) Predefine(name string, value int64) (err error) {
	if !isIdentifier(name) {
		err = ErrPredefine(name)
		return
	}
	if _, ok := isa.LookupRegister(name); ok {
		err = ErrPredefine(name)
		return
	}
	if _, ok := isa.LookupMnemonic(name); ok {
		err = ErrPredefine(name)
		return
	}

	if asm.predefine == nil {
		asm.predefine = map[string]int64{name: value}
	} else {
		asm.predefine[name] = value
	}

	return
}

// width returns the configured default width.
func (asm *Assembler) width() isa.Width {
	if asm.Width == 0 {
		return isa.WIDTH_8
	}
	return asm.Width
}

// defineLabel records a label at the current image offset.
func (asm *Assembler) defineLabel(label *Label) (err error) {
	_, duplicate := asm.image.Symbols[label.Name]
	_, predefined := asm.predefine[label.Name]
	if duplicate || predefined {
		err = &ErrSyntax{LineNo: label.LineNo, Token: label.String(), Err: ErrLabelDuplicate}
		return
	}

	asm.image.Symbols[label.Name] = asm.image.Offset()
	glog.V(1).Infof("line %d: %v = %#x", label.LineNo, label, asm.image.Offset())

	return
}

// emit encodes an instruction into the image.
func (asm *Assembler) emit(inst Instruction) (err error) {
	code, err := Encode(inst)
	if err != nil {
		return
	}

	stmt := Statement{
		LineNo:      inst.Line(),
		Offset:      asm.image.Offset(),
		Instruction: inst,
		Code:        code,
	}
	glog.V(1).Infof("line %d: %#04x %v => %v", stmt.LineNo, stmt.Offset, inst, code)

	code.Emit(asm.image, stmt.LineNo)
	asm.statements = append(asm.statements, stmt)

	return
}

// Assemble assembles an input stream into a Program.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	if !asm.width().Valid() {
		err = isa.ErrWidth(asm.width().Bits())
		return
	}

	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	asm.image = NewImage()
	asm.statements = nil
	defer func() {
		asm.image = nil
		asm.statements = nil
	}()

	tz := NewTokenizer(string(text), asm.parenEval)
	parser := NewParser(tz, asm.width(), asm.predefine)
	defer parser.Close()

	for {
		var item Item
		item, err = parser.Next()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		switch item := item.(type) {
		case *Label:
			err = asm.defineLabel(item)
		case Instruction:
			err = asm.emit(item)
		}
		if err != nil {
			return
		}
	}

	// Final patching of label references.
	err = asm.image.ApplyRelocations()
	if err != nil {
		return
	}

	prog = &Program{
		Binary:     slices.Clone(asm.image.Data),
		Symbols:    maps.Clone(asm.image.Symbols),
		Statements: slices.Clone(asm.statements),
	}

	return
}

// AssembleString assembles source text into a Program.
func (asm *Assembler) AssembleString(text string) (prog *Program, err error) {
	return asm.Assemble(strings.NewReader(text))
}

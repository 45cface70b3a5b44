package asm

import (
	"iter"
)

// Statement is an assembled instruction with its source location.
type Statement struct {
	LineNo      int
	Offset      int
	Instruction Instruction
	Code        Code
}

// Program is the result of an assembly.
type Program struct {
	Binary     []byte         // Flat machine image, starting at offset 0.
	Symbols    map[string]int // Map of labels to image offsets.
	Statements []Statement    // Instructions, in image order.
}

type Debug struct {
	*Statement
	Index int // Byte index within the statement.
}

// Debug finds the statement covering an image offset.
func (prog *Program) Debug(offset int) (dbg Debug) {
	for n, stmt := range prog.Statements {
		if offset >= stmt.Offset && offset < stmt.Offset+stmt.Code.Size() {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     offset - stmt.Offset,
			}
			break
		}
	}

	return
}

// Listing iterates over the statements and their final, relocated bytes.
func (prog *Program) Listing() iter.Seq2[*Statement, []byte] {
	return func(yield func(stmt *Statement, data []byte) bool) {
		for n := range prog.Statements {
			stmt := &prog.Statements[n]
			data := prog.Binary[stmt.Offset : stmt.Offset+stmt.Code.Size()]
			if !yield(stmt, data) {
				return
			}
		}
	}
}

// Package asm implements the assembler for the μASM toy processor.
//
// Source text is split into tokens by a Tokenizer, read one statement at a
// time by a Parser, encoded by Encode, and written to an Image. Numeric
// operands are SymInt values, so a label may be used before it is
// declared; the Image records a Relocation for every such use and patches
// it once the whole program has been emitted.
//
// The language has one statement per line: a label (.name), or a mnemonic
// and its operands. Operands are registers, expressions of integers,
// 'c'haracters and labels joined by + and -, and the bracketed addresses
// [reg], [reg:expr] and [expr:reg]. DATA and TIMES also take "strings".
// A $(...) operand is evaluated as a Starlark expression when the line is
// read.
package asm

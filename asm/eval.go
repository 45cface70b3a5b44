package asm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parenEval does compile-time $(...) evaluations, with the predefined
// constants and LINENO in scope.
func (asm *Assembler) parenEval(expr string, lineno int) (value int64, err error) {
	thread := starlark.Thread{Name: "uasm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
		"WIDTH":  starlark.MakeInt(asm.width().Bits()),
	}
	for key, value := range asm.predefine {
		pred[key] = starlark.MakeInt64(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

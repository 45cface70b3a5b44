package asm

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// SymInt is an integer whose value depends on label addresses:
// Base + Σ Coeff[label] × address(label).
//
// A SymInt is a value; the arithmetic methods never modify their operands.
type SymInt struct {
	Base  int64
	Coeff map[string]int64
}

// Constant returns a SymInt with no label dependencies.
func Constant(value int64) SymInt {
	return SymInt{Base: value}
}

// Symbol returns a SymInt equal to the address of a label.
func Symbol(label string) SymInt {
	return SymInt{Coeff: map[string]int64{label: 1}}
}

// IsConstant returns true when the value depends on no label.
func (si SymInt) IsConstant() bool {
	for _, coeff := range si.Coeff {
		if coeff != 0 {
			return false
		}
	}
	return true
}

// Add returns si + other.
func (si SymInt) Add(other SymInt) SymInt {
	return si.combine(other, 1)
}

// Sub returns si - other.
func (si SymInt) Sub(other SymInt) SymInt {
	return si.combine(other, -1)
}

// Neg returns -si.
func (si SymInt) Neg() SymInt {
	return Constant(0).Sub(si)
}

func (si SymInt) combine(other SymInt, sign int64) (out SymInt) {
	out.Base = si.Base + sign*other.Base

	coeffs := maps.Clone(si.Coeff)
	for label, coeff := range other.Coeff {
		if coeffs == nil {
			coeffs = make(map[string]int64, len(other.Coeff))
		}
		coeffs[label] += sign * coeff
	}
	maps.DeleteFunc(coeffs, func(_ string, coeff int64) bool { return coeff == 0 })
	if len(coeffs) != 0 {
		out.Coeff = coeffs
	}

	return
}

// Symbols iterates over the nonzero label coefficients, in label order.
func (si SymInt) Symbols() iter.Seq2[string, int64] {
	return func(yield func(label string, coeff int64) bool) {
		for _, label := range slices.Sorted(maps.Keys(si.Coeff)) {
			coeff := si.Coeff[label]
			if coeff == 0 {
				continue
			}
			if !yield(label, coeff) {
				return
			}
		}
	}
}

// Resolve returns the value of si given the label addresses.
func (si SymInt) Resolve(symbols map[string]int) (value int64, ok bool) {
	value = si.Base
	for label, coeff := range si.Symbols() {
		addr, found := symbols[label]
		if !found {
			return
		}
		value += coeff * int64(addr)
	}
	ok = true
	return
}

func (si SymInt) String() string {
	var sb strings.Builder

	for label, coeff := range si.Symbols() {
		switch {
		case coeff == 1 && sb.Len() == 0:
		case coeff == 1:
			sb.WriteString("+")
		case coeff == -1:
			sb.WriteString("-")
		case coeff > 0 && sb.Len() != 0:
			fmt.Fprintf(&sb, "+%d*", coeff)
		default:
			fmt.Fprintf(&sb, "%d*", coeff)
		}
		sb.WriteString(label)
	}

	switch {
	case sb.Len() == 0:
		fmt.Fprintf(&sb, "%d", si.Base)
	case si.Base > 0:
		fmt.Fprintf(&sb, "+%d", si.Base)
	case si.Base < 0:
		fmt.Fprintf(&sb, "%d", si.Base)
	}

	return sb.String()
}

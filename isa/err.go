package isa

import (
	"errors"

	"github.com/ezrec/uasm/translate"
)

var f = translate.From

var (
	ErrWidthInvalid = errors.New(f("width invalid"))
)

// ErrWidth reports an unsupported operand width, in bits.
type ErrWidth int

func (err ErrWidth) Error() string {
	return f("%d-bit width unsupported", int(err))
}

func (err ErrWidth) Unwrap() error {
	return ErrWidthInvalid
}

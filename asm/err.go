package asm

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	// Program errors
	ErrProgramEmpty = errors.New(f("program empty"))

	// Command syntax errors
	ErrAddressMissing = errors.New(f("address operand missing"))
	ErrLabelSyntax    = errors.New(f("label without closing ')'"))
	ErrLabelMissing   = errors.New(f("label name missing"))
	ErrCompMissing    = errors.New(f("comp missing"))
	ErrDestMissing    = errors.New(f("dest missing before '='"))
	ErrJumpMissing    = errors.New(f("jump missing after ';'"))

	// Symbol errors
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrSymbolDuplicate = errors.New(f("symbol duplicated"))
)

type ErrCompUnknown string

func (err ErrCompUnknown) Error() string {
	return f("'%v' is not a comp mnemonic", string(err))
}

type ErrDestUnknown string

func (err ErrDestUnknown) Error() string {
	return f("'%v' is not a dest mnemonic", string(err))
}

type ErrJumpUnknown string

func (err ErrJumpUnknown) Error() string {
	return f("'%v' is not a jump mnemonic", string(err))
}

// ErrAddressRange is an address that does not fit in 15 bits.
type ErrAddressRange string

func (err ErrAddressRange) Error() string {
	return f("address %v exceeds 15 bits", string(err))
}

type ErrSymbolInvalid string

func (err ErrSymbolInvalid) Error() string {
	return f("'%v' is not a number or symbol", string(err))
}

// ErrSyntax indicates the source line of an assembly error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

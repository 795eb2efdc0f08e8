package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Encoder translates commands into machine code, resolving symbols
// through its SymbolTable.
type Encoder struct {
	Symbols *SymbolTable
}

// NewEncoder creates an encoder over a symbol table.
func NewEncoder(st *SymbolTable) *Encoder {
	return &Encoder{Symbols: st}
}

// compBits looks up a comp mnemonic.
func compBits(mnemonic string) (bits uint16, err error) {
	bits, ok := compMap[mnemonic]
	if !ok {
		err = ErrCompUnknown(mnemonic)
	}
	return
}

// destBits looks up a dest mnemonic. Empty is null.
func destBits(mnemonic string) (bits uint16, err error) {
	if len(mnemonic) == 0 {
		mnemonic = "null"
	}
	bits, ok := destMap[mnemonic]
	if !ok {
		err = ErrDestUnknown(mnemonic)
	}
	return
}

// jumpBits looks up a jump mnemonic. Empty is null.
func jumpBits(mnemonic string) (bits uint16, err error) {
	if len(mnemonic) == 0 {
		mnemonic = "null"
	}
	bits, ok := jumpMap[mnemonic]
	if !ok {
		err = ErrJumpUnknown(mnemonic)
	}
	return
}

// EncodeComp returns the 7 bit encoding of a comp mnemonic.
func (enc *Encoder) EncodeComp(mnemonic string) (bits string, err error) {
	value, err := compBits(mnemonic)
	if err != nil {
		return
	}
	bits = fmt.Sprintf("%07b", value)
	return
}

// EncodeDest returns the 3 bit encoding of a dest mnemonic.
func (enc *Encoder) EncodeDest(mnemonic string) (bits string, err error) {
	value, err := destBits(mnemonic)
	if err != nil {
		return
	}
	bits = fmt.Sprintf("%03b", value)
	return
}

// EncodeJump returns the 3 bit encoding of a jump mnemonic.
func (enc *Encoder) EncodeJump(mnemonic string) (bits string, err error) {
	value, err := jumpBits(mnemonic)
	if err != nil {
		return
	}
	bits = fmt.Sprintf("%03b", value)
	return
}

// validSymbol reports whether a name is a legal Hack symbol: letters, digits,
// '_', '.', '$' and ':', not starting with a digit.
func validSymbol(name string) bool {
	if len(name) == 0 || unicode.IsDigit(rune(name[0])) {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("_.$:", r))
	}) < 0
}

// AddressCode encodes an A instruction operand, allocating a variable
// for unbound symbols.
func (enc *Encoder) AddressCode(operand string) (code Code, err error) {
	var address uint64

	if len(operand) == 0 {
		err = ErrAddressMissing
		return
	}

	if unicode.IsDigit(rune(operand[0])) {
		address, err = strconv.ParseUint(operand, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			err = ErrAddressRange(operand)
			return
		}
		if err != nil {
			err = ErrSymbolInvalid(operand)
			return
		}
	} else {
		if !validSymbol(operand) {
			err = ErrSymbolInvalid(operand)
			return
		}
		address = uint64(enc.Symbols.Resolve(operand))
	}

	if address > ADDRESS_LIMIT {
		err = ErrAddressRange(operand)
		return
	}

	code = MakeCodeAddress(uint16(address))
	return
}

// ComputeCode encodes a C instruction.
func (enc *Encoder) ComputeCode(cmd *ComputeCommand) (code Code, err error) {
	comp, err := compBits(cmd.Comp)
	if err != nil {
		return
	}
	dest, err := destBits(cmd.Dest)
	if err != nil {
		return
	}
	jump, err := jumpBits(cmd.Jump)
	if err != nil {
		return
	}

	code = MakeCodeCompute(comp, dest, jump)
	return
}

// EncodeAddress returns the 16 bit text encoding of an A instruction.
func (enc *Encoder) EncodeAddress(operand string) (bits string, err error) {
	code, err := enc.AddressCode(operand)
	if err != nil {
		return
	}
	bits = code.Bits()
	return
}

// EncodeCompute returns the 16 bit text encoding of a C instruction.
func (enc *Encoder) EncodeCompute(cmd *ComputeCommand) (bits string, err error) {
	code, err := enc.ComputeCode(cmd)
	if err != nil {
		return
	}
	bits = code.Bits()
	return
}

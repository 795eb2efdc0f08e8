package asm

import (
	"fmt"
	"strconv"
)

// Code is a single 16-bit Hack machine instruction.
type Code uint16

const (
	CODE_ADDRESS_MASK = Code(0x8000) // Clear for A instructions.
	CODE_COMPUTE      = Code(0xe000) // Fixed prefix of C instructions.
)

// compMap maps comp mnemonics to the a-bit and the six ALU control bits.
var compMap = map[string]uint16{
	"0":   0b0_101010,
	"1":   0b0_111111,
	"-1":  0b0_111010,
	"D":   0b0_001100,
	"A":   0b0_110000,
	"!D":  0b0_001101,
	"!A":  0b0_110001,
	"-D":  0b0_001111,
	"-A":  0b0_110011,
	"D+1": 0b0_011111,
	"A+1": 0b0_110111,
	"D-1": 0b0_001110,
	"A-1": 0b0_110010,
	"D+A": 0b0_000010,
	"D-A": 0b0_010011,
	"A-D": 0b0_000111,
	"D&A": 0b0_000000,
	"D|A": 0b0_010101,
	"M":   0b1_110000,
	"!M":  0b1_110001,
	"-M":  0b1_110011,
	"M+1": 0b1_110111,
	"M-1": 0b1_110010,
	"D+M": 0b1_000010,
	"D-M": 0b1_010011,
	"M-D": 0b1_000111,
	"D&M": 0b1_000000,
	"D|M": 0b1_010101,
}

// destMap maps dest mnemonics to the A, D, M store bits.
var destMap = map[string]uint16{
	"null": 0b000,
	"M":    0b001,
	"D":    0b010,
	"MD":   0b011,
	"A":    0b100,
	"AM":   0b101,
	"AD":   0b110,
	"AMD":  0b111,
}

// jumpMap maps jump mnemonics to the lt, eq, gt condition bits.
var jumpMap = map[string]uint16{
	"null": 0b000,
	"JGT":  0b001,
	"JEQ":  0b010,
	"JGE":  0b011,
	"JLT":  0b100,
	"JNE":  0b101,
	"JLE":  0b110,
	"JMP":  0b111,
}

var (
	compName = invert(compMap)
	destName = invert(destMap)
	jumpName = invert(jumpMap)
)

func invert(m map[string]uint16) (names map[uint16]string) {
	names = make(map[uint16]string, len(m))
	for name, bits := range m {
		names[bits] = name
	}
	return
}

// MakeCodeAddress creates an A instruction.
func MakeCodeAddress(address uint16) Code {
	return Code(address) & ^CODE_ADDRESS_MASK
}

// MakeCodeCompute creates a C instruction from comp, dest and jump bits.
func MakeCodeCompute(comp, dest, jump uint16) Code {
	return CODE_COMPUTE | Code(comp&0x7f)<<6 | Code(dest&0x7)<<3 | Code(jump&0x7)
}

// IsAddress returns true for A instructions.
func (code Code) IsAddress() bool {
	return code&CODE_ADDRESS_MASK == 0
}

// Address returns the value loaded by an A instruction.
func (code Code) Address() int {
	return int(code & ^CODE_ADDRESS_MASK)
}

// ComputeDecode returns the comp, dest and jump fields of a C instruction.
func (code Code) ComputeDecode() (comp, dest, jump uint16) {
	word := uint16(code)
	comp = (word >> 6) & 0x7f
	dest = (word >> 3) & 0x7
	jump = (word >> 0) & 0x7
	return
}

// Bits returns the 16 character binary text of the instruction.
func (code Code) Bits() string {
	return fmt.Sprintf("%016b", uint16(code))
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	if code.IsAddress() {
		return "@" + strconv.Itoa(code.Address())
	}

	comp, dest, jump := code.ComputeDecode()

	name, ok := compName[comp]
	if !ok {
		name = fmt.Sprintf("?%07b", comp)
	}

	out = name
	if dest != destMap["null"] {
		out = destName[dest] + "=" + out
	}
	if jump != jumpMap["null"] {
		out = out + ";" + jumpName[jump]
	}

	return
}

package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Address(t *testing.T) {
	assert := assert.New(t)

	code := MakeCodeAddress(21)
	assert.True(code.IsAddress())
	assert.Equal(21, code.Address())
	assert.Equal("0000000000010101", code.Bits())
	assert.Equal("@21", code.String())

	code = MakeCodeAddress(0xffff)
	assert.True(code.IsAddress())
	assert.Equal(ADDRESS_LIMIT, code.Address())
	assert.Equal("0111111111111111", code.Bits())
}

func TestCode_Compute(t *testing.T) {
	assert := assert.New(t)

	code := MakeCodeCompute(compMap["D+A"], destMap["D"], jumpMap["null"])
	assert.False(code.IsAddress())
	assert.Equal("1110000010010000", code.Bits())
	assert.Equal("D=D+A", code.String())

	comp, dest, jump := code.ComputeDecode()
	assert.Equal(compMap["D+A"], comp)
	assert.Equal(destMap["D"], dest)
	assert.Equal(jumpMap["null"], jump)

	code = MakeCodeCompute(compMap["M-1"], destMap["AMD"], jumpMap["JLE"])
	assert.Equal("1111110010111110", code.Bits())
	assert.Equal("AMD=M-1;JLE", code.String())

	code = MakeCodeCompute(compMap["0"], destMap["null"], jumpMap["JMP"])
	assert.Equal("1110101010000111", code.Bits())
	assert.Equal("0;JMP", code.String())

	// Not an ALU function of the Hack ISA.
	code = MakeCodeCompute(0b0_000001, 0, 0)
	assert.Equal("?0000001", code.String())
}

func TestCode_Disassemble(t *testing.T) {
	assert := assert.New(t)

	for comp, cb := range compMap {
		for dest, db := range destMap {
			for jump, jb := range jumpMap {
				code := MakeCodeCompute(cb, db, jb)
				cmd := &ComputeCommand{Comp: comp}
				if dest != "null" {
					cmd.Dest = dest
				}
				if jump != "null" {
					cmd.Jump = jump
				}
				assert.Equal(cmd.String(), code.String())
				assert.Equal("111", code.Bits()[:3])
				assert.Len(code.Bits(), 16)
			}
		}
	}
}

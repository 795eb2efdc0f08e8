package asm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Instructions: []Instruction{
			{LineNo: 1, Address: 0, Source: "@2", Code: MakeCodeAddress(2)},
			{LineNo: 2, Address: 1, Source: "D=A", Code: MakeCodeCompute(compMap["A"], destMap["D"], jumpMap["null"])},
			{LineNo: 4, Address: 2, Source: "0;JMP", Code: MakeCodeCompute(compMap["0"], destMap["null"], jumpMap["JMP"])},
		},
	}
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	assert.Equal([]uint16{0x0002, 0xec10, 0xea87}, prog.Binary())

	var addresses []int
	for address := range prog.Words() {
		addresses = append(addresses, address)
		if address == 1 {
			break
		}
	}
	assert.Equal([]int{0, 1}, addresses)

	assert.Nil((&Program{}).Binary())
}

func TestProgram_WriteTo(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	n, err := testProgram().WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(51), n)
	assert.Equal("0000000000000010\n1110110000010000\n1110101010000111\n", buf.String())
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestProgram_WriteTo_Error(t *testing.T) {
	assert := assert.New(t)

	_, err := testProgram().WriteTo(failWriter{})
	assert.ErrorIs(err, errWrite)
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(2)
	assert.NotNil(dbg.Instruction)
	assert.Equal(4, dbg.LineNo)
	assert.Equal("0;JMP", dbg.Source)
	assert.Equal("0;JMP", dbg.Code.String())

	assert.Nil(prog.Debug(3).Instruction)
	assert.Nil(prog.Debug(-1).Instruction)
}

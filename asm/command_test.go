package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		cmd  Command
	}){
		{"@154", &AddressCommand{Operand: "154"}},
		{"@test", &AddressCommand{Operand: "test"}},
		{"(Loop)", &LabelCommand{Name: "Loop"}},
		{"M", &ComputeCommand{Comp: "M"}},
		{"M=M+1", &ComputeCommand{Dest: "M", Comp: "M+1"}},
		{"A=D;JMP", &ComputeCommand{Dest: "A", Comp: "D", Jump: "JMP"}},
		{"D;JEQ", &ComputeCommand{Comp: "D", Jump: "JEQ"}},
		{"(Loop)//Test comment", &LabelCommand{Name: "Loop"}},
		{"D=M+1;JEQ //test", &ComputeCommand{Dest: "D", Comp: "M+1", Jump: "JEQ"}},
		{"\t  @R0  ", &AddressCommand{Operand: "R0"}},
		{"0;JMP", &ComputeCommand{Comp: "0", Jump: "JMP"}},
		{"AMD=D|A", &ComputeCommand{Dest: "AMD", Comp: "D|A"}},
		{"D = D + A", &ComputeCommand{Dest: "D", Comp: "D + A"}},
	}

	for _, entry := range table {
		cmd, err := ParseCommand(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.cmd, cmd, entry.line)
	}
}

func TestParseCommand_Empty(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{"", "   ", "\t", "// comment only", "   // indented comment", "//"} {
		cmd, err := ParseCommand(line)
		assert.NoError(err, line)
		assert.Nil(cmd, line)
	}
}

func TestParseCommand_Malformed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"@", ErrAddressMissing},
		{"@ // nothing", ErrAddressMissing},
		{"(LOOP", ErrLabelSyntax},
		{"()", ErrLabelMissing},
		{"(123)", ErrSymbolInvalid("123")},
		{"(X)(Y)", ErrSymbolInvalid("X)(Y")},
		{"(A B)", ErrSymbolInvalid("A B")},
		{"=D", ErrDestMissing},
		{"D=", ErrCompMissing},
		{"D;", ErrJumpMissing},
		{";JMP", ErrCompMissing},
		{"D=;JMP", ErrCompMissing},
	}

	for _, entry := range table {
		cmd, err := ParseCommand(entry.line)
		assert.Nil(cmd, entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
	}
}

func TestCommand_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("@LOOP", (&AddressCommand{Operand: "LOOP"}).String())
	assert.Equal("(LOOP)", (&LabelCommand{Name: "LOOP"}).String())
	assert.Equal("D", (&ComputeCommand{Comp: "D"}).String())
	assert.Equal("MD=M-1;JGT", (&ComputeCommand{Dest: "MD", Comp: "M-1", Jump: "JGT"}).String())

	assert.Equal(COMMAND_ADDRESS, (&AddressCommand{}).Type())
	assert.Equal(COMMAND_COMPUTE, (&ComputeCommand{}).Type())
	assert.Equal(COMMAND_LABEL, (&LabelCommand{}).Type())

	assert.Equal("address", COMMAND_ADDRESS.String())
	assert.Equal("compute", COMMAND_COMPUTE.String())
	assert.Equal("label", COMMAND_LABEL.String())
	assert.Equal("CommandType(7)", CommandType(7).String())
}

package asm

import (
	"bufio"
	"io"
	"iter"
)

// Instruction is one assembled machine word with its source location.
type Instruction struct {
	LineNo  int    // Source line number.
	Address int    // Instruction memory address.
	Source  string // Source text, without comments.
	Code    Code   // Machine code.
}

// Program is the output of the assembler.
type Program struct {
	Instructions []Instruction
}

type Debug struct {
	*Instruction
}

// Debug returns the instruction at an address, if any.
func (prog *Program) Debug(address int) (dbg Debug) {
	if address >= 0 && address < len(prog.Instructions) {
		dbg.Instruction = &prog.Instructions[address]
	}
	return
}

// Words iterates the machine code by address.
func (prog *Program) Words() iter.Seq2[int, Code] {
	return func(yield func(address int, code Code) bool) {
		for _, ins := range prog.Instructions {
			if !yield(ins.Address, ins.Code) {
				return
			}
		}
	}
}

// Binary returns the machine code words.
func (prog *Program) Binary() (bins []uint16) {
	for _, code := range prog.Words() {
		bins = append(bins, uint16(code))
	}

	return
}

// WriteTo writes the program in .hack text form, one binary word per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)

	for _, code := range prog.Words() {
		var wrote int
		wrote, err = bw.WriteString(code.Bits() + "\n")
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

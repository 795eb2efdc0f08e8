// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"maps"
	"slices"
)

// Assembler is a two pass assembler for the Hack computer.
type Assembler struct {
	Verbose bool         // If set, verbosely logs the assembler actions.
	Symbols *SymbolTable // Symbol table of the last successful Parse.

	predefine map[string]int // Predefines
}

// Predefine adds a symbol to the table of every subsequent Parse.
func (asm *Assembler) Predefine(name string, address int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: address}
	} else {
		asm.predefine[name] = address
	}
}

// newSymbolTable creates the symbol table for a run.
func (asm *Assembler) newSymbolTable() (st *SymbolTable, err error) {
	st = NewSymbolTable()
	for _, name := range slices.Sorted(maps.Keys(asm.predefine)) {
		err = st.Predefine(name, asm.predefine[name])
		if err != nil {
			err = &ErrSyntax{Line: name, Err: err}
			return
		}
	}
	return
}

// bindLabels is the first pass: bind every label to the address
// of the instruction that follows it.
func (asm *Assembler) bindLabels(p *Parser, st *SymbolTable) (err error) {
	counter := 0

	for p.Advance() {
		if asm.Verbose {
			log.Printf("%v: %v\n", p.LineNo(), p.Line())
		}

		switch cmd := p.Command().(type) {
		case *LabelCommand:
			if !st.BindLabel(cmd.Name, counter) {
				err = &ErrSyntax{LineNo: p.LineNo(), Line: p.Line(), Err: ErrLabelDuplicate}
				return
			}
		default:
			counter++
		}
	}

	if asm.Verbose {
		log.Printf("first pass over: %v instructions\n", counter)
	}

	return
}

// emit is the second pass: encode every instruction in source order.
func (asm *Assembler) emit(p *Parser, st *SymbolTable) (prog *Program, err error) {
	enc := NewEncoder(st)
	prog = &Program{}

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: p.LineNo(), Line: p.Line(), Err: err}
			prog = nil
		}
	}()

	p.Rewind()
	for p.Advance() {
		var code Code

		switch cmd := p.Command().(type) {
		case *LabelCommand:
			continue
		case *AddressCommand:
			code, err = enc.AddressCode(cmd.Operand)
		case *ComputeCommand:
			code, err = enc.ComputeCode(cmd)
		}
		if err != nil {
			return
		}

		ins := Instruction{
			LineNo:  p.LineNo(),
			Address: len(prog.Instructions),
			Source:  p.Line(),
			Code:    code,
		}
		if asm.Verbose {
			log.Printf("%v: %04x %v\n", ins.LineNo, ins.Address, ins.Code.Bits())
		}
		prog.Instructions = append(prog.Instructions, ins)
	}

	if asm.Verbose {
		log.Printf("end of assembly: %v instructions, %v symbols\n", len(prog.Instructions), st.Len())
	}

	return
}

// Parse assembles an input stream into a Program.
// Nothing is returned on failure; the error is an *ErrSyntax for the
// offending line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	st, err := asm.newSymbolTable()
	if err != nil {
		return
	}

	p, err := NewParser(input)
	if err != nil {
		return
	}

	if p.Len() == 0 {
		err = ErrProgramEmpty
		return
	}

	err = asm.bindLabels(p, st)
	if err != nil {
		return
	}

	prog, err = asm.emit(p, st)
	if err != nil {
		return
	}

	asm.Symbols = st

	return
}

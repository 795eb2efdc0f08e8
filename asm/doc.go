// Package asm implements the two-pass assembler for the Hack computer.
//
// Source lines are classified into address (@value), compute (dest=comp;jump)
// and label ((NAME)) commands. The first pass binds labels to the address of
// the instruction that follows them, the second pass resolves symbols through
// the SymbolTable and encodes each instruction into a 16-bit Code using the
// fixed comp, dest and jump tables of the Hack ISA.
package asm

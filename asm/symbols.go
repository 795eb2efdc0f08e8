package asm

import (
	"iter"
	"strconv"

	"github.com/ezrec/hackasm/internal"
)

const (
	VARIABLE_BASE = 16     // First address allocated to variables.
	ADDRESS_LIMIT = 0x7fff // Largest address an A instruction can load.
)

// SymbolKind records how a symbol was bound.
type SymbolKind int

//go:generate go tool stringer -linecomment -type=SymbolKind
const (
	SYMBOL_PREDEFINED = SymbolKind(0) // predefined
	SYMBOL_LABEL      = SymbolKind(1) // label
	SYMBOL_VARIABLE   = SymbolKind(2) // variable
)

// Symbol is a bound address.
type Symbol struct {
	Address int
	Kind    SymbolKind
}

// Predefined Hack system symbols
var sysSymbol = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SCREEN": 16384,
	"KBD":    24576,
}

// SystemSymbols returns the predefined Hack symbols in name order.
func SystemSymbols() iter.Seq2[string, int] {
	return internal.IterSortedMap(sysSymbol)
}

// SymbolTable maps symbol names to addresses.
// Once bound, a symbol never changes address.
type SymbolTable struct {
	symbol    map[string]Symbol
	labels    []string // Labels, in binding order.
	variables []string // Variables, in allocation order.
	next      int      // Next variable address.
}

// NewSymbolTable creates a table seeded with the predefined symbols.
func NewSymbolTable() (st *SymbolTable) {
	st = &SymbolTable{
		symbol: make(map[string]Symbol, len(sysSymbol)),
		next:   VARIABLE_BASE,
	}

	for name, address := range sysSymbol {
		st.symbol[name] = Symbol{Address: address, Kind: SYMBOL_PREDEFINED}
	}

	return
}

// Predefine adds a predefined symbol.
func (st *SymbolTable) Predefine(name string, address int) (err error) {
	if address < 0 || address > ADDRESS_LIMIT {
		err = ErrAddressRange(strconv.Itoa(address))
		return
	}

	_, ok := st.symbol[name]
	if ok {
		err = ErrSymbolDuplicate
		return
	}

	st.symbol[name] = Symbol{Address: address, Kind: SYMBOL_PREDEFINED}
	return
}

// Resolve returns the address of a symbol, allocating the next
// variable address if the symbol is unbound.
func (st *SymbolTable) Resolve(name string) (address int) {
	sym, ok := st.symbol[name]
	if ok {
		return sym.Address
	}

	address = st.next
	st.next++
	st.symbol[name] = Symbol{Address: address, Kind: SYMBOL_VARIABLE}
	st.variables = append(st.variables, name)

	return
}

// BindLabel binds a label to an address. It returns false, leaving
// the table unchanged, if the name is already bound.
func (st *SymbolTable) BindLabel(name string, address int) (ok bool) {
	_, bound := st.symbol[name]
	if bound {
		return
	}

	st.symbol[name] = Symbol{Address: address, Kind: SYMBOL_LABEL}
	st.labels = append(st.labels, name)

	return true
}

// Lookup returns a bound symbol.
func (st *SymbolTable) Lookup(name string) (sym Symbol, ok bool) {
	sym, ok = st.symbol[name]
	return
}

// Len returns the number of bound symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbol)
}

// Next returns the address the next new variable will receive.
func (st *SymbolTable) Next() int {
	return st.next
}

// Predefined iterates the predefined symbols in name order.
func (st *SymbolTable) Predefined() iter.Seq2[string, Symbol] {
	predefined := make(map[string]Symbol, len(sysSymbol))
	for name, sym := range st.symbol {
		if sym.Kind == SYMBOL_PREDEFINED {
			predefined[name] = sym
		}
	}
	return internal.IterSortedMap(predefined)
}

// Labels iterates the labels in binding order.
func (st *SymbolTable) Labels() iter.Seq2[string, Symbol] {
	return internal.IterSliceLookup(st.labels, st.symbol)
}

// Variables iterates the variables in allocation order.
func (st *SymbolTable) Variables() iter.Seq2[string, Symbol] {
	return internal.IterSliceLookup(st.variables, st.symbol)
}

// All iterates every symbol: predefined, then labels, then variables.
func (st *SymbolTable) All() iter.Seq2[string, Symbol] {
	return internal.IterSeq2Concat(st.Predefined(), st.Labels(), st.Variables())
}

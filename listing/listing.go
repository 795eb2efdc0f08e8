// Package listing writes the symbol map of an assembled program.
package listing

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/hackasm/asm"
)

// Symbols is the YAML form of a symbol table.
type Symbols struct {
	Predefined map[string]int `yaml:"predefined"`
	Labels     map[string]int `yaml:"labels"`
	Variables  map[string]int `yaml:"variables"`
}

// FromTable collects the symbols of a table by kind.
func FromTable(st *asm.SymbolTable) (syms *Symbols) {
	syms = &Symbols{
		Predefined: map[string]int{},
		Labels:     map[string]int{},
		Variables:  map[string]int{},
	}

	for name, sym := range st.All() {
		switch sym.Kind {
		case asm.SYMBOL_PREDEFINED:
			syms.Predefined[name] = sym.Address
		case asm.SYMBOL_LABEL:
			syms.Labels[name] = sym.Address
		case asm.SYMBOL_VARIABLE:
			syms.Variables[name] = sym.Address
		}
	}

	return
}

// WriteSymbols writes the symbol table as YAML.
func WriteSymbols(w io.Writer, st *asm.SymbolTable) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(FromTable(st))
	if err != nil {
		return
	}

	err = enc.Close()
	return
}

// ReadSymbols reads a symbol map written by WriteSymbols.
func ReadSymbols(r io.Reader) (syms *Symbols, err error) {
	syms = &Symbols{}
	err = yaml.NewDecoder(r).Decode(syms)
	if err != nil {
		syms = nil
	}
	return
}

// Map writes a symbol table as YAML through io.WriterTo.
type Map struct {
	Table *asm.SymbolTable
}

func (m Map) WriteTo(w io.Writer) (n int64, err error) {
	var buf bytes.Buffer
	err = WriteSymbols(&buf, m.Table)
	if err != nil {
		return
	}
	return buf.WriteTo(w)
}

package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hackasm/asm"
)

// LoadStarlark evaluates a Starlark configuration. The script sets the
// globals 'symbols' (dict of name to address), 'extension' and 'verbose'.
// The Hack system symbols are predeclared.
func LoadStarlark(name string, src []byte) (cfg *Config, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for sym, address := range asm.SystemSymbols() {
		pred[sym] = starlark.MakeInt(address)
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		return
	}

	cfg = Default()
	defer func() {
		if err != nil {
			cfg = nil
		}
	}()

	if value, ok := globals["symbols"]; ok {
		cfg.Symbols, err = symbolsOf(value)
		if err != nil {
			return
		}
	}

	if value, ok := globals["extension"]; ok {
		str, ok := value.(starlark.String)
		if !ok {
			err = ErrConfigValue
			return
		}
		cfg.Extension = string(str)
	}

	if value, ok := globals["verbose"]; ok {
		flag, ok := value.(starlark.Bool)
		if !ok {
			err = ErrConfigValue
			return
		}
		cfg.Verbose = bool(flag)
	}

	err = cfg.normalize()
	return
}

// symbolsOf converts a Starlark dict of string to int.
func symbolsOf(value starlark.Value) (symbols map[string]int, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrConfigValue
		return
	}

	symbols = make(map[string]int, dict.Len())
	for _, item := range dict.Items() {
		key, ok := item[0].(starlark.String)
		if !ok {
			err = ErrConfigValue
			return
		}
		st_int, ok := item[1].(starlark.Int)
		if !ok {
			err = ErrConfigValue
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok {
			err = ErrConfigValue
			return
		}
		symbols[string(key)] = int(st_int64)
	}

	return
}

// Package config loads assembler configuration from YAML or Starlark files.
package config

import (
	"errors"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/hackasm/asm"
	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	ErrConfigFormat = errors.New(f("configuration format unknown"))
	ErrConfigValue  = errors.New(f("configuration value invalid"))
)

// DEFAULT_EXTENSION is the extension of assembled output files.
const DEFAULT_EXTENSION = ".hack"

// Config is the assembler configuration.
type Config struct {
	Symbols   map[string]int `yaml:"symbols"`   // Extra predefined symbols.
	Extension string         `yaml:"extension"` // Output file extension.
	Verbose   bool           `yaml:"verbose"`   // Verbose assembly logging.
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Extension: DEFAULT_EXTENSION,
	}
}

// normalize fills defaults and validates the configuration.
func (cfg *Config) normalize() (err error) {
	if len(cfg.Extension) == 0 {
		cfg.Extension = DEFAULT_EXTENSION
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if strings.ContainsAny(cfg.Extension, `/\`) {
		err = ErrConfigValue
		return
	}

	for name, address := range cfg.Symbols {
		if len(name) == 0 || address < 0 || address > asm.ADDRESS_LIMIT {
			err = ErrConfigValue
			return
		}
	}

	return
}

// LoadYAML reads a YAML configuration.
func LoadYAML(r io.Reader) (cfg *Config, err error) {
	cfg = Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.normalize()
	if err != nil {
		cfg = nil
	}

	return
}

// Load reads a configuration file, selecting the format by extension:
// .yaml and .yml are YAML, .star is Starlark.
func Load(path string) (cfg *Config, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()
		cfg, err = LoadYAML(inf)
	case ".star":
		var src []byte
		src, err = os.ReadFile(path)
		if err != nil {
			return
		}
		cfg, err = LoadStarlark(path, src)
	default:
		err = ErrConfigFormat
	}

	return
}

// Apply configures an assembler.
func (cfg *Config) Apply(as *asm.Assembler) {
	for _, name := range slices.Sorted(maps.Keys(cfg.Symbols)) {
		as.Predefine(name, cfg.Symbols[name])
	}
	as.Verbose = as.Verbose || cfg.Verbose
}

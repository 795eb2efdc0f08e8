package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ezrec/hackasm/asm"
	"github.com/ezrec/hackasm/config"
	hackio "github.com/ezrec/hackasm/io"
	"github.com/ezrec/hackasm/listing"
	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	ErrInputMissing   = errors.New(f("exactly one input file required"))
	ErrOutputIsSource = errors.New(f("output would overwrite the source"))
)

var (
	OutputFlag = &cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file. Default: input with the configured extension",
	}
	ConfigFlag = &cli.PathFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Configuration file (.yaml, .yml or .star)",
	}
	SymbolsFlag = &cli.PathFlag{
		Name:    "symbols",
		Aliases: []string{"s"},
		Usage:   "Write the symbol table as YAML to this file",
	}
	VerboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Log assembler passes",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "hackasm"
	app.Usage = "Hack assembler"
	app.Description = "Translates Hack assembly (.asm) into Hack machine code (.hack)"
	app.ArgsUsage = "<file.asm>"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		OutputFlag,
		ConfigFlag,
		SymbolsFlag,
		VerboseFlag,
	}
	app.Action = Assemble
	return app
}

// outputPath replaces the extension of the input with ext.
func outputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// samePath reports whether a and b name the same file.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// commit atomically writes src to path.
func commit(path string, src io.WriterTo) error {
	dir, name := filepath.Split(path)
	if len(dir) == 0 {
		dir = "."
	}
	return hackio.Commit(hackio.DirFS(dir), name, src)
}

// Assemble is the command line action.
func Assemble(ctx *cli.Context) (err error) {
	if ctx.NArg() != 1 {
		cli.ShowAppHelp(ctx)
		return ErrInputMissing
	}
	source := ctx.Args().First()

	cfg := config.Default()
	if path := ctx.Path(ConfigFlag.Name); len(path) != 0 {
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
	}

	output := ctx.Path(OutputFlag.Name)
	if len(output) == 0 {
		output = outputPath(source, cfg.Extension)
	}
	if samePath(output, source) {
		return fmt.Errorf("%v: %w", output, ErrOutputIsSource)
	}

	as := &asm.Assembler{Verbose: ctx.Bool(VerboseFlag.Name)}
	cfg.Apply(as)

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := as.Parse(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}

	// The symbol map is committed first, so a failure leaves no output.
	if path := ctx.Path(SymbolsFlag.Name); len(path) != 0 {
		if samePath(path, source) {
			return fmt.Errorf("%v: %w", path, ErrOutputIsSource)
		}
		var symbols bytes.Buffer
		_, err = listing.Map{Table: as.Symbols}.WriteTo(&symbols)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		err = commit(path, &symbols)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
	}

	err = commit(output, prog)
	if err != nil {
		return fmt.Errorf("%v: %w", output, err)
	}

	return
}

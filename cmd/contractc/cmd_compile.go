package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"covenant/compiler"
	"covenant/parser"
)

// compileCmd parses and compiles a contract source file, writing the
// encoded contract bytes alongside it.
type compileCmd struct {
	disassemble bool
	outPath     string
}

func (*compileCmd) Name() string     { return "compile" }
func (*compileCmd) Synopsis() string { return "Compile a contract source file to bytecode" }
func (*compileCmd) Usage() string {
	return `compile <file>:
  Parse and compile a contract source file, writing <file>.contract.
`
}

func (cmd *compileCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.disassemble, "disassemble", false, "also print a disassembly of the compiled bytecode")
	f.StringVar(&cmd.outPath, "out", "", "output path for the compiled contract (default: <file>.contract)")
}

func (cmd *compileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 file not provided\n")
		return subcommands.ExitUsageError
	}
	srcPath := args[0]

	data, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	nodes, err := parser.ParseSource(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 parse error:\n\t%v\n", err)
		return subcommands.ExitFailure
	}
	logrus.Debugf("parsed %d top-level nodes from %s", len(nodes), srcPath)

	c, err := compiler.Compile(nodes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 compile error:\n\t%v\n", err)
		return subcommands.ExitFailure
	}
	logrus.Debugf("compiled to %d data-table entries, %d bytecode bytes", len(c.DataTable), len(c.Bytecode))

	outPath := cmd.outPath
	if outPath == "" {
		outPath = strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".contract"
	}
	if err := os.WriteFile(outPath, c.Encode(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to write compiled contract: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("wrote %s\n", outPath)

	if cmd.disassemble {
		disasm, err := c.Disassemble()
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 disassemble error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(disasm)
	}

	return subcommands.ExitSuccess
}

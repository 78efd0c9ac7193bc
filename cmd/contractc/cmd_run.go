package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"covenant/compiler"
	"covenant/contract"
	"covenant/interpreter"
	"covenant/parser"
)

// runCmd compiles (or loads) a contract and interprets it against a
// set of input values given as trailing positional arguments, in the
// same order the contract's "given parameters" declared them.
type runCmd struct {
	compiled bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Run a contract against a set of input values" }
func (*runCmd) Usage() string {
	return `run [-compiled] <file> [input...]:
  Interpret a contract against positional input values, in declared
  parameter order. Use -compiled to load an already-compiled
  .contract file instead of source.
`
}

func (cmd *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.compiled, "compiled", false, "treat <file> as an already-compiled contract")
}

func (cmd *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 file not provided\n")
		return subcommands.ExitUsageError
	}
	path := args[0]
	inputs := parseInputValues(args[1:])

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	var c contract.Contract
	if cmd.compiled {
		c, err = contract.Decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 decode error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		nodes, err := parser.ParseSource(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 parse error:\n\t%v\n", err)
			return subcommands.ExitFailure
		}
		c, err = compiler.Compile(nodes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 compile error:\n\t%v\n", err)
			return subcommands.ExitFailure
		}
	}
	logrus.Debugf("running with %d inputs against %d bytecode bytes", len(inputs), len(c.Bytecode))

	result, err := interpreter.Interpret(inputs, c.DataTable, c.Bytecode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 runtime error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(result)
	return subcommands.ExitSuccess
}

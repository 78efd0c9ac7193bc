package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"covenant/contract"
)

// disasmCmd decodes a compiled contract file and prints its bytecode
// and data table in human-readable form.
type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "Disassemble a compiled contract file" }
func (*disasmCmd) Usage() string {
	return `disasm <file.contract>:
  Decode a compiled contract and print its data table and bytecode.
`
}
func (*disasmCmd) SetFlags(f *flag.FlagSet) {}

func (*disasmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 file not provided\n")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	c, err := contract.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 decode error: %v\n", err)
		return subcommands.ExitFailure
	}

	disasm, err := c.Disassemble()
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 disassemble error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(disasm)
	return subcommands.ExitSuccess
}

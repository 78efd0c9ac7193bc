package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"covenant/compiler"
	"covenant/interpreter"
	"covenant/parser"
)

// replCmd is an interactive session: each accumulated buffer is
// parsed and compiled as a standalone contract, then immediately
// interpreted against inputs supplied after a "::" separator on the
// same line, e.g. `$a must be equal to 1 :: 1`.
type replCmd struct {
	dumpAST bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive contract session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive REPL. End a line with "::" followed by
  space-separated input values to interpret it immediately, e.g.:
    given parameters $a
    $a must be equal to 1 :: 1
`
}

func (cmd *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.dumpAST, "dumpAST", false, "print the parsed AST as JSON before compiling")
}

func (cmd *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to start line editor: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	fmt.Println("covenant contract REPL — type \"exit\" to quit")

	var buffer strings.Builder
	for {
		prompt := ">>> "
		if buffer.Len() > 0 {
			prompt = "... "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			return subcommands.ExitSuccess
		}
		if strings.TrimSpace(line) == "exit" && buffer.Len() == 0 {
			return subcommands.ExitSuccess
		}

		source, inputArgs, hasInputs := strings.Cut(line, "::")
		if buffer.Len() > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(source)
		fullSource := buffer.String()

		nodes, err := parser.ParseSource(fullSource)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			buffer.Reset()
			continue
		}
		logrus.Debugf("parsed %d top-level nodes", len(nodes))

		if cmd.dumpAST {
			if jsonStr, err := parser.PrintAST(nodes); err == nil {
				fmt.Println(jsonStr)
			}
		}

		c, err := compiler.Compile(nodes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			buffer.Reset()
			continue
		}

		if !hasInputs {
			continue
		}

		inputs := parseInputValues(strings.Fields(inputArgs))
		result, err := interpreter.Interpret(inputs, c.DataTable, c.Bytecode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Println(result)
		}
		buffer.Reset()
	}
}

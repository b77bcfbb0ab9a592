// Command reactorc is the compiler and runtime driver for the reactor
// language: lex, parse, type-check and translate a program, then step
// its dataflow graph to completion.
package main

import (
	"fmt"
	"os"

	"github.com/reactor-lang/reactorc/cmd/reactorc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

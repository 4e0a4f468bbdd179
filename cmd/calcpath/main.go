// Package main provides the entry point for the calcpath CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/calcpath/cmd/calcpath/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(commands.ExitCode(err))
}

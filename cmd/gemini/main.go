// Package main provides the entry point for the gemini CLI.
package main

import (
	"os"

	"github.com/dacian3/gemini-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

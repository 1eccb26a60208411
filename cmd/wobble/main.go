package main

import (
	"os"

	"github.com/wobble-lang/wobble/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

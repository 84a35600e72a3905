package main

import (
	"os"

	"github.com/pushrec-dev/pushrec/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

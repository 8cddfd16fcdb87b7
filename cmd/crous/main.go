package main

import (
	"os"

	"github.com/kbukum/crousapi/cmd/crous/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

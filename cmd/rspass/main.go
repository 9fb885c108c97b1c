package main

import (
	"os"

	"rspass/cmd/rspass/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

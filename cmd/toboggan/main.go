package main

import (
	"os"

	"toboggan/cmd/toboggan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

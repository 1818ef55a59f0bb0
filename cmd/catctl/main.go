package main

import (
	"os"

	"cat-breed-catalog/cmd/catctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

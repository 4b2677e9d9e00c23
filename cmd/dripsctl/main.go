package main

import (
	"os"

	"github.com/drips-network/go-drips/cmd/dripsctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/ryvens/repdash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/BruksfildServices01/headz-api/cmd/headzctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"autojson/cmd/autojson/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

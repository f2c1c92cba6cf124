package main

import (
	"os"

	"github.com/aurgo/aurgo-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/rustyeddy/ticklab/cmd/ticklab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

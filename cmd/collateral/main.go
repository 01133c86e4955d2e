package main

import (
	"os"

	"github.com/rustyeddy/collateral/cmd/collateral/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

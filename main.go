package main

import (
	"os"

	"github.com/trovelabs/trove-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

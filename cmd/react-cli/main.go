package main

import (
	"os"

	"github.com/reactcli/react-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

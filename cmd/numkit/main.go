package main

import (
	"os"

	"github.com/katalvlaran/numkit/cmd/numkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

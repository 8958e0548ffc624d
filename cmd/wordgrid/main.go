// Command wordgrid finds dictionary words on a square letter board.
package main

import (
	"os"

	"github.com/katalvlaran/wordgrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

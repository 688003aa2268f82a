// Command supercell inspects periodic unit cells from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/lattice/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}

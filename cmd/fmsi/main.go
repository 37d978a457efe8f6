// Package main provides fmsi, a canonical k-mer FM-index over masked
// superstrings.
package main

import (
	"os"

	"github.com/fmsi-go/fmsi/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
}

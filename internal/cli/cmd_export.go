package cli

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/build"
	"github.com/fmsi-go/fmsi/fmindex"

	flag "github.com/spf13/pflag"
)

// exportCmd implements spec §6's `export` subcommand: print the indexed
// masked superstring, case-encoding the mask the same way build input does
// (upper-case = 1, lower-case = 0).
func exportCmd() *Command {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)

	return &Command{
		Name:  "export",
		Usage: "<base-name>",
		Short: "print the indexed masked superstring",
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(args) != 1 {
				o.ErrPrintln("error: export requires <base-name>")
				return 1
			}
			idx, err := build.Load(args[0], build.LoadOptions{})
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			bases, mask := fmindex.Export(idx)
			o.Printf(">%s\n%s\n", args[0], renderMaskedSuperstring(bases, mask))
			return 0
		},
	}
}

// renderMaskedSuperstring case-encodes bases by mask, the inverse of
// fasta.ParseMaskedSuperstring.
func renderMaskedSuperstring(bases []alphabet.Base, mask []bool) string {
	out := make([]byte, len(bases))
	for i, b := range bases {
		c := alphabet.Decode(b)
		if !mask[i] {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

package cli

import (
	"github.com/fmsi-go/fmsi/build"
	"github.com/fmsi-go/fmsi/fasta"

	flag "github.com/spf13/pflag"
)

// indexCmd implements spec §6's `index` subcommand: build and write an
// index from a masked-superstring FASTA file.
func indexCmd() *Command {
	flags := flag.NewFlagSet("index", flag.ContinueOnError)
	k := flags.IntP("k", "k", 0, "k-mer length (default 31 if omitted)")
	noKLCP := flags.BoolP("x", "x", false, "omit the kLCP streaming support")

	return &Command{
		Name:  "index",
		Usage: "[-k INT] [-x] <input.fasta> <base-name>",
		Short: "build and write an index from a masked superstring",
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(args) != 2 {
				o.ErrPrintln("error: index requires <input.fasta> and <base-name>")
				return 1
			}
			kmer := *k
			if kmer == 0 {
				kmer = defaultK
			}

			f, err := openInput(o.In, args[0])
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			defer f.Close()

			bases, mask, comp, err := fasta.ParseMaskedSuperstring(f)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			o.ErrPrintf("index: %d bases (A=%d C=%d G=%d T=%d)\n", len(bases), comp.A, comp.C, comp.G, comp.T)

			idx, err := build.Build(bases, mask, kmer, build.Options{WithKLCP: !*noKLCP})
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}

			if err := build.Save(idx, args[1]); err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			return 0
		},
	}
}

package cli

import (
	"github.com/fmsi-go/fmsi/build"
	"github.com/fmsi-go/fmsi/compact"
	"github.com/fmsi-go/fmsi/fmindex"

	flag "github.com/spf13/pflag"
)

// compactCmd implements spec §6's `compact` subcommand: rebuild the index
// after applying a demasking predicate (spec §4.7), writing the result to
// -r (defaulting to overwriting the input base name in place).
func compactCmd() *Command {
	flags := flag.NewFlagSet("compact", flag.ContinueOnError)
	predicate := flags.StringP("f", "f", "or", "demasking predicate (or|all|and|xor|R-S)")
	output := flags.StringP("r", "r", "", "output base name (default: overwrite input)")

	return &Command{
		Name:  "compact",
		Usage: "-f NAME [-r OUTPUT] <base-name>",
		Short: "rebuild the index after applying a demasking predicate",
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(args) != 1 {
				o.ErrPrintln("error: compact requires <base-name>")
				return 1
			}
			pred, err := compact.Parse(*predicate)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			idx, err := build.Load(args[0], build.LoadOptions{})
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}

			bases, mask := fmindex.Export(idx)
			recompacted := compact.Compact(compact.MaskedSuperstring{Bases: bases, Mask: mask, K: idx.K()}, pred)

			rebuilt, err := build.Build(recompacted.Bases, recompacted.Mask, recompacted.K, build.Options{WithKLCP: idx.HasKLCP()})
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}

			outBase := *output
			if outBase == "" {
				outBase = args[0]
			}
			if err := build.Save(rebuilt, outBase); err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			return 0
		},
	}
}

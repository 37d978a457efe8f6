package cli

import (
	"github.com/fmsi-go/fmsi/build"

	flag "github.com/spf13/pflag"
)

// cleanCmd implements spec §6's `clean` subcommand: remove the index
// sibling files.
func cleanCmd() *Command {
	flags := flag.NewFlagSet("clean", flag.ContinueOnError)

	return &Command{
		Name:  "clean",
		Usage: "<base-name>",
		Short: "remove the index sibling files",
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(args) != 1 {
				o.ErrPrintln("error: clean requires <base-name>")
				return 1
			}
			if err := build.Clean(args[0]); err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			return 0
		},
	}
}

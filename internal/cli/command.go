package cli

import (
	"errors"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines one fmsi subcommand with unified help and exit handling,
// grounded on calvinalkan-agent-task/internal/cli/command.go's Command type.
type Command struct {
	// Name is the subcommand word users type after "fmsi".
	Name string

	// Usage is the freeform usage string shown after "fmsi <name>" in help.
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// Flags is this command's flag set; identity comes from Name, not the
	// FlagSet's own name.
	Flags *flag.FlagSet

	// Exec runs the command after flags are parsed, given the remaining
	// positional arguments. Returns the process exit code.
	Exec func(o *IO, args []string) int
}

// HelpLine returns the short help line shown in the global usage listing.
func (c *Command) HelpLine() string {
	return "  " + padRight(c.Name+" "+c.Usage, 28) + c.Short
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

// PrintHelp prints the full help output for "fmsi <name> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: fmsi", c.Name, c.Usage)
	o.Println()
	o.Println(c.Short)
	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")
		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the command, returning the process exit
// code. Argument errors print the command's usage and return 1.
func (c *Command) Run(o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag's own error/usage text

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)
			return 0
		}
		o.ErrPrintln("error:", err)
		c.PrintHelp(o)
		return 1
	}

	return c.Exec(o, c.Flags.Args())
}

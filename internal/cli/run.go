package cli

import (
	"bufio"
	"io"

	"github.com/fmsi-go/fmsi/setops"
)

// version is the fmsi release string printed by -v.
const version = "0.1.0"

// Run is fmsi's entry point: global -v/-h handling, subcommand dispatch,
// and exit code propagation, grounded on
// calvinalkan-agent-task/internal/cli/run.go's Run (fresh flag sets per
// invocation, commands looked up by name, numeric exit codes returned
// rather than os.Exit called from within a subcommand).
func Run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	if len(args) <= 1 {
		printUsage(stdout)
		return 0
	}

	switch args[1] {
	case "-v", "--version":
		_, _ = io.WriteString(stdout, "fmsi version "+version+"\n")
		return 0
	case "-h", "--help":
		printUsage(stdout)
		return 0
	}

	commands := allCommands()
	var cmd *Command
	for _, c := range commands {
		if c.Name == args[1] {
			cmd = c
			break
		}
	}
	if cmd == nil {
		_, _ = io.WriteString(stderr, "error: unknown command: "+args[1]+"\n")
		printUsage(stderr)
		return 1
	}

	out := bufio.NewWriter(stdout)
	o := &IO{In: stdin, Out: out, Err: stderr, flush: out.Flush}
	code := cmd.Run(o, args[2:])
	o.Flush()
	return code
}

// allCommands returns every subcommand in display order.
func allCommands() []*Command {
	return []*Command{
		indexCmd(),
		queryCmd(),
		lookupCmd(),
		exportCmd(),
		compactCmd(),
		setOpCmd("merge", "concatenate indexes without compaction", setops.Merge),
		setOpCmd("union", "set union of canonical k-mers", setops.Union),
		setOpCmd("inter", "set intersection of canonical k-mers", setops.Intersection),
		diffCmd(),
		setOpCmd("symdiff", "set symmetric difference of canonical k-mers", setops.SymmetricDifference),
		cleanCmd(),
	}
}

func printUsage(w io.Writer) {
	_, _ = io.WriteString(w, "fmsi - a canonical k-mer FM-index over masked superstrings\n\n")
	_, _ = io.WriteString(w, "Usage: fmsi <command> [flags] [args]\n\n")
	_, _ = io.WriteString(w, "Commands:\n")
	for _, c := range allCommands() {
		_, _ = io.WriteString(w, c.HelpLine()+"\n")
	}
	_, _ = io.WriteString(w, "\n  -v                     print the version\n  -h                     show this help\n")
}

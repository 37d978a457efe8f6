package cli

import (
	"github.com/fmsi-go/fmsi/build"
	"github.com/fmsi-go/fmsi/compact"
	"github.com/fmsi-go/fmsi/fmindex"
	"github.com/fmsi-go/fmsi/setops"

	flag "github.com/spf13/pflag"
)

// pStrings lets -p be repeated, the convention spec §6 describes for
// merge/union/inter/diff/symdiff's multiple inputs.
type pStrings struct {
	values []string
}

func (p *pStrings) String() string     { return "" }
func (p *pStrings) Set(v string) error { p.values = append(p.values, v); return nil }
func (p *pStrings) Type() string       { return "stringSlice" }

// setOpFn is the shape every set-algebra operation in package setops shares
// once the inputs are loaded.
type setOpFn func(indexes []*fmindex.Index, k int) (compact.MaskedSuperstring, error)

// setOpCmd builds a merge/union/inter/symdiff subcommand: load every -p
// input, run fn, rebuild and save to -r.
func setOpCmd(name, short string, fn setOpFn) *Command {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var inputs pStrings
	flags.VarP(&inputs, "p", "p", "input base name (repeatable)")
	output := flags.StringP("r", "r", "", "output base name")
	k := flags.IntP("k", "k", 0, "k-mer length sanity check across inputs")

	return &Command{
		Name:  name,
		Usage: "-p BASE [-p BASE ...] -r OUTPUT [-k INT]",
		Short: short,
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(inputs.values) == 0 || *output == "" {
				o.ErrPrintln("error:", name, "requires at least one -p and an -r output")
				return 1
			}
			indexes, kmer, code := loadSetOpInputs(o, inputs.values, *k)
			if code != 0 {
				return code
			}
			result, err := fn(indexes, kmer)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			return saveSetOpResult(o, result, *output, indexes[0])
		},
	}
}

// diffCmd implements `diff`: the first -p is A, the remaining are B (spec
// §4.8's "difference (A minus B)", B possibly several indexes).
func diffCmd() *Command {
	flags := flag.NewFlagSet("diff", flag.ContinueOnError)
	var inputs pStrings
	flags.VarP(&inputs, "p", "p", "input base name: first is A, rest are B (repeatable)")
	output := flags.StringP("r", "r", "", "output base name")
	k := flags.IntP("k", "k", 0, "k-mer length sanity check across inputs")

	return &Command{
		Name:  "diff",
		Usage: "-p A -p B [-p B ...] -r OUTPUT [-k INT]",
		Short: "set difference A minus B",
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(inputs.values) < 2 || *output == "" {
				o.ErrPrintln("error: diff requires at least two -p (A then B) and an -r output")
				return 1
			}
			indexes, kmer, code := loadSetOpInputs(o, inputs.values, *k)
			if code != 0 {
				return code
			}
			result, err := setops.Difference(indexes[0], indexes[1:], kmer)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			return saveSetOpResult(o, result, *output, indexes[0])
		},
	}
}

func loadSetOpInputs(o *IO, bases []string, k int) ([]*fmindex.Index, int, int) {
	indexes := make([]*fmindex.Index, len(bases))
	for i, b := range bases {
		idx, err := build.Load(b, build.LoadOptions{})
		if err != nil {
			o.ErrPrintln("error:", err)
			return nil, 0, 1
		}
		indexes[i] = idx
	}
	kmer := k
	if kmer == 0 {
		kmer = indexes[0].K()
	}
	return indexes, kmer, 0
}

func saveSetOpResult(o *IO, result compact.MaskedSuperstring, outBase string, withKLCPFrom *fmindex.Index) int {
	rebuilt, err := build.Build(result.Bases, result.Mask, result.K, build.Options{WithKLCP: withKLCPFrom.HasKLCP()})
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}
	if err := build.Save(rebuilt, outBase); err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}
	return 0
}

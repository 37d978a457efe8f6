package cli

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/build"
	"github.com/fmsi-go/fmsi/compact"
	"github.com/fmsi-go/fmsi/fasta"
	"github.com/fmsi-go/fmsi/fmindex"
	"github.com/fmsi-go/fmsi/search"

	flag "github.com/spf13/pflag"
)

// queryFlags is the flag set shared by query and lookup, per spec §6:
// -q (input, default stdin), -k (sanity check against the stored k), -S
// (require a loaded kLCP), -O (query: assert a maximized mask; lookup: run
// in minimal-hash mode), -f (query only: aggregate demasking predicate),
// -F (flush output after every record).
type queryFlags struct {
	input       *string
	k           *int
	requireKLCP *bool
	maximized   *bool
	predicate   *string
	flushEach   *bool
}

func addQueryFlags(flags *flag.FlagSet, withPredicate bool) *queryFlags {
	qf := &queryFlags{
		input:       flags.StringP("q", "q", "-", "input FASTA/FASTQ file (- for stdin)"),
		k:           flags.IntP("k", "k", 0, "k-mer length sanity check against the stored index"),
		requireKLCP: flags.BoolP("S", "S", false, "require a loaded kLCP (hard error if absent)"),
		maximized:   flags.BoolP("O", "O", false, "assert mask is maximized (query) / use minimal-hash mode (lookup)"),
		flushEach:   flags.BoolP("F", "F", false, "flush output after every record"),
	}
	if withPredicate {
		qf.predicate = flags.StringP("f", "f", "", "demasking predicate (or|all|and|xor|R-S)")
	}
	return qf
}

// loadForQuery loads the index at baseName, checking -k and -S up front so
// a mismatch is reported before any record is processed.
func loadForQuery(o *IO, baseName string, qf *queryFlags) (*fmindex.Index, int) {
	idx, err := build.Load(baseName, build.LoadOptions{RequireKLCP: *qf.requireKLCP})
	if err != nil {
		o.ErrPrintln("error:", err)
		return nil, 1
	}
	if *qf.k != 0 && *qf.k != idx.K() {
		o.ErrPrintln("error: supplied -k disagrees with the stored index")
		return nil, 1
	}
	return idx, 0
}

// verdictChar renders a single-k-mer membership/counts result as the '0'/'1'
// character spec §6 describes for `query` output (absent and "present but
// unrepresented" both collapse to the character set spec names, with -1
// folded to '0').
func verdictChar(v int) byte {
	if v == 1 {
		return '1'
	}
	return '0'
}

func queryCmd() *Command {
	flags := flag.NewFlagSet("query", flag.ContinueOnError)
	qf := addQueryFlags(flags, true)

	return &Command{
		Name:  "query",
		Usage: "[-q FILE] [-k INT] [-S] [-O] [-f NAME] [-F] <base-name>",
		Short: "per-k-mer membership over input sequences",
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(args) != 1 {
				o.ErrPrintln("error: query requires <base-name>")
				return 1
			}
			idx, code := loadForQuery(o, args[0], qf)
			if idx == nil {
				return code
			}

			var pred compact.Predicate
			if *qf.predicate != "" {
				p, err := compact.Parse(*qf.predicate)
				if err != nil {
					o.ErrPrintln("error:", err)
					return 1
				}
				pred = p
			}

			in, err := openInput(o.In, *qf.input)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			defer in.Close()

			records, err := fasta.ReadAuto(in)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}

			for _, rec := range records {
				verdicts := queryRecord(idx, rec.Sequence, pred, *qf.maximized)
				o.Printf("%s\t%s\n", rec.Name, verdicts)
				if *qf.flushEach {
					o.Flush()
				}
			}
			return 0
		},
	}
}

// queryRecord computes one verdict character per length-k window of seq.
// When pred is set, windows are decided by the aggregate-counts path (spec
// §4.4's general_counts/f); this package has no streamed variant of the
// aggregate path (only plain membership streams via kLCP), so -f always
// takes the brute per-window route regardless of -S. Otherwise, a loaded
// kLCP is used to stream plain canonical membership; without one, each
// window is searched from scratch.
func queryRecord(idx *fmindex.Index, seq []byte, pred compact.Predicate, maximizedOnes bool) string {
	k := idx.K()
	if len(seq) < k {
		return ""
	}

	if pred == nil && idx.HasKLCP() {
		verdicts, err := search.StreamedMembership(idx, seq, maximizedOnes, search.NewPredictor())
		if err == nil {
			out := make([]byte, len(verdicts))
			for i, v := range verdicts {
				out[i] = verdictChar(v)
			}
			return string(out)
		}
	}

	bases, invalid := encodeWindowBases(seq)
	n := len(seq)
	out := make([]byte, n-k+1)
	for s := 0; s <= n-k; s++ {
		if invalid[s+k] != invalid[s] {
			out[s] = '0'
			continue
		}
		window := bases[s : s+k]
		if pred != nil {
			ones, total := search.CanonicalCounts(idx, window)
			if total > 0 && pred(ones, total) {
				out[s] = '1'
			} else {
				out[s] = '0'
			}
			continue
		}
		out[s] = verdictChar(search.CanonicalMembership(idx, window, maximizedOnes))
	}
	return string(out)
}

func lookupCmd() *Command {
	flags := flag.NewFlagSet("lookup", flag.ContinueOnError)
	qf := addQueryFlags(flags, false)

	return &Command{
		Name:  "lookup",
		Usage: "[-q FILE] [-k INT] [-S] [-O] [-F] <base-name>",
		Short: "per-k-mer dictionary identifiers over input sequences",
		Flags: flags,
		Exec: func(o *IO, args []string) int {
			if len(args) != 1 {
				o.ErrPrintln("error: lookup requires <base-name>")
				return 1
			}
			idx, code := loadForQuery(o, args[0], qf)
			if idx == nil {
				return code
			}

			in, err := openInput(o.In, *qf.input)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}
			defer in.Close()

			records, err := fasta.ReadAuto(in)
			if err != nil {
				o.ErrPrintln("error:", err)
				return 1
			}

			for _, rec := range records {
				ids := lookupRecord(idx, rec.Sequence, *qf.maximized)
				o.Printf("%s\t%s\n", rec.Name, joinInt64(ids))
				if *qf.flushEach {
					o.Flush()
				}
			}
			return 0
		},
	}
}

// lookupRecord computes one dictionary identifier per length-k window of
// seq, minimal mode when minimal is true (spec §6: "minimal-hash mode
// requires a minimized mask and the or predicate"; this package does not
// verify the mask was actually minimized, leaving that caller contract to
// the index-building step, matching spec §7's policy that minimal lookup on
// a non-minimized mask is the caller's hard-error contract to uphold).
func lookupRecord(idx *fmindex.Index, seq []byte, minimal bool) []int64 {
	k := idx.K()
	if len(seq) < k {
		return nil
	}

	if idx.HasKLCP() {
		ids, err := search.StreamedLookup(idx, seq, minimal, search.NewPredictor())
		if err == nil {
			return ids
		}
	}

	bases, invalid := encodeWindowBases(seq)
	n := len(seq)
	out := make([]int64, n-k+1)
	for s := 0; s <= n-k; s++ {
		if invalid[s+k] != invalid[s] {
			out[s] = -1
			continue
		}
		window := bases[s : s+k]
		out[s] = canonicalLookup(idx, window, minimal)
	}
	return out
}

// canonicalLookup combines the forward and reverse-complement lookups of a
// single window per spec §4.4 step 4 ("first non-negative result"), the
// brute-force counterpart of StreamedLookup's strand combination.
func canonicalLookup(idx *fmindex.Index, window []alphabet.Base, minimal bool) int64 {
	var fwd int64
	if minimal {
		fwd = search.LookupMinimal(idx, window)
	} else {
		fwd = search.LookupNonMinimal(idx, window)
	}
	if fwd >= 0 {
		return fwd
	}
	rc := alphabet.ReverseComplement(window)
	if minimal {
		return search.LookupMinimal(idx, rc)
	}
	return search.LookupNonMinimal(idx, rc)
}

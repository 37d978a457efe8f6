package build

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"

	"github.com/fmsi-go/fmsi/bitvec"
	"github.com/fmsi-go/fmsi/bitvec/rrr"
	"github.com/fmsi-go/fmsi/fmindex"
	"github.com/fmsi-go/fmsi/fmsierr"
)

// Sibling-file suffixes, spec §6.
const (
	suffixACGT = ".fmsi.ac_gt"
	suffixAC   = ".fmsi.ac"
	suffixGT   = ".fmsi.gt"
	suffixMask = ".fmsi.mask"
	suffixKLCP = ".fmsi.klcp"
	suffixMisc = ".fmsi.misc"
)

// Save writes idx to the sibling files B.fmsi.ac_gt, .ac, .gt, .mask,
// .klcp (only if idx.HasKLCP()), and .misc, where B is baseName.
func Save(idx *fmindex.Index, baseName string) error {
	if err := writeBitVector(baseName+suffixACGT, idx.ACGT()); err != nil {
		return &fmsierr.BuildError{Source: baseName, Err: err}
	}
	if err := writeBitVector(baseName+suffixAC, idx.AC()); err != nil {
		return &fmsierr.BuildError{Source: baseName, Err: err}
	}
	if err := writeBitVector(baseName+suffixGT, idx.GT()); err != nil {
		return &fmsierr.BuildError{Source: baseName, Err: err}
	}
	if err := writeMask(baseName+suffixMask, idx.SAMask()); err != nil {
		return &fmsierr.BuildError{Source: baseName, Err: err}
	}
	if idx.HasKLCP() {
		if err := writeBitVector(baseName+suffixKLCP, idx.KLCP()); err != nil {
			return &fmsierr.BuildError{Source: baseName, Err: err}
		}
	}
	if err := writeMisc(baseName+suffixMisc, idx); err != nil {
		return &fmsierr.BuildError{Source: baseName, Err: err}
	}
	return nil
}

// LoadOptions controls how Load reconstructs an Index.
type LoadOptions struct {
	// RequireKLCP fails the load if the .klcp sibling is absent, for
	// callers (e.g. the streamed-query CLI paths) that need it up front
	// rather than discovering ErrStreamingNeedsKLCP mid-query.
	RequireKLCP bool
}

// Load reconstructs an Index from baseName's sibling files (spec §6).
func Load(baseName string, opts LoadOptions) (*fmindex.Index, error) {
	acGT, err := readBitVector(baseName + suffixACGT)
	if err != nil {
		return nil, &fmsierr.LoadError{BaseName: baseName, Err: err}
	}
	ac, err := readBitVector(baseName + suffixAC)
	if err != nil {
		return nil, &fmsierr.LoadError{BaseName: baseName, Err: err}
	}
	gt, err := readBitVector(baseName + suffixGT)
	if err != nil {
		return nil, &fmsierr.LoadError{BaseName: baseName, Err: err}
	}
	saMask, err := readMask(baseName + suffixMask)
	if err != nil {
		return nil, &fmsierr.LoadError{BaseName: baseName, Err: err}
	}
	dollarPosition, counts, k, err := readMisc(baseName + suffixMisc)
	if err != nil {
		return nil, &fmsierr.LoadError{BaseName: baseName, Err: err}
	}
	n := acGT.Len() - 1

	var klcp *bitvec.BitVector
	if _, statErr := os.Stat(baseName + suffixKLCP); statErr == nil {
		klcp, err = readBitVector(baseName + suffixKLCP)
		if err != nil {
			return nil, &fmsierr.LoadError{BaseName: baseName, Err: err}
		}
	} else if opts.RequireKLCP {
		return nil, &fmsierr.LoadError{BaseName: baseName, Err: fmsierr.ErrIndexFileMissing}
	}

	return fmindex.New(acGT, ac, gt, saMask, counts, dollarPosition, k, n, klcp), nil
}

// Clean removes every sibling file of baseName that exists, ignoring ones
// that are already absent (spec's `clean` subcommand, supplemented from
// original_source's ms_clean).
func Clean(baseName string) error {
	for _, suffix := range []string{suffixACGT, suffixAC, suffixGT, suffixMask, suffixKLCP, suffixMisc} {
		if err := os.Remove(baseName + suffix); err != nil && !os.IsNotExist(err) {
			return &fmsierr.BuildError{Source: baseName, Err: err}
		}
	}
	return nil
}

// writeBitVector serializes a plain bitvec.BitVector as: bit count (uint64),
// then the packed words (uint64 each), all little-endian.
func writeBitVector(path string, bv *bitvec.BitVector) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint64(bv.Len())); err != nil {
		return err
	}
	for _, word := range bv.Words() {
		if err := binary.Write(w, binary.LittleEndian, word); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readBitVector(path string) (*bitvec.BitVector, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmsierr.ErrIndexFileMissing
		}
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmsierr.ErrIndexFileCorrupt
	}
	numWords := (int(n) + 63) / 64
	words := make([]uint64, numWords)
	for i := range words {
		if err := binary.Read(r, binary.LittleEndian, &words[i]); err != nil {
			return nil, fmsierr.ErrIndexFileCorrupt
		}
	}
	return bitvec.FromWords(words, int(n)), nil
}

// writeMask serializes the SA-order rrr.Vector as: length (uint64), a
// sparse flag byte, then either the packed dense words or the sparse
// position list (uint32 each), matching whichever representation Build
// chose for this mask.
func writeMask(path string, v *rrr.Vector) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	if err := binary.Write(w, binary.LittleEndian, uint64(v.Len())); err != nil {
		return err
	}
	sparse := byte(0)
	if v.IsSparse() {
		sparse = 1
	}
	if err := w.WriteByte(sparse); err != nil {
		return err
	}

	if v.IsSparse() {
		positions := v.SparsePositions()
		if err := binary.Write(w, binary.LittleEndian, uint64(len(positions))); err != nil {
			return err
		}
		for _, p := range positions {
			if err := binary.Write(w, binary.LittleEndian, p); err != nil {
				return err
			}
		}
		return w.Flush()
	}

	dense := denseWords(v)
	for _, word := range dense {
		if err := binary.Write(w, binary.LittleEndian, word); err != nil {
			return err
		}
	}
	return w.Flush()
}

// denseWords recomputes the packed words backing a dense rrr.Vector by
// scanning Get, since the dense representation's underlying BitVector is
// not itself exported -- acceptable here since Save runs once per build,
// off the query hot path.
func denseWords(v *rrr.Vector) []uint64 {
	n := v.Len()
	bv := bitvec.New(n)
	for i := 0; i < n; i++ {
		if v.Get(i) {
			bv.Set(i, true)
		}
	}
	return bv.Words()
}

func readMask(path string) (*rrr.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmsierr.ErrIndexFileMissing
		}
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmsierr.ErrIndexFileCorrupt
	}
	sparse, err := r.ReadByte()
	if err != nil {
		return nil, fmsierr.ErrIndexFileCorrupt
	}

	if sparse == 1 {
		var count uint64
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, fmsierr.ErrIndexFileCorrupt
		}
		positions := make([]uint32, count)
		for i := range positions {
			if err := binary.Read(r, binary.LittleEndian, &positions[i]); err != nil {
				return nil, fmsierr.ErrIndexFileCorrupt
			}
		}
		return rrr.FromSparse(int(n), positions), nil
	}

	numWords := (int(n) + 63) / 64
	words := make([]uint64, numWords)
	for i := range words {
		if err := binary.Read(r, binary.LittleEndian, &words[i]); err != nil {
			return nil, fmsierr.ErrIndexFileCorrupt
		}
	}
	return rrr.FromDense(bitvec.FromWords(words, int(n))), nil
}

// writeMisc writes the small text sidecar of spec §6: dollar_position on
// line 1, counts[0..3] on the next four lines, k on the last.
func writeMisc(path string, idx *fmindex.Index) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	counts := idx.Counts()
	fmt.Fprintln(w, idx.DollarPosition())
	for _, c := range counts {
		fmt.Fprintln(w, c)
	}
	fmt.Fprintln(w, idx.K())
	return w.Flush()
}

// readMisc parses the six-line sidecar. The BWT row count (n+1) is not
// stored here: Load derives n from the loaded ac_gt vector's length
// instead of threading a redundant field through this file.
func readMisc(path string) (dollarPosition int, counts [4]int, k int, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		if os.IsNotExist(openErr) {
			return 0, counts, 0, fmsierr.ErrIndexFileMissing
		}
		return 0, counts, 0, openErr
	}
	defer f.Close()

	lines := make([]string, 0, 6)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return 0, counts, 0, scanErr
	}
	if len(lines) != 6 {
		return 0, counts, 0, fmsierr.ErrIndexFileCorrupt
	}

	values := make([]int, 6)
	for i, line := range lines {
		v, convErr := strconv.Atoi(line)
		if convErr != nil {
			return 0, counts, 0, fmsierr.ErrIndexFileCorrupt
		}
		values[i] = v
	}
	dollarPosition = values[0]
	counts = [4]int{values[1], values[2], values[3], values[4]}
	k = values[5]
	return dollarPosition, counts, k, nil
}

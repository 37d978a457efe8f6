package fasta

import (
	"io"

	"github.com/soniakeys/bio/dna"

	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/fmsierr"
)

// BaseComposition reports how many of each base a parsed record contained,
// via soniakeys/bio/dna.Strict.BaseFreq. index reports this as a build-time
// stats line so a caller can sanity-check composition (e.g. a near-zero G/C
// count on a record that was expected to be GC-rich) without re-scanning the
// superstring themselves.
type BaseComposition struct {
	A, C, G, T int
}

// ParseMaskedSuperstring reads a single-record FASTA stream whose sequence
// is a masked superstring (spec §6): upper-case A/C/G/T encode mask bit 1,
// lower-case encode 0, any other byte is rejected.
func ParseMaskedSuperstring(r io.Reader) (bases []alphabet.Base, mask []bool, comp BaseComposition, err error) {
	records, err := ReadFASTA(r)
	if err != nil {
		return nil, nil, BaseComposition{}, err
	}
	if len(records) == 0 {
		return nil, nil, BaseComposition{}, fmsierr.ErrEmptyInput
	}
	if len(records) > 1 {
		return nil, nil, BaseComposition{}, fmsierr.ErrMultiRecord
	}

	seq := records[0].Sequence
	if len(seq) == 0 {
		return nil, nil, BaseComposition{}, fmsierr.ErrEmptyInput
	}

	bases = make([]alphabet.Base, len(seq))
	mask = make([]bool, len(seq))
	for i, c := range seq {
		upper := alphabet.ToUpper(c)
		b, ok := alphabet.Encode(upper)
		if !ok {
			return nil, nil, BaseComposition{}, fmsierr.ErrInvalidAlphabet
		}
		bases[i] = b
		mask[i] = alphabet.IsUpper(c)
	}

	a, c, t, g := dna.Strict(seq).BaseFreq()
	if a+c+t+g != len(seq) {
		return nil, nil, BaseComposition{}, fmsierr.ErrInvalidAlphabet
	}
	comp = BaseComposition{A: a, C: c, G: g, T: t}

	return bases, mask, comp, nil
}

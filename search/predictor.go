package search

// predictorClip bounds every counter the strand predictor maintains, per
// spec §4.4's "clipped to [-7,7]".
const predictorClip = 7

// Predictor is the advisory, saturating strand-bias tracker of spec §4.4 and
// §4.9: a global counter plus two counters conditioned on the previous
// batch's outcome, all independently clipped. It decides which strand
// (forward or reverse-complement) a streamed query should scan first, to
// maximize early-skip opportunities; a nil *Predictor is always
// forward-first. Predictor state never changes query results -- only which
// strand's work happens first.
type Predictor struct {
	bias        int
	condBias    [2]int
	prevOutcome int
}

// NewPredictor returns a zeroed predictor (no bias yet, forward-first).
func NewPredictor() *Predictor {
	return &Predictor{}
}

func clip(v int) int {
	if v > predictorClip {
		return predictorClip
	}
	if v < -predictorClip {
		return -predictorClip
	}
	return v
}

// ShouldSwap reports whether the reverse-complement strand should be scanned
// before the forward strand for the next batch.
func (p *Predictor) ShouldSwap() bool {
	if p == nil {
		return false
	}
	return p.bias+p.condBias[p.prevOutcome] < 0
}

// RecordBatch folds one batch's forward/reverse hit counts into the bias
// counters and remembers the outcome for the next batch's conditional bias.
func (p *Predictor) RecordBatch(forwardHits, reverseHits int) {
	if p == nil {
		return
	}
	delta := forwardHits - reverseHits
	outcome := p.prevOutcome
	switch {
	case delta > 0:
		p.bias = clip(p.bias + 1)
		p.condBias[outcome] = clip(p.condBias[outcome] + 1)
		p.prevOutcome = 1
	case delta < 0:
		p.bias = clip(p.bias - 1)
		p.condBias[outcome] = clip(p.condBias[outcome] - 1)
		p.prevOutcome = 0
	}
}

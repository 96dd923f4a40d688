package glossa

// Trace records every sampling and spelling decision made while
// generating one word. It is a pure side channel: recording never
// influences generation outcomes, and a nil *Trace disables all
// bookkeeping (every method is nil-safe), keeping the untraced path
// free of overhead.
type Trace struct {
	// Stages holds before/after syllable snapshots per pipeline stage.
	Stages []StageTrace
	// Samples lists the weighted-draw decisions in pipeline order.
	Samples []SampleDecision
	// Spellings lists every grapheme-selection decision.
	Spellings []SpellingDecision

	// RepairPasses counts the repair passes that mutated the word.
	RepairPasses int
	// MorphologyApplied reports whether an affix template was applied.
	MorphologyApplied bool
}

// StageTrace is a snapshot of the syllable list around one stage.
// Syllables are captured as plain symbol sequences, never as live
// phoneme references.
type StageTrace struct {
	Stage  string
	Before [][]string
	After  [][]string
}

// SampleDecision records one weighted or boolean draw.
type SampleDecision struct {
	Stage   string
	Label   string
	Roll    float64
	Outcome string
}

// SpellingDecision records one grapheme selection.
type SpellingDecision struct {
	Phoneme    string
	Position   string
	Candidates []string
	Weights    []float64
	// Roll is the random value consumed, or -1 for the deterministic
	// in-cluster choice.
	Roll    float64
	Chosen  string
	Doubled bool
	// Fallback reports that the contextual conditions eliminated every
	// candidate and the draw fell back to position weights alone.
	Fallback bool
}

// Decisions returns the total number of recorded decisions.
func (t *Trace) Decisions() int {
	if t == nil {
		return 0
	}
	return len(t.Samples) + len(t.Spellings)
}

// snapshot captures the syllable list as plain symbol sequences.
func snapshot(sylls []*Syllable) [][]string {
	out := make([][]string, len(sylls))
	for i, s := range sylls {
		out[i] = s.symbols()
	}
	return out
}

func (t *Trace) stage(name string, before, after [][]string) {
	if t == nil {
		return
	}
	t.Stages = append(t.Stages, StageTrace{Stage: name, Before: before, After: after})
}

func (t *Trace) sample(stage, label string, roll float64, outcome string) {
	if t == nil {
		return
	}
	t.Samples = append(t.Samples, SampleDecision{Stage: stage, Label: label, Roll: roll, Outcome: outcome})
}

func (t *Trace) spelling(d SpellingDecision) {
	if t == nil {
		return
	}
	t.Spellings = append(t.Spellings, d)
}

func (t *Trace) repairPass() {
	if t == nil {
		return
	}
	t.RepairPasses++
}

func (t *Trace) morphology() {
	if t == nil {
		return
	}
	t.MorphologyApplied = true
}

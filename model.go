package glossa

import "strings"

// Manner is the manner of articulation of a phoneme.
// Vowels are folded into the same enum (high/mid/low) so that a single
// sonority table covers the whole inventory.
type Manner int

const (
	MannerStop Manner = iota
	MannerFricative
	MannerAffricate
	MannerSibilant
	MannerNasal
	MannerLiquid
	MannerGlide
	MannerHighVowel
	MannerMidVowel
	MannerLowVowel
)

// IsVowel reports whether the manner is one of the vowel classes.
func (m Manner) IsVowel() bool {
	return m == MannerHighVowel || m == MannerMidVowel || m == MannerLowVowel
}

// IsObstruent reports whether the manner is an obstruent class
// (stop, fricative, affricate or sibilant).
func (m Manner) IsObstruent() bool {
	switch m {
	case MannerStop, MannerFricative, MannerAffricate, MannerSibilant:
		return true
	}
	return false
}

// Place is the place of articulation of a phoneme.
// Vowels use PlaceNone.
type Place int

const (
	PlaceNone Place = iota
	PlaceBilabial
	PlaceLabiodental
	PlaceDental
	PlaceAlveolar
	PlacePostalveolar
	PlacePalatal
	PlaceVelar
	PlaceGlottal
)

// Phoneme is a single sound unit of the language. The inventory entries
// in a LanguageConfig are immutable reference data; the pronunciation
// stage works on per-word copies, so the Aspirated and Reduced flags are
// only ever set on clones.
type Phoneme struct {
	// Symbol is the IPA-like representation of the sound.
	Symbol string
	// Voiced reports vocal-cord vibration. All vowels are voiced.
	Voiced bool
	Manner Manner
	Place  Place
	// Tense marks tense (long/diphthong) vowels. Tense vowels never reduce.
	Tense bool
	// Reduced is set on a vowel replaced by a reduction rule target.
	Reduced bool
	// Aspirated is set on a voiceless stop marked for aspiration.
	Aspirated bool

	// StartWeight, MidWeight and EndWeight are the positional
	// applicability weights (start-of-word, mid-word, end-of-word).
	// A zero weight disallows the phoneme in that position.
	StartWeight float64
	MidWeight   float64
	EndWeight   float64
}

// IsVowel reports whether the phoneme is a vowel.
func (p *Phoneme) IsVowel() bool { return p.Manner.IsVowel() }

// Sound returns the rendered form of the phoneme, including the
// aspiration diacritic when set.
func (p *Phoneme) Sound() string {
	if p.Aspirated {
		return p.Symbol + "ʰ"
	}
	return p.Symbol
}

// clone returns a copy of p safe to mutate per word.
func (p *Phoneme) clone() *Phoneme {
	c := *p
	return &c
}

// Stress is the stress marker carried by a syllable.
type Stress int

const (
	StressNone Stress = iota
	StressPrimary
	StressSecondary
)

// Syllable is an onset/nucleus/coda triple. Syllables are mutated in
// place by the repair, morphology and pronunciation stages and become
// immutable once the word is finalized.
type Syllable struct {
	Onset   []*Phoneme
	Nucleus []*Phoneme
	Coda    []*Phoneme
	Stress  Stress

	// pronounced marks a syllable the pronunciation engine has already
	// processed. A later pass skips it, so affixation never re-rolls the
	// root's aspiration or reduction draws.
	pronounced bool
}

// Sounds returns all phonemes of the syllable in onset/nucleus/coda order.
func (s *Syllable) Sounds() []*Phoneme {
	out := make([]*Phoneme, 0, len(s.Onset)+len(s.Nucleus)+len(s.Coda))
	out = append(out, s.Onset...)
	out = append(out, s.Nucleus...)
	out = append(out, s.Coda...)
	return out
}

// Heavy reports whether the syllable counts as heavy for stress
// assignment: a long nucleus or a non-empty coda.
func (s *Syllable) Heavy() bool {
	return len(s.Nucleus) > 1 || len(s.Coda) > 0
}

// symbols returns the plain symbol sequence, used for trace snapshots.
func (s *Syllable) symbols() []string {
	sounds := s.Sounds()
	out := make([]string, len(sounds))
	for i, p := range sounds {
		out[i] = p.Sound()
	}
	return out
}

// WordPosition constrains a grapheme to a position within the word.
type WordPosition int

const (
	AnyPosition WordPosition = iota
	InitialPosition
	MedialPosition
	FinalPosition
)

// SpellingCondition is an optional contextual condition on a grapheme.
type SpellingCondition struct {
	// Position restricts the grapheme to a word position.
	Position WordPosition
	// NotAfter lists phoneme symbols forbidden as the left neighbor.
	NotAfter []string
	// NotBefore lists phoneme symbols forbidden as the right neighbor.
	NotBefore []string
}

// Grapheme is a candidate spelling for one phoneme.
type Grapheme struct {
	// Phoneme is the symbol of the sound this grapheme spells.
	Phoneme string
	// Form is the written realization.
	Form string
	// Weight is the base frequency weight.
	Weight float64
	// OnsetWeight, NucleusWeight and CodaWeight override Weight per
	// syllable position. nil means unrestricted (Weight applies); an
	// explicit 0 forbids the grapheme in that position.
	OnsetWeight   *float64
	NucleusWeight *float64
	CodaWeight    *float64
	// Condition is an optional contextual restriction.
	Condition *SpellingCondition
}

// syllablePosition is the role a phoneme plays inside its syllable.
type syllablePosition int

const (
	posOnset syllablePosition = iota
	posNucleus
	posCoda
)

func (p syllablePosition) String() string {
	switch p {
	case posOnset:
		return "onset"
	case posNucleus:
		return "nucleus"
	default:
		return "coda"
	}
}

// weightIn returns the effective weight of the grapheme in the given
// syllable position.
func (g *Grapheme) weightIn(pos syllablePosition) float64 {
	var override *float64
	switch pos {
	case posOnset:
		override = g.OnsetWeight
	case posNucleus:
		override = g.NucleusWeight
	case posCoda:
		override = g.CodaWeight
	}
	if override != nil {
		return *override
	}
	return g.Weight
}

// Word is the finished generation result.
type Word struct {
	// Syllables is the final syllable decomposition, including any
	// affix syllables spliced in by morphology.
	Syllables []*Syllable
	// Pronunciation is the rendered phonetic string with stress and
	// syllable-boundary marks.
	Pronunciation string
	// Written is the cleaned-up spelling.
	Written string
	// Hyphenated is the spelling with syllable/affix boundaries marked.
	Hyphenated string
	// Trace carries the decision record when tracing was requested.
	Trace *Trace
}

// String returns the written form.
func (w *Word) String() string { return w.Written }

// Pronounced returns the pronunciation without syllable-boundary marks,
// which is occasionally handy in diagnostics output.
func (w *Word) Pronounced() string {
	return strings.ReplaceAll(w.Pronunciation, ".", "")
}

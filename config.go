package glossa

import (
	"errors"
	"fmt"
)

// Configuration errors. They indicate a malformed LanguageConfig and
// abort the generation call; no partial Word is ever returned.
var (
	// ErrNoPhonemes means no phoneme exists for a required position.
	ErrNoPhonemes = errors.New("glossa: no phoneme available for position")
	// ErrNoSpelling means a primary-inventory phoneme has no legal
	// grapheme in some position it can occupy.
	ErrNoSpelling = errors.New("glossa: no grapheme candidate for phoneme")
)

// SonorityHierarchy assigns a numeric sonority level to every phoneme
// from its manner and place of articulation, plus voiced/tense bonuses.
// Levels are always derived through Level, never cached apart, so they
// cannot drift from the declared tables.
type SonorityHierarchy struct {
	Manner      map[Manner]float64
	Place       map[Place]float64
	VoicedBonus float64
	TenseBonus  float64
}

// Level returns the sonority level of p.
func (h *SonorityHierarchy) Level(p *Phoneme) float64 {
	level := h.Manner[p.Manner] + h.Place[p.Place]
	if p.Voiced {
		level += h.VoicedBonus
	}
	if p.Tense {
		level += h.TenseBonus
	}
	return level
}

// BoundaryRepairStrategy selects which side of an illegal cross-syllable
// cluster loses a phoneme.
type BoundaryRepairStrategy int

const (
	// DropCoda removes the coda-final phoneme (preferred).
	DropCoda BoundaryRepairStrategy = iota
	// DropOnset removes the onset-initial phoneme.
	DropOnset
)

// BuilderTuning holds the weight tables of the syllable builder.
// Length tables are indexed by length; entries are relative weights.
type BuilderTuning struct {
	// SyllableCount maps each mode to per-count weights
	// (index i is the weight of i+1 syllables).
	SyllableCount map[Mode][]float64

	// MonoOnsetLength weights onset lengths of monosyllabic words.
	MonoOnsetLength []float64
	// InitialOnsetLength weights the first onset of polysyllabic words.
	InitialOnsetLength []float64
	// MedialOnsetAfterCoda and MedialOnsetAfterOpen weight non-initial
	// onsets depending on whether the preceding syllable left a coda.
	MedialOnsetAfterCoda []float64
	MedialOnsetAfterOpen []float64

	// MonoCodaByOnset weights coda lengths of monosyllabic words,
	// conditioned on the drawn onset length (clamped to the last row).
	MonoCodaByOnset [][]float64
	// FinalCodaLength and MedialCodaLength weight codas of polysyllabic
	// words; word-medial syllables are coda-light.
	FinalCodaLength []float64
	MedialCodaLength []float64

	// BoundaryDropChance is the probability of dropping a coda phoneme
	// whose sonority equals the following onset's leading phoneme.
	BoundaryDropChance float64
	// FinalSChance is the probability of appending FinalSSymbol to the
	// word-final coda as an inflection-flavored embellishment.
	FinalSChance float64
	FinalSSymbol string
}

// PronunciationTuning holds the probabilities and weights of the
// pronunciation engine.
type PronunciationTuning struct {
	// Aspiration probabilities for a syllable-initial voiceless stop.
	AspirationInitial    float64 // word-initial syllable
	AspirationAfterS     float64 // previous coda ends in /s/
	AspirationStressed   float64 // stressed non-initial syllable
	AspirationUnstressed float64 // unstressed medial/final syllable
	// AspirationFinalCoda applies to a single voiceless-stop coda at
	// the end of the word.
	AspirationFinalCoda float64

	// Primary stress: disyllables.
	DisyllableInitialWeight float64
	DisyllableFinalWeight   float64
	// Primary stress: three or more syllables.
	HeavyPenultWeight  float64
	LightPenultWeight  float64
	AntepenultWeight   float64
	InitialStressWeight float64

	// Secondary stress.
	SecondaryStressChance float64
	HeavySecondaryWeight  float64
	LightSecondaryWeight  float64
	// RhythmicStressChance promotes an interior syllable flanked by
	// unstressed neighbors to secondary stress.
	RhythmicStressChance float64
}

// ReductionRule rewrites one vowel into a reduced target.
type ReductionRule struct {
	Target      string
	Probability float64
}

// ReductionConfig gates and tunes vowel reduction.
type ReductionConfig struct {
	// Rules maps source vowel symbols to their reduction rule.
	Rules map[string]ReductionRule
	// Positional probability multipliers.
	InitialFactor float64
	MedialFactor  float64
	FinalFactor   float64
	// ReduceSecondary allows reduction in secondary-stressed syllables,
	// scaled by SecondaryFactor.
	ReduceSecondary bool
	SecondaryFactor float64
}

// StressEffect is the stress adjustment an affix applies when spliced.
type StressEffect int

const (
	StressEffectNone StressEffect = iota
	// StressEffectPrimary demotes the existing primary stress to
	// secondary and promotes the affix syllable.
	StressEffectPrimary
	// StressEffectSecondary marks the affix syllable secondary.
	StressEffectSecondary
	// StressEffectAttract moves primary stress to the syllable
	// immediately before the suffix. Suffixes only.
	StressEffectAttract
)

// AllomorphCondition is a phonological predicate on the root phoneme
// adjacent to the affix boundary. The tagged enum keeps condition
// dispatch a compile-time-checked switch.
type AllomorphCondition int

const (
	// AfterVoiceless matches a voiceless root-final phoneme (suffix side).
	AfterVoiceless AllomorphCondition = iota
	// AfterVoiced matches a voiced root-final phoneme (suffix side).
	AfterVoiced
	// AfterSibilant matches a sibilant or affricate root-final phoneme.
	AfterSibilant
	// AfterAlveolarStop matches /t/ or /d/ root-finally (suffix side).
	AfterAlveolarStop
	// BeforeBilabial matches a bilabial root-initial phoneme (prefix side).
	BeforeBilabial
)

// Allomorph is a context-dependent alternate realization of an affix.
type Allomorph struct {
	When      AllomorphCondition
	Phonemes  []string
	Form      string
	Syllables int
}

// Affix is a prefix or suffix with its phonology, spelling and
// boundary behavior.
type Affix struct {
	// Form is the written realization of the base variant.
	Form string
	// Phonemes is the phoneme symbol sequence of the base variant.
	Phonemes []string
	// Syllables is the syllable count of the base variant. A count of
	// zero means the phonemes merge into the root's boundary syllable.
	Syllables int
	Weight float64
	// Stress is applied to the affix's first spliced syllable; for a
	// zero-syllable affix it targets the root boundary syllable the
	// phonemes merged into.
	Stress StressEffect
	// Allomorphs are checked in order against the boundary phoneme;
	// the first match wins, falling back to the base variant.
	Allomorphs []Allomorph

	// Orthographic boundary rules applied to the root's written form.
	YToI        bool
	DropSilentE bool
	DoubleFinal bool
}

// MorphologyTemplate is the affixation shape of a word.
type MorphologyTemplate int

const (
	TemplateBare MorphologyTemplate = iota
	TemplateSuffixed
	TemplatePrefixed
	TemplateBoth
)

func (t MorphologyTemplate) String() string {
	switch t {
	case TemplateSuffixed:
		return "suffixed"
	case TemplatePrefixed:
		return "prefixed"
	case TemplateBoth:
		return "both"
	default:
		return "bare"
	}
}

// MorphologyConfig declares the affix inventory and template weights.
type MorphologyConfig struct {
	// TemplateWeights maps each mode to the four template weights in
	// TemplateBare..TemplateBoth order.
	TemplateWeights map[Mode][]float64
	Prefixes        []*Affix
	Suffixes        []*Affix
	// NeverDouble lists written letters exempt from final-consonant
	// doubling. Tuned empirically; configuration data, not code.
	NeverDouble map[string]bool
}

// OrthographyTuning holds the word-level spelling cleanup data.
type OrthographyTuning struct {
	// KeepDoubles lists doubled vowel letters that survive the
	// doubled-letter collapse (legitimate digraphs).
	KeepDoubles map[string]bool
	// DigraphFixes rewrites spelling artifacts, applied to a fixed
	// point so the cleanup stays idempotent.
	DigraphFixes [][2]string
}

// LanguageConfig is the full declarative language model consumed by a
// Generator. It is loaded once and treated as immutable for the
// lifetime of every generation call; a validated config is safe for
// concurrent reads.
type LanguageConfig struct {
	// Phonemes is the full inventory.
	Phonemes []*Phoneme
	// Graphemes maps phoneme symbols to candidate spellings.
	Graphemes map[string][]*Grapheme

	Sonority SonorityHierarchy

	// Syllable-structure limits.
	MaxOnset int
	MaxCoda  int
	// AppendantCodas lists sounds that extend the effective coda cap by
	// one when cluster-final (trailing coronals, typically).
	AppendantCodas map[string]bool

	// BannedBoundaries lists (coda-final, onset-initial) symbol pairs
	// illegal across a syllable boundary.
	BannedBoundaries map[[2]string]bool
	BoundaryRepair   BoundaryRepairStrategy
	// AllowedFinal lists symbols legal as the word-final coda sound.
	AllowedFinal map[string]bool
	// CodaPairDrops lists coda-internal (sound, following sound) pairs
	// whose second member is stripped; these sequences arise only
	// across morpheme boundaries in the modeled dialect.
	CodaPairDrops map[[2]string]bool

	Builder       BuilderTuning
	Pronunciation PronunciationTuning
	Orthography   OrthographyTuning

	// Morphology enables affixation when non-nil.
	Morphology *MorphologyConfig
	// Reduction enables vowel reduction when non-nil.
	Reduction *ReductionConfig
}

// SonorityLevel derives the sonority level of p from the declared
// hierarchy. This is the only derivation path.
func (c *LanguageConfig) SonorityLevel(p *Phoneme) float64 {
	return c.Sonority.Level(p)
}

// validate checks the structural preconditions a Generator relies on.
func (c *LanguageConfig) validate() error {
	if len(c.Phonemes) == 0 {
		return fmt.Errorf("empty phoneme inventory: %w", ErrNoPhonemes)
	}
	var vowels, consonants int
	for _, p := range c.Phonemes {
		if p.IsVowel() {
			vowels++
		} else {
			consonants++
		}
		if len(c.Graphemes[p.Symbol]) == 0 {
			return fmt.Errorf("phoneme %q: %w", p.Symbol, ErrNoSpelling)
		}
	}
	if vowels == 0 {
		return fmt.Errorf("no vowels in inventory: %w", ErrNoPhonemes)
	}
	if consonants == 0 {
		return fmt.Errorf("no consonants in inventory: %w", ErrNoPhonemes)
	}
	if c.MaxOnset < 1 || c.MaxCoda < 1 {
		return fmt.Errorf("glossa: cluster limits must be at least 1 (onset %d, coda %d)", c.MaxOnset, c.MaxCoda)
	}
	for _, mode := range []Mode{ModeLexicon, ModeText} {
		if len(c.Builder.SyllableCount[mode]) == 0 {
			return fmt.Errorf("glossa: missing syllable-count weights for mode %q: %w", mode, ErrZeroWeight)
		}
	}
	return nil
}

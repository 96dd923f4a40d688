package glossa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPhoneme builds an inventory entry usable in every word position.
func testPhoneme(sym string, voiced bool, m Manner, pl Place) *Phoneme {
	return &Phoneme{
		Symbol: sym, Voiced: voiced, Manner: m, Place: pl,
		StartWeight: 1, MidWeight: 1, EndWeight: 1,
	}
}

func testVowel(sym string, m Manner, tense bool) *Phoneme {
	p := testPhoneme(sym, true, m, PlaceNone)
	p.Tense = tense
	return p
}

// testConfig returns a small, fully valid language model used across
// the package tests. Every phoneme spells as its own symbol (the schwa
// and epsilon as "e") so written output is easy to assert on.
func testConfig() *LanguageConfig {
	phonemes := []*Phoneme{
		testPhoneme("p", false, MannerStop, PlaceBilabial),
		testPhoneme("t", false, MannerStop, PlaceAlveolar),
		testPhoneme("d", true, MannerStop, PlaceAlveolar),
		testPhoneme("k", false, MannerStop, PlaceVelar),
		testPhoneme("s", false, MannerSibilant, PlaceAlveolar),
		testPhoneme("z", true, MannerSibilant, PlaceAlveolar),
		testPhoneme("m", true, MannerNasal, PlaceBilabial),
		testPhoneme("n", true, MannerNasal, PlaceAlveolar),
		testPhoneme("l", true, MannerLiquid, PlaceAlveolar),
		testPhoneme("r", true, MannerLiquid, PlaceAlveolar),
		testVowel("a", MannerLowVowel, false),
		testVowel("i", MannerHighVowel, true),
		testVowel("ɛ", MannerMidVowel, false),
		testVowel("ə", MannerMidVowel, false),
	}
	graphemes := make(map[string][]*Grapheme, len(phonemes))
	for _, p := range phonemes {
		form := p.Symbol
		if form == "ə" || form == "ɛ" {
			form = "e"
		}
		graphemes[p.Symbol] = []*Grapheme{{Phoneme: p.Symbol, Form: form, Weight: 1}}
	}
	return &LanguageConfig{
		Phonemes:  phonemes,
		Graphemes: graphemes,
		Sonority: SonorityHierarchy{
			Manner: map[Manner]float64{
				MannerSibilant:  0.6,
				MannerStop:      1,
				MannerFricative: 2,
				MannerNasal:     3,
				MannerLiquid:    4,
				MannerGlide:     5,
				MannerHighVowel: 6,
				MannerMidVowel:  6.5,
				MannerLowVowel:  7,
			},
			VoicedBonus: 0.1,
		},
		MaxOnset:       3,
		MaxCoda:        2,
		AppendantCodas: map[string]bool{"t": true, "s": true},
		BannedBoundaries: map[[2]string]bool{
			{"t", "t"}: true,
			{"s", "z"}: true,
		},
		BoundaryRepair: DropCoda,
		AllowedFinal: map[string]bool{
			"p": true, "t": true, "d": true, "k": true, "s": true,
			"z": true, "m": true, "n": true, "l": true, "r": true,
		},
		CodaPairDrops: map[[2]string]bool{},
		Builder: BuilderTuning{
			SyllableCount: map[Mode][]float64{
				ModeLexicon: {1, 1, 1},
				ModeText:    {1},
			},
			MonoOnsetLength:      []float64{1, 1},
			InitialOnsetLength:   []float64{1, 1},
			MedialOnsetAfterCoda: []float64{1, 1},
			MedialOnsetAfterOpen: []float64{1, 1},
			MonoCodaByOnset:      [][]float64{{1, 1}},
			FinalCodaLength:      []float64{1, 1},
			MedialCodaLength:     []float64{1, 1},
			BoundaryDropChance:   0.5,
			FinalSChance:         0,
			FinalSSymbol:         "s",
		},
		Pronunciation: PronunciationTuning{
			AspirationInitial:    0.5,
			AspirationAfterS:     0.1,
			AspirationStressed:   0.5,
			AspirationUnstressed: 0.2,
			AspirationFinalCoda:  0.2,

			DisyllableInitialWeight: 1,
			DisyllableFinalWeight:   1,
			HeavyPenultWeight:       1,
			LightPenultWeight:       1,
			AntepenultWeight:        1,
			InitialStressWeight:     1,

			SecondaryStressChance: 0.5,
			HeavySecondaryWeight:  1,
			LightSecondaryWeight:  1,
			RhythmicStressChance:  0.5,
		},
		Orthography: OrthographyTuning{
			KeepDoubles: map[string]bool{"ee": true},
		},
		Morphology: &MorphologyConfig{
			TemplateWeights: map[Mode][]float64{
				ModeLexicon: {1, 1, 1, 1},
				ModeText:    {1, 0, 0, 0},
			},
			Suffixes: []*Affix{
				{
					Form: "s", Phonemes: []string{"z"}, Syllables: 0, Weight: 3,
					Allomorphs: []Allomorph{
						{When: AfterSibilant, Phonemes: []string{"ə", "z"}, Form: "es", Syllables: 1},
						{When: AfterVoiceless, Phonemes: []string{"s"}, Form: "s", Syllables: 0},
					},
				},
				{
					Form: "er", Phonemes: []string{"ə", "r"}, Syllables: 1, Weight: 2,
					YToI: true, DropSilentE: true, DoubleFinal: true,
				},
			},
			Prefixes: []*Affix{
				{Form: "un", Phonemes: []string{"ə", "n"}, Syllables: 1, Weight: 1, Stress: StressEffectSecondary},
			},
			NeverDouble: map[string]bool{"w": true, "y": true},
		},
		Reduction: &ReductionConfig{
			Rules:           map[string]ReductionRule{"ɛ": {Target: "ə", Probability: 1}},
			InitialFactor:   1,
			MedialFactor:    1,
			FinalFactor:     1,
			ReduceSecondary: true,
			SecondaryFactor: 1,
		},
	}
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(testConfig())
	require.NoError(t, err)
	return g
}

// testContext builds a per-call context with a fixed seed, for driving
// individual stages directly.
func testContext(t *testing.T, seed int64) *genContext {
	t.Helper()
	g := testGenerator(t)
	return &genContext{
		g:    g,
		cfg:  g.Config(),
		s:    NewSampler(seed),
		opts: Options{Mode: ModeLexicon},
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("lexicon")
	require.NoError(t, err)
	assert.Equal(t, ModeLexicon, m)

	m, err = ParseMode("text")
	require.NoError(t, err)
	assert.Equal(t, ModeText, m)

	_, err = ParseMode("prose")
	assert.Error(t, err)
}

func TestNewRejectsBrokenConfigs(t *testing.T) {
	cfg := testConfig()
	cfg.Phonemes = nil
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrNoPhonemes)

	cfg = testConfig()
	delete(cfg.Graphemes, "t")
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrNoSpelling)

	cfg = testConfig()
	cfg.Builder.SyllableCount[ModeText] = []float64{0, 0}
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrZeroWeight)

	cfg = testConfig()
	cfg.Morphology.Suffixes = nil
	_, err = New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suffixes configured")
}

// A consonant whose graphemes are all coda-restricted (the /ŋ/ "ng"
// pattern) must never be drawn into an onset, where spelling it would
// be impossible.
func TestOnsetPoolExcludesCodaOnlySpellings(t *testing.T) {
	cfg := testConfig()
	zero := 0.0
	ng := testPhoneme("ŋ", true, MannerNasal, PlaceVelar)
	ng.StartWeight = 0
	cfg.Phonemes = append(cfg.Phonemes, ng)
	cfg.Graphemes["ŋ"] = []*Grapheme{
		{Phoneme: "ŋ", Form: "ng", Weight: 4, OnsetWeight: &zero},
	}
	cfg.AllowedFinal["ŋ"] = true
	g, err := New(cfg)
	require.NoError(t, err)

	for pos := wpStart; pos <= wpEnd; pos++ {
		for _, p := range g.onsetPool[pos] {
			assert.NotEqual(t, "ŋ", p.Symbol)
		}
	}

	for seed := int64(0); seed < 300; seed++ {
		w, err := g.Generate(Options{Mode: ModeLexicon, Seed: seed, Seeded: true, Morphology: true})
		require.NoError(t, err, "seed %d", seed)
		for _, syl := range w.Syllables {
			for _, p := range syl.Onset {
				assert.NotEqual(t, "ŋ", p.Symbol, "seed %d: %s", seed, w.Hyphenated)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := testGenerator(t)
	opts := Options{Mode: ModeLexicon, Seed: 42, Seeded: true, Morphology: true}

	a, err := g.Generate(opts)
	require.NoError(t, err)
	b, err := g.Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, a.Written, b.Written)
	assert.Equal(t, a.Hyphenated, b.Hyphenated)
	assert.Equal(t, a.Pronunciation, b.Pronunciation)
	require.Equal(t, len(a.Syllables), len(b.Syllables))
	for i := range a.Syllables {
		assert.Equal(t, a.Syllables[i].symbols(), b.Syllables[i].symbols())
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	g := testGenerator(t)
	seen := make(map[string]bool)
	for seed := int64(0); seed < 50; seed++ {
		w, err := g.Generate(Options{Mode: ModeLexicon, Seed: seed, Seeded: true})
		require.NoError(t, err)
		seen[w.Pronunciation] = true
	}
	// Different seeds should not funnel into a handful of outputs.
	assert.Greater(t, len(seen), 20)
}

func TestTraceIsPureSideChannel(t *testing.T) {
	g := testGenerator(t)
	for seed := int64(0); seed < 30; seed++ {
		opts := Options{Mode: ModeLexicon, Seed: seed, Seeded: true, Morphology: true}

		plain, err := g.Generate(opts)
		require.NoError(t, err)
		assert.Nil(t, plain.Trace)

		opts.Trace = true
		traced, err := g.Generate(opts)
		require.NoError(t, err)
		require.NotNil(t, traced.Trace)

		assert.Equal(t, plain.Written, traced.Written)
		assert.Equal(t, plain.Pronunciation, traced.Pronunciation)
		assert.Positive(t, traced.Trace.Decisions())
	}
}

func TestTraceSnapshotsArePlainStrings(t *testing.T) {
	g := testGenerator(t)
	w, err := g.Generate(Options{Mode: ModeLexicon, Seed: 7, Seeded: true, Trace: true})
	require.NoError(t, err)
	require.NotEmpty(t, w.Trace.Stages)
	for _, st := range w.Trace.Stages {
		assert.NotEmpty(t, st.Stage)
		for _, syl := range st.After {
			assert.NotEmpty(t, syl)
		}
	}
}

func TestSyllableCountOverride(t *testing.T) {
	g := testGenerator(t)
	for seed := int64(0); seed < 20; seed++ {
		w, err := g.Generate(Options{Mode: ModeLexicon, Seed: seed, Seeded: true, SyllableCount: 3})
		require.NoError(t, err)
		assert.Len(t, w.Syllables, 3)
	}
}

func TestGenerateBatchSeedDerivation(t *testing.T) {
	g := testGenerator(t)
	opts := Options{Mode: ModeLexicon, Seed: 100, Seeded: true, Morphology: true}

	words, err := g.GenerateBatch(3, opts)
	require.NoError(t, err)
	require.Len(t, words, 3)

	for i, w := range words {
		single := opts
		single.Seed = opts.Seed + int64(i)
		want, err := g.Generate(single)
		require.NoError(t, err)
		assert.Equal(t, want.Written, w.Written)
		assert.Equal(t, want.Pronunciation, w.Pronunciation)
	}
}

func TestFinalizedSyllablesHaveNuclei(t *testing.T) {
	g := testGenerator(t)
	for seed := int64(0); seed < 100; seed++ {
		w, err := g.Generate(Options{Mode: ModeLexicon, Seed: seed, Seeded: true, Morphology: true})
		require.NoError(t, err)
		assert.NotEmpty(t, w.Written)
		for _, syl := range w.Syllables {
			assert.NotEmpty(t, syl.Nucleus, "seed %d: %v", seed, w.Hyphenated)
		}
	}
}

func TestWordStringAndPronounced(t *testing.T) {
	w := &Word{Written: "tane", Pronunciation: "ˈteɪ.nə"}
	assert.Equal(t, "tane", w.String())
	assert.NotContains(t, w.Pronounced(), ".")
}

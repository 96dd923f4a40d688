// Package english provides the default English language model: the
// phoneme inventory, grapheme tables, sonority hierarchy, cluster
// constraints and affix inventory, all as literal data.
//
// The weights are hand-tuned against letter and phoneme frequency
// statistics; treat them as tuning data, not as derived values.
package english

import "github.com/wordforge/glossa"

// fw returns a pointer to a positional weight override.
func fw(f float64) *float64 { return &f }

// cons builds a consonant inventory entry.
func cons(sym string, voiced bool, m glossa.Manner, pl glossa.Place, start, mid, end float64) *glossa.Phoneme {
	return &glossa.Phoneme{
		Symbol: sym, Voiced: voiced, Manner: m, Place: pl,
		StartWeight: start, MidWeight: mid, EndWeight: end,
	}
}

// vowel builds a vowel inventory entry.
func vowel(sym string, m glossa.Manner, tense bool, start, mid, end float64) *glossa.Phoneme {
	return &glossa.Phoneme{
		Symbol: sym, Voiced: true, Manner: m, Tense: tense,
		StartWeight: start, MidWeight: mid, EndWeight: end,
	}
}

// tenseVowels are the long vowels and diphthongs, by symbol. Graphemes
// like "ck" and "tch" are illegal after them.
var tenseVowels = []string{"i", "u", "eɪ", "oʊ", "aɪ", "aʊ", "ɔɪ", "ɑ"}

// frontVowels trigger the soft reading of c and g.
var frontVowels = []string{"i", "ɪ", "ɛ", "eɪ", "aɪ"}

// backVowels block the soft-g spelling of /dʒ/.
var backVowels = []string{"ɑ", "ɔ", "oʊ", "u", "ʊ", "aʊ", "ʌ"}

func phonemes() []*glossa.Phoneme {
	return []*glossa.Phoneme{
		// Stops.
		cons("p", false, glossa.MannerStop, glossa.PlaceBilabial, 5.5, 4.5, 4),
		cons("b", false, glossa.MannerStop, glossa.PlaceBilabial, 5, 3.5, 1.5),
		cons("t", false, glossa.MannerStop, glossa.PlaceAlveolar, 6.5, 7, 9),
		cons("d", true, glossa.MannerStop, glossa.PlaceAlveolar, 4.5, 4, 5),
		cons("k", false, glossa.MannerStop, glossa.PlaceVelar, 6, 5, 5),
		cons("g", true, glossa.MannerStop, glossa.PlaceVelar, 3.5, 3, 1.5),
		// Affricates.
		cons("tʃ", false, glossa.MannerAffricate, glossa.PlacePostalveolar, 2, 1.5, 2),
		cons("dʒ", true, glossa.MannerAffricate, glossa.PlacePostalveolar, 2, 1.5, 1),
		// Fricatives.
		cons("f", false, glossa.MannerFricative, glossa.PlaceLabiodental, 4, 3, 2.5),
		cons("v", true, glossa.MannerFricative, glossa.PlaceLabiodental, 2, 2.5, 2),
		cons("θ", false, glossa.MannerFricative, glossa.PlaceDental, 1.5, 1, 2),
		cons("ð", true, glossa.MannerFricative, glossa.PlaceDental, 1, 1, 0.5),
		cons("h", false, glossa.MannerFricative, glossa.PlaceGlottal, 4.5, 2, 0),
		// Sibilants.
		cons("s", false, glossa.MannerSibilant, glossa.PlaceAlveolar, 8, 6, 8),
		cons("z", true, glossa.MannerSibilant, glossa.PlaceAlveolar, 0.8, 2, 4),
		cons("ʃ", false, glossa.MannerSibilant, glossa.PlacePostalveolar, 2.5, 1.5, 2),
		cons("ʒ", true, glossa.MannerSibilant, glossa.PlacePostalveolar, 0, 0.6, 0.3),
		// Nasals.
		cons("m", true, glossa.MannerNasal, glossa.PlaceBilabial, 5, 4.5, 4.5),
		cons("n", true, glossa.MannerNasal, glossa.PlaceAlveolar, 4, 6, 8),
		cons("ŋ", true, glossa.MannerNasal, glossa.PlaceVelar, 0, 1.5, 3),
		// Liquids.
		cons("l", true, glossa.MannerLiquid, glossa.PlaceAlveolar, 4.5, 5.5, 5.5),
		cons("r", true, glossa.MannerLiquid, glossa.PlaceAlveolar, 5, 6, 5.5),
		// Glides.
		cons("w", true, glossa.MannerGlide, glossa.PlaceBilabial, 4, 2.5, 0),
		cons("j", true, glossa.MannerGlide, glossa.PlacePalatal, 1.5, 1, 0),

		// High vowels.
		vowel("i", glossa.MannerHighVowel, true, 3, 4, 5),
		vowel("ɪ", glossa.MannerHighVowel, false, 4.5, 7, 1.5),
		vowel("u", glossa.MannerHighVowel, true, 1.5, 2.5, 3),
		vowel("ʊ", glossa.MannerHighVowel, false, 0.5, 2, 0.3),
		// Mid vowels.
		vowel("ɛ", glossa.MannerMidVowel, false, 4, 5.5, 0.8),
		vowel("ə", glossa.MannerMidVowel, false, 2.5, 5, 3.5),
		vowel("ʌ", glossa.MannerMidVowel, false, 2.5, 3.5, 0.5),
		vowel("ɔ", glossa.MannerMidVowel, false, 2, 2.5, 2),
		vowel("eɪ", glossa.MannerMidVowel, true, 2.5, 3.5, 4),
		vowel("oʊ", glossa.MannerMidVowel, true, 2.5, 3, 4),
		// Low vowels.
		vowel("æ", glossa.MannerLowVowel, false, 4, 4.5, 0.3),
		vowel("ɑ", glossa.MannerLowVowel, true, 2, 2.5, 1.5),
		vowel("aɪ", glossa.MannerLowVowel, true, 2.5, 3, 3.5),
		vowel("aʊ", glossa.MannerLowVowel, true, 1.5, 1.5, 1.5),
		vowel("ɔɪ", glossa.MannerLowVowel, true, 0.5, 1, 1.5),
	}
}

func graphemes() map[string][]*glossa.Grapheme {
	t := make(map[string][]*glossa.Grapheme)
	add := func(sym string, gs ...*glossa.Grapheme) {
		for _, g := range gs {
			g.Phoneme = sym
		}
		t[sym] = gs
	}

	// Consonants.
	add("p", &glossa.Grapheme{Form: "p", Weight: 5})
	add("b", &glossa.Grapheme{Form: "b", Weight: 5})
	add("t", &glossa.Grapheme{Form: "t", Weight: 6})
	add("d", &glossa.Grapheme{Form: "d", Weight: 5})
	add("k",
		&glossa.Grapheme{Form: "c", Weight: 6, Condition: &glossa.SpellingCondition{NotBefore: frontVowels}},
		&glossa.Grapheme{Form: "k", Weight: 4},
		&glossa.Grapheme{Form: "ck", Weight: 2.5, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{NotAfter: tenseVowels}},
	)
	add("g",
		&glossa.Grapheme{Form: "g", Weight: 5},
		&glossa.Grapheme{Form: "gu", Weight: 0.5, CodaWeight: fw(0), Condition: &glossa.SpellingCondition{Position: glossa.InitialPosition}},
	)
	add("tʃ",
		&glossa.Grapheme{Form: "ch", Weight: 4},
		&glossa.Grapheme{Form: "tch", Weight: 2, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{NotAfter: tenseVowels}},
	)
	add("dʒ",
		&glossa.Grapheme{Form: "j", Weight: 3, CodaWeight: fw(0)},
		&glossa.Grapheme{Form: "g", Weight: 1.5, Condition: &glossa.SpellingCondition{NotBefore: backVowels}},
		&glossa.Grapheme{Form: "dge", Weight: 2, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition, NotAfter: tenseVowels}},
		&glossa.Grapheme{Form: "ge", Weight: 1, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("f",
		&glossa.Grapheme{Form: "f", Weight: 5},
		&glossa.Grapheme{Form: "ph", Weight: 0.8},
	)
	add("v",
		&glossa.Grapheme{Form: "v", Weight: 5, CodaWeight: fw(0)},
		&glossa.Grapheme{Form: "ve", Weight: 3, OnsetWeight: fw(0)},
	)
	add("θ", &glossa.Grapheme{Form: "th", Weight: 5})
	add("ð", &glossa.Grapheme{Form: "th", Weight: 5})
	add("h",
		&glossa.Grapheme{Form: "h", Weight: 4},
		&glossa.Grapheme{Form: "wh", Weight: 0.5, Condition: &glossa.SpellingCondition{Position: glossa.InitialPosition}},
	)
	add("s",
		&glossa.Grapheme{Form: "s", Weight: 5},
		&glossa.Grapheme{Form: "ss", Weight: 1.5, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{NotAfter: tenseVowels}},
		&glossa.Grapheme{Form: "ce", Weight: 1, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("z",
		&glossa.Grapheme{Form: "z", Weight: 3},
		&glossa.Grapheme{Form: "s", Weight: 2.5, OnsetWeight: fw(0)},
		&glossa.Grapheme{Form: "se", Weight: 1.5, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("ʃ", &glossa.Grapheme{Form: "sh", Weight: 5})
	add("ʒ",
		&glossa.Grapheme{Form: "s", Weight: 1.5, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "ge", Weight: 1, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("m", &glossa.Grapheme{Form: "m", Weight: 5})
	add("n",
		&glossa.Grapheme{Form: "n", Weight: 6},
		&glossa.Grapheme{Form: "kn", Weight: 0.4, Condition: &glossa.SpellingCondition{Position: glossa.InitialPosition}},
	)
	add("ŋ",
		&glossa.Grapheme{Form: "ng", Weight: 4, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{NotBefore: []string{"k", "g"}}},
		&glossa.Grapheme{Form: "n", Weight: 1.5, OnsetWeight: fw(0)},
	)
	add("l",
		&glossa.Grapheme{Form: "l", Weight: 5},
		&glossa.Grapheme{Form: "ll", Weight: 1, OnsetWeight: fw(0), Condition: &glossa.SpellingCondition{NotAfter: tenseVowels}},
	)
	add("r",
		&glossa.Grapheme{Form: "r", Weight: 6},
		&glossa.Grapheme{Form: "wr", Weight: 0.3, Condition: &glossa.SpellingCondition{Position: glossa.InitialPosition}},
	)
	add("w", &glossa.Grapheme{Form: "w", Weight: 5})
	add("j", &glossa.Grapheme{Form: "y", Weight: 4})

	// Vowels. Long vowels carry both plain single-letter spellings,
	// which the magic-e castling cleanup completes, and digraphs.
	add("i",
		&glossa.Grapheme{Form: "ee", Weight: 3},
		&glossa.Grapheme{Form: "ea", Weight: 2.2},
		&glossa.Grapheme{Form: "e", Weight: 1.5},
		&glossa.Grapheme{Form: "y", Weight: 2, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
		&glossa.Grapheme{Form: "ie", Weight: 1, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "ey", Weight: 0.6, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("ɪ",
		&glossa.Grapheme{Form: "i", Weight: 4},
		&glossa.Grapheme{Form: "y", Weight: 1.2},
	)
	add("u",
		&glossa.Grapheme{Form: "oo", Weight: 3},
		&glossa.Grapheme{Form: "u", Weight: 2},
		&glossa.Grapheme{Form: "ue", Weight: 1.2, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
		&glossa.Grapheme{Form: "ew", Weight: 1.5, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("ʊ",
		&glossa.Grapheme{Form: "oo", Weight: 2},
		&glossa.Grapheme{Form: "u", Weight: 1.5},
	)
	add("ɛ",
		&glossa.Grapheme{Form: "e", Weight: 4},
		&glossa.Grapheme{Form: "ea", Weight: 0.8, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
	)
	add("ə",
		&glossa.Grapheme{Form: "a", Weight: 3},
		&glossa.Grapheme{Form: "e", Weight: 2.5},
		&glossa.Grapheme{Form: "o", Weight: 2},
		&glossa.Grapheme{Form: "u", Weight: 1.5},
		&glossa.Grapheme{Form: "i", Weight: 1},
	)
	add("ʌ",
		&glossa.Grapheme{Form: "u", Weight: 3},
		&glossa.Grapheme{Form: "o", Weight: 1.5},
	)
	add("ɔ",
		&glossa.Grapheme{Form: "o", Weight: 2},
		&glossa.Grapheme{Form: "aw", Weight: 2},
		&glossa.Grapheme{Form: "au", Weight: 1.5, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
	)
	add("eɪ",
		&glossa.Grapheme{Form: "a", Weight: 2.5},
		&glossa.Grapheme{Form: "ae", Weight: 2, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "ai", Weight: 1.5, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "ay", Weight: 2, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
		&glossa.Grapheme{Form: "ey", Weight: 0.8, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("oʊ",
		&glossa.Grapheme{Form: "o", Weight: 4},
		&glossa.Grapheme{Form: "oe", Weight: 1.2, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "oa", Weight: 1.5, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "ow", Weight: 2, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("æ", &glossa.Grapheme{Form: "a", Weight: 4})
	add("ɑ",
		&glossa.Grapheme{Form: "o", Weight: 2.5},
		&glossa.Grapheme{Form: "a", Weight: 2},
	)
	add("aɪ",
		&glossa.Grapheme{Form: "i", Weight: 3},
		&glossa.Grapheme{Form: "ie", Weight: 1.2, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "igh", Weight: 0.8, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "y", Weight: 2.5, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	add("aʊ",
		&glossa.Grapheme{Form: "ou", Weight: 2.5},
		&glossa.Grapheme{Form: "ow", Weight: 2},
	)
	add("ɔɪ",
		&glossa.Grapheme{Form: "oi", Weight: 2, Condition: &glossa.SpellingCondition{Position: glossa.MedialPosition}},
		&glossa.Grapheme{Form: "oy", Weight: 2, Condition: &glossa.SpellingCondition{Position: glossa.FinalPosition}},
	)
	return t
}

// sonority places sibilants below stops so /s/+stop onsets pass the
// monotonicity filter without a special case; the place values are
// micro-offsets that only break ties.
func sonority() glossa.SonorityHierarchy {
	return glossa.SonorityHierarchy{
		Manner: map[glossa.Manner]float64{
			glossa.MannerSibilant:  0.6,
			glossa.MannerStop:      1,
			glossa.MannerAffricate: 1.4,
			glossa.MannerFricative: 2,
			glossa.MannerNasal:     3,
			glossa.MannerLiquid:    4,
			glossa.MannerGlide:     5,
			glossa.MannerHighVowel: 6,
			glossa.MannerMidVowel:  6.5,
			glossa.MannerLowVowel:  7,
		},
		Place: map[glossa.Place]float64{
			glossa.PlaceBilabial:     0.01,
			glossa.PlaceLabiodental:  0.02,
			glossa.PlaceDental:       0.03,
			glossa.PlaceAlveolar:     0.04,
			glossa.PlacePostalveolar: 0.05,
			glossa.PlacePalatal:      0.06,
			glossa.PlaceVelar:        0.02,
			glossa.PlaceGlottal:      0.01,
		},
		VoicedBonus: 0.1,
		TenseBonus:  0.2,
	}
}

// bannedBoundaries forbids geminates and a few sibilant/dental clashes
// across syllable boundaries.
func bannedBoundaries() map[[2]string]bool {
	consonants := []string{
		"p", "b", "t", "d", "k", "g", "tʃ", "dʒ", "f", "v", "θ", "ð",
		"h", "s", "z", "ʃ", "ʒ", "m", "n", "ŋ", "l", "r", "w", "j",
	}
	banned := make(map[[2]string]bool)
	for _, c := range consonants {
		banned[[2]string{c, c}] = true
	}
	for _, pair := range [][2]string{
		{"s", "ʃ"}, {"ʃ", "s"}, {"z", "ʒ"}, {"ʒ", "z"},
		{"θ", "ð"}, {"ð", "θ"}, {"s", "z"}, {"z", "s"},
		{"tʃ", "ʃ"}, {"dʒ", "ʒ"},
	} {
		banned[pair] = true
	}
	return banned
}

func morphology() *glossa.MorphologyConfig {
	return &glossa.MorphologyConfig{
		TemplateWeights: map[glossa.Mode][]float64{
			glossa.ModeLexicon: {55, 28, 9, 8},
			glossa.ModeText:    {70, 20, 6, 4},
		},
		Suffixes: []*glossa.Affix{
			{
				Form: "s", Phonemes: []string{"z"}, Syllables: 0, Weight: 30,
				Allomorphs: []glossa.Allomorph{
					{When: glossa.AfterSibilant, Phonemes: []string{"ə", "z"}, Form: "es", Syllables: 1},
					{When: glossa.AfterVoiceless, Phonemes: []string{"s"}, Form: "s", Syllables: 0},
				},
			},
			{
				Form: "ed", Phonemes: []string{"d"}, Syllables: 0, Weight: 18,
				DoubleFinal: true, DropSilentE: true,
				Allomorphs: []glossa.Allomorph{
					{When: glossa.AfterAlveolarStop, Phonemes: []string{"ə", "d"}, Form: "ed", Syllables: 1},
					{When: glossa.AfterVoiceless, Phonemes: []string{"t"}, Form: "ed", Syllables: 0},
				},
			},
			{
				Form: "ing", Phonemes: []string{"ɪ", "ŋ"}, Syllables: 1, Weight: 15,
				DropSilentE: true, DoubleFinal: true,
			},
			{
				Form: "er", Phonemes: []string{"ə", "r"}, Syllables: 1, Weight: 12,
				YToI: true, DropSilentE: true, DoubleFinal: true,
			},
			{
				Form: "ly", Phonemes: []string{"l", "i"}, Syllables: 1, Weight: 8,
				YToI: true,
			},
			{
				Form: "y", Phonemes: []string{"i"}, Syllables: 1, Weight: 7,
				DropSilentE: true, DoubleFinal: true,
			},
			{
				Form: "ness", Phonemes: []string{"n", "ə", "s"}, Syllables: 1, Weight: 6,
				YToI: true,
			},
			{
				Form: "ic", Phonemes: []string{"ɪ", "k"}, Syllables: 1, Weight: 4,
				Stress: glossa.StressEffectAttract,
			},
			{
				Form: "ee", Phonemes: []string{"i"}, Syllables: 1, Weight: 2,
				Stress: glossa.StressEffectPrimary,
			},
		},
		Prefixes: []*glossa.Affix{
			{
				Form: "un", Phonemes: []string{"ʌ", "n"}, Syllables: 1, Weight: 14,
				Stress: glossa.StressEffectSecondary,
			},
			{Form: "re", Phonemes: []string{"r", "i"}, Syllables: 1, Weight: 10},
			{Form: "de", Phonemes: []string{"d", "i"}, Syllables: 1, Weight: 6},
			{
				Form: "in", Phonemes: []string{"ɪ", "n"}, Syllables: 1, Weight: 5,
				Allomorphs: []glossa.Allomorph{
					{When: glossa.BeforeBilabial, Phonemes: []string{"ɪ", "m"}, Form: "im", Syllables: 1},
				},
			},
			{Form: "dis", Phonemes: []string{"d", "ɪ", "s"}, Syllables: 1, Weight: 5},
			{Form: "pre", Phonemes: []string{"p", "r", "i"}, Syllables: 1, Weight: 4},
		},
		NeverDouble: map[string]bool{
			"h": true, "j": true, "k": true, "q": true,
			"v": true, "w": true, "x": true, "y": true,
		},
	}
}

// Config returns the English language model. The returned value is
// fresh on every call; callers hand it to glossa.New and must not
// mutate it afterwards.
func Config() *glossa.LanguageConfig {
	return &glossa.LanguageConfig{
		Phonemes:  phonemes(),
		Graphemes: graphemes(),
		Sonority:  sonority(),

		MaxOnset: 3,
		MaxCoda:  2,
		AppendantCodas: map[string]bool{
			"t": true, "d": true, "s": true, "z": true, "θ": true,
		},

		BannedBoundaries: bannedBoundaries(),
		BoundaryRepair:   glossa.DropCoda,
		AllowedFinal: map[string]bool{
			"p": true, "b": true, "t": true, "d": true, "k": true, "g": true,
			"tʃ": true, "dʒ": true, "f": true, "v": true, "θ": true,
			"s": true, "z": true, "ʃ": true,
			"m": true, "n": true, "ŋ": true, "l": true, "r": true,
		},
		CodaPairDrops: map[[2]string]bool{
			{"ŋ", "g"}: true,
			{"m", "b"}: true,
		},

		Builder: glossa.BuilderTuning{
			SyllableCount: map[glossa.Mode][]float64{
				glossa.ModeLexicon: {28, 36, 22, 10, 4},
				glossa.ModeText:    {55, 30, 10, 4, 1},
			},
			MonoOnsetLength:      []float64{15, 55, 25, 5},
			InitialOnsetLength:   []float64{12, 60, 24, 4},
			MedialOnsetAfterCoda: []float64{5, 75, 20},
			MedialOnsetAfterOpen: []float64{30, 55, 15},
			MonoCodaByOnset: [][]float64{
				{5, 45, 40, 10},
				{10, 50, 32, 8},
				{18, 52, 25, 5},
				{25, 55, 18, 2},
			},
			FinalCodaLength:    []float64{20, 55, 25},
			MedialCodaLength:   []float64{55, 40, 5},
			BoundaryDropChance: 0.45,
			FinalSChance:       0.06,
			FinalSSymbol:       "s",
		},

		Pronunciation: glossa.PronunciationTuning{
			AspirationInitial:    0.9,
			AspirationAfterS:     0.1,
			AspirationStressed:   0.7,
			AspirationUnstressed: 0.3,
			AspirationFinalCoda:  0.25,

			DisyllableInitialWeight: 70,
			DisyllableFinalWeight:   30,
			HeavyPenultWeight:       75,
			LightPenultWeight:       30,
			AntepenultWeight:        45,
			InitialStressWeight:     8,

			SecondaryStressChance: 0.35,
			HeavySecondaryWeight:  2,
			LightSecondaryWeight:  1,
			RhythmicStressChance:  0.4,
		},

		Orthography: glossa.OrthographyTuning{
			KeepDoubles: map[string]bool{"ee": true, "oo": true},
			DigraphFixes: [][2]string{
				{"kk", "ck"},
				{"ngk", "nk"},
				{"cck", "ck"},
			},
		},

		Morphology: morphology(),

		Reduction: &glossa.ReductionConfig{
			Rules: map[string]glossa.ReductionRule{
				"ɪ": {Target: "ə", Probability: 0.5},
				"ɛ": {Target: "ə", Probability: 0.45},
				"ʌ": {Target: "ə", Probability: 0.6},
				"ʊ": {Target: "ə", Probability: 0.3},
				"æ": {Target: "ə", Probability: 0.35},
			},
			InitialFactor:   0.6,
			MedialFactor:    1.0,
			FinalFactor:     0.8,
			ReduceSecondary: true,
			SecondaryFactor: 0.3,
		},
	}
}

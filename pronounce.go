package glossa

import (
	"fmt"
	"strconv"
	"strings"
)

// pronounce assigns stress, aspiration and vowel reduction, then
// renders the pronunciation string. It is re-entrant: morphology
// re-invokes it on the affixed syllable list, and syllables already
// processed keep their stress marks, aspiration flags and reduced
// vowels; only newly spliced syllables consume draws. Stress runs first
// because the aspiration and reduction probabilities both read it.
func (ctx *genContext) pronounce(sylls []*Syllable) (string, error) {
	if err := ctx.assignStress(sylls); err != nil {
		return "", err
	}
	ctx.aspirate(sylls)
	ctx.reduce(sylls)
	for _, s := range sylls {
		s.pronounced = true
	}
	return render(sylls), nil
}

// assignStress runs the three stress passes: primary, secondary,
// rhythmic. A pre-existing primary stress means the word has been
// through here already (or an affix set it) and all passes are skipped.
func (ctx *genContext) assignStress(sylls []*Syllable) error {
	for _, s := range sylls {
		if s.Stress == StressPrimary {
			return nil
		}
	}
	n := len(sylls)
	if n == 1 {
		// Monosyllables carry no explicit mark; stress is implicit.
		return nil
	}
	tuning := &ctx.cfg.Pronunciation

	// Primary.
	var primary int
	var err error
	if n == 2 {
		choices := []Choice[int]{
			{Value: 0, Weight: tuning.DisyllableInitialWeight},
			{Value: 1, Weight: tuning.DisyllableFinalWeight},
		}
		primary, err = ctx.drawStress("primary", choices)
	} else {
		penult, antepenult := n-2, n-3
		penultWeight := tuning.LightPenultWeight
		if sylls[penult].Heavy() {
			penultWeight = tuning.HeavyPenultWeight
		}
		choices := []Choice[int]{
			{Value: penult, Weight: penultWeight},
			{Value: antepenult, Weight: tuning.AntepenultWeight},
		}
		if antepenult > 0 {
			choices = append(choices, Choice[int]{Value: 0, Weight: tuning.InitialStressWeight})
		}
		primary, err = ctx.drawStress("primary", choices)
	}
	if err != nil {
		return err
	}
	sylls[primary].Stress = StressPrimary

	// Secondary: one of the first three syllables, excluding the
	// primary, weighted by heaviness.
	if ctx.chance("pronounce", "secondary", tuning.SecondaryStressChance) {
		var choices []Choice[int]
		for i := 0; i < n && i < 3; i++ {
			if i == primary {
				continue
			}
			w := tuning.LightSecondaryWeight
			if sylls[i].Heavy() {
				w = tuning.HeavySecondaryWeight
			}
			choices = append(choices, Choice[int]{Value: i, Weight: w})
		}
		if len(choices) > 0 {
			idx, err := ctx.drawStress("secondary", choices)
			if err != nil {
				return err
			}
			sylls[idx].Stress = StressSecondary
		}
	}

	// Rhythmic: break up long unstressed runs.
	for i := 1; i < n-1; i++ {
		if sylls[i-1].Stress != StressNone || sylls[i].Stress != StressNone || sylls[i+1].Stress != StressNone {
			continue
		}
		if ctx.chance("pronounce", "rhythmic", tuning.RhythmicStressChance) {
			sylls[i].Stress = StressSecondary
		}
	}
	return nil
}

// drawStress draws a syllable index, recording the roll. A zero-total
// candidate table is a configuration error and aborts the word.
func (ctx *genContext) drawStress(label string, choices []Choice[int]) (int, error) {
	roll := ctx.s.Float()
	idx, err := pickChoice(choices, roll)
	if err != nil {
		return 0, fmt.Errorf("%s stress weights: %w", label, err)
	}
	ctx.trace.sample("pronounce", label, roll, strconv.Itoa(idx))
	return idx, nil
}

// aspirate marks syllable-initial voiceless stops as aspirated, with a
// probability depending on word position, stress and the preceding
// coda. A single voiceless-stop coda at the end of the word may also
// aspirate.
func (ctx *genContext) aspirate(sylls []*Syllable) {
	tuning := &ctx.cfg.Pronunciation
	for i, syl := range sylls {
		if syl.pronounced {
			continue
		}
		if len(syl.Onset) > 0 {
			p := syl.Onset[0]
			if isVoicelessStop(p) && !p.Aspirated {
				prob := tuning.AspirationUnstressed
				switch {
				case i == 0:
					prob = tuning.AspirationInitial
				case prevCodaEndsInS(sylls, i, ctx.cfg.Builder.FinalSSymbol):
					prob = tuning.AspirationAfterS
				case syl.Stress != StressNone:
					prob = tuning.AspirationStressed
				}
				if ctx.chance("pronounce", "aspiration", prob) {
					p.Aspirated = true
				}
			}
		}
		if i == len(sylls)-1 && len(syl.Coda) == 1 {
			p := syl.Coda[0]
			if isVoicelessStop(p) && !p.Aspirated {
				if ctx.chance("pronounce", "aspiration_final", tuning.AspirationFinalCoda) {
					p.Aspirated = true
				}
			}
		}
	}
}

func isVoicelessStop(p *Phoneme) bool {
	return p.Manner == MannerStop && !p.Voiced
}

// prevCodaEndsInS reports whether the previous syllable's coda ends in
// the /s/-like sound.
func prevCodaEndsInS(sylls []*Syllable, i int, sSymbol string) bool {
	if i == 0 || sSymbol == "" {
		return false
	}
	coda := sylls[i-1].Coda
	return len(coda) > 0 && coda[len(coda)-1].Symbol == sSymbol
}

// reduce applies the configured vowel-reduction rules. Monosyllables
// and primary-stressed syllables never reduce; tense vowels and vowels
// without a rule are immune under any seed.
func (ctx *genContext) reduce(sylls []*Syllable) {
	rc := ctx.cfg.Reduction
	if rc == nil || len(sylls) == 1 {
		return
	}
	for i, syl := range sylls {
		if syl.pronounced {
			continue
		}
		factor := 1.0
		switch syl.Stress {
		case StressPrimary:
			continue
		case StressSecondary:
			if !rc.ReduceSecondary {
				continue
			}
			factor = rc.SecondaryFactor
		}
		switch i {
		case 0:
			factor *= rc.InitialFactor
		case len(sylls) - 1:
			factor *= rc.FinalFactor
		default:
			factor *= rc.MedialFactor
		}
		for j, v := range syl.Nucleus {
			if v.Tense || v.Reduced {
				continue
			}
			rule, ok := rc.Rules[v.Symbol]
			if !ok {
				continue
			}
			target := ctx.g.phoneme(rule.Target)
			if target == nil {
				continue
			}
			if ctx.chance("pronounce", "reduction", rule.Probability*factor) {
				reduced := target.clone()
				reduced.Reduced = true
				syl.Nucleus[j] = reduced
			}
		}
	}
}

// Stress and boundary marks used in the rendered pronunciation.
const (
	primaryMark   = "ˈ"
	secondaryMark = "ˌ"
	boundaryMark  = "."
)

// render concatenates the syllables into the pronunciation string,
// prefixing each with its stress mark, or a boundary mark when
// unstressed and non-initial.
func render(sylls []*Syllable) string {
	var b strings.Builder
	for i, syl := range sylls {
		switch syl.Stress {
		case StressPrimary:
			b.WriteString(primaryMark)
		case StressSecondary:
			b.WriteString(secondaryMark)
		default:
			if i > 0 {
				b.WriteString(boundaryMark)
			}
		}
		for _, p := range syl.Sounds() {
			b.WriteString(p.Sound())
		}
	}
	return b.String()
}
